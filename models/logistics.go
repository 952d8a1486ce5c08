package models

import "time"

// Accommodation is one overnight stop on the route.
type Accommodation struct {
	AccommodationID string `json:"accommodationid" bson:"accommodationid"`
	Name            string `json:"name" bson:"name"`
	Location        string `json:"location" bson:"location"`
	CheckIn         string `json:"check_in" bson:"check_in"`
	CheckOut        string `json:"check_out" bson:"check_out"`
	Nights          int    `json:"nights" bson:"nights"`
	Notes           string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// RouteWaypoint is a named point on the trek route.
type RouteWaypoint struct {
	WaypointID string  `json:"waypointid" bson:"waypointid"`
	Name       string  `json:"name" bson:"name"`
	Lat        float64 `json:"lat" bson:"lat"`
	Lon        float64 `json:"lon" bson:"lon"`
	ElevationM float64 `json:"elevation_m" bson:"elevation_m"`
	Day        string  `json:"day,omitempty" bson:"day,omitempty"`
	Notes      string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// EmergencyContact is a shared contact for the whole group (agency,
// embassy, rescue service) or for one member when MemberID is set.
type EmergencyContact struct {
	ContactID string `json:"contactid" bson:"contactid"`
	MemberID  string `json:"memberid,omitempty" bson:"memberid,omitempty"`
	Name      string `json:"name" bson:"name"`
	Phone     string `json:"phone" bson:"phone"`
	Relation  string `json:"relation,omitempty" bson:"relation,omitempty"`
	Kind      string `json:"kind" bson:"kind"` // personal/agency/embassy/rescue
}

// WeatherUpdate is a manually recorded forecast entry.
type WeatherUpdate struct {
	UpdateID   string    `json:"updateid" bson:"updateid"`
	Location   string    `json:"location" bson:"location"`
	Date       string    `json:"date" bson:"date"`
	Summary    string    `json:"summary" bson:"summary"`
	TempHighC  float64   `json:"temp_high_c" bson:"temp_high_c"`
	TempLowC   float64   `json:"temp_low_c" bson:"temp_low_c"`
	WindKph    float64   `json:"wind_kph" bson:"wind_kph"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
