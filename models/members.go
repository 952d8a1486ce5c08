package models

// Booking legs a member may be required to have before the trek.
const (
	LegArrival   = "arrival"
	LegInternal  = "internal"
	LegDeparture = "departure"
)

// DefaultRequiredLegs is used when a member has no explicit override.
// Members who e.g. skip the KTM-Pokhara internal flight carry their own set.
var DefaultRequiredLegs = []string{LegArrival, LegInternal, LegDeparture}

// Booking completeness states derived from a member's flight bookings.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusMissing  = "missing"
)

// TrekMember represents a participant in the group expedition.
type TrekMember struct {
	MemberID         string `json:"memberid" bson:"memberid"`
	Name             string `json:"name" bson:"name"`
	Email            string `json:"email" bson:"email"`
	Phone            string `json:"phone" bson:"phone"`
	EmergencyContact string `json:"emergency_contact" bson:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone" bson:"emergency_phone"`
	BloodGroup       string `json:"blood_group" bson:"blood_group"`

	// Preparation flags
	MedicalCertificate      bool `json:"medical_certificate" bson:"medical_certificate"`
	TravelInsurance         bool `json:"travel_insurance" bson:"travel_insurance"`
	TrekkingGear            bool `json:"trekking_gear" bson:"trekking_gear"`
	EmergencyContactsShared bool `json:"emergency_contacts_shared" bson:"emergency_contacts_shared"`

	HasAccess bool `json:"has_access" bson:"has_access"`

	// RequiredLegs overrides DefaultRequiredLegs when non-empty.
	RequiredLegs []string `json:"required_legs,omitempty" bson:"required_legs,omitempty"`

	// BookingStatus is derived from flight bookings and recomputed on
	// every booking write; it is stored only for query convenience.
	BookingStatus string `json:"booking_status" bson:"booking_status"`
}

// FlightBooking is one travel leg owned by exactly one member.
type FlightBooking struct {
	BookingID     string `json:"bookingid" bson:"bookingid"`
	MemberID      string `json:"memberid" bson:"memberid"`
	Leg           string `json:"leg" bson:"leg"` // arrival/internal/departure
	FlightNumber  string `json:"flight_number" bson:"flight_number"`
	Route         string `json:"route" bson:"route"`
	Date          string `json:"date" bson:"date"`
	DepartureTime string `json:"departure_time" bson:"departure_time"`
	ArrivalTime   string `json:"arrival_time" bson:"arrival_time"`
	TicketRef     string `json:"ticket_ref,omitempty" bson:"ticket_ref,omitempty"`
}
