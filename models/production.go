package models

// Documentary equipment statuses.
const (
	EquipmentAvailable = "available"
	EquipmentInUse     = "in-use"
	EquipmentCharging  = "charging"
	EquipmentMissing   = "missing"
)

// Equipment is one piece of documentary kit.
type Equipment struct {
	EquipmentID  string `json:"equipmentid" bson:"equipmentid"`
	Name         string `json:"name" bson:"name"`
	Status       string `json:"status" bson:"status"`
	Assignee     string `json:"assignee,omitempty" bson:"assignee,omitempty"`
	Location     string `json:"location,omitempty" bson:"location,omitempty"`
	BatteryLevel int    `json:"battery_level" bson:"battery_level"` // 0-100
}

// DocumentaryShot is one planned or captured shot.
type DocumentaryShot struct {
	ShotID       string   `json:"shotid" bson:"shotid"`
	Title        string   `json:"title" bson:"title"`
	Location     string   `json:"location" bson:"location"`
	Day          string   `json:"day" bson:"day"`
	Status       string   `json:"status" bson:"status"` // planned/captured
	EquipmentIDs []string `json:"equipment_ids,omitempty" bson:"equipment_ids,omitempty"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// StoryArcElement is one beat of the documentary narrative.
type StoryArcElement struct {
	ElementID   string `json:"elementid" bson:"elementid"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Phase       string `json:"phase" bson:"phase"`
	Order       int    `json:"order" bson:"order"`
	Status      string `json:"status" bson:"status"`
}
