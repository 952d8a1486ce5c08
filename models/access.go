package models

import "time"

// AllowedEmail gates authentication. Revocation is a soft delete:
// IsActive flips to false and the record stays for audit.
type AllowedEmail struct {
	Email    string    `json:"email" bson:"email"`
	Role     string    `json:"role" bson:"role"`
	IsActive bool      `json:"is_active" bson:"is_active"`
	AddedBy  string    `json:"added_by" bson:"added_by"`
	AddedAt  time.Time `json:"added_at" bson:"added_at"`
}

// ChangeEvent is published on every write so live views can refresh.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Method     string `json:"method"` // created/updated/deleted
	EntityID   string `json:"entity_id"`
}
