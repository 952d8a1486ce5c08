package models

import "time"

// PackingItem defines one entry on the shared packing list.
type PackingItem struct {
	ItemID      string  `json:"itemid" bson:"itemid"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"`
	WeightGrams float64 `json:"weight_grams" bson:"weight_grams"` // per unit
	Count       int     `json:"count" bson:"count"`
}

// PackingProgress is a per-user join row against a packing item.
type PackingProgress struct {
	ProgressID string `json:"progressid" bson:"progressid"`
	UserEmail  string `json:"user_email" bson:"user_email"`
	ItemID     string `json:"itemid" bson:"itemid"`
	Checked    bool   `json:"checked" bson:"checked"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// UserProgress holds miscellaneous per-user checklist state keyed by
// dashboard section.
type UserProgress struct {
	ProgressID string    `json:"progressid" bson:"progressid"`
	UserEmail  string    `json:"user_email" bson:"user_email"`
	Section    string    `json:"section" bson:"section"`
	CheckedIDs []string  `json:"checked_ids" bson:"checked_ids"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
