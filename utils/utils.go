package utils

import (
	"context"
	rndm "math/rand"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Random String and ID Generators ---

var digitRunes = []rune("0123456789")

// NewID creates a prefixed entity ID, e.g. NewID("tm") -> "tm-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- String Helpers ---

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mongo Helpers ---

// FindAndDecode runs a Find and decodes the full cursor into a slice.
// Returns an empty (non-nil) slice when nothing matches.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err == nil {
			items = append(items, item)
		}
	}
	return items, cursor.Err()
}
