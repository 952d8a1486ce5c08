package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClearBatchSize is how many records each sequential delete batch covers.
const ClearBatchSize = 50

// BatchDeleter deletes one batch of IDs and reports how many went.
type BatchDeleter func(ctx context.Context, ids []string) (int64, error)

// ClearInBatches deletes ids in sequential fixed-size batches, awaiting
// each before issuing the next. There is no rollback: a mid-batch
// failure stops the loop and the count of records already deleted is
// returned alongside the error, so callers can report the partial state
// exactly instead of claiming full success.
func ClearInBatches(ctx context.Context, ids []string, batchSize int, del BatchDeleter) (int64, error) {
	var deleted int64
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		n, err := del(ctx, ids[start:end])
		deleted += n
		if err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// Collections the danger zone may clear, mapped to their ID field.
var clearable = map[string]struct {
	coll    func() *mongo.Collection
	idField string
}{
	"trekMembers":        {func() *mongo.Collection { return db.TrekMembersCollection }, "memberid"},
	"flightBookings":     {func() *mongo.Collection { return db.FlightBookingsCollection }, "bookingid"},
	"interviewSchedules": {func() *mongo.Collection { return db.InterviewSchedulesCollection }, "scheduleid"},
	"packingProgress":    {func() *mongo.Collection { return db.PackingProgressCollection }, "progressid"},
	"weatherUpdates":     {func() *mongo.Collection { return db.WeatherUpdatesCollection }, "updateid"},
}

// POST /api/admin/danger-zone/clear
func DangerZoneClear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Collection string `json:"collection"`
		Confirm    string `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	target, ok := clearable[input.Collection]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Collection cannot be cleared")
		return
	}
	if input.Confirm != input.Collection {
		utils.RespondWithError(w, http.StatusBadRequest, "Confirmation text must match the collection name")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	coll := target.coll()

	// Collect IDs first so progress is countable per batch.
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing records")
		return
	}
	var ids []string
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if id, ok := doc[target.idField].(string); ok {
			ids = append(ids, id)
		}
	}
	cursor.Close(ctx)

	total := len(ids)
	deleted, err := ClearInBatches(ctx, ids, ClearBatchSize, func(ctx context.Context, batch []string) (int64, error) {
		res, err := coll.DeleteMany(ctx, bson.M{target.idField: bson.M{"$in": batch}})
		if res == nil {
			return 0, err
		}
		return res.DeletedCount, err
	})

	mq.Emit(input.Collection, "deleted", "bulk")

	if err != nil {
		// Report the partial state exactly; the collection now holds
		// total-deleted records and nothing was rolled back.
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"error":     "Bulk clear failed partway",
			"deleted":   deleted,
			"remaining": int64(total) - deleted,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"deleted":   deleted,
		"remaining": 0,
	})
}
