package packing

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/middleware"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/stats"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/packing/items
func CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.PackingItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if item.Count <= 0 {
		item.Count = 1
	}

	item.ItemID = utils.NewID("pk")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PackingItemsCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting packing item")
		return
	}

	mq.Emit("packingItems", "created", item.ItemID)
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GET /api/packing/items
func GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.PackingItem](ctx, db.PackingItemsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching packing items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// PUT /api/packing/progress/:itemid: check/uncheck an item for the caller.
func SetProgress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID := ps.ByName("itemid")
	email := middleware.RequestingEmail(r)

	var body struct {
		Checked bool   `json:"checked"`
		Notes   string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	n, err := db.PackingItemsCollection.CountDocuments(ctx, bson.M{"itemid": itemID})
	if err != nil || n == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Packing item not found")
		return
	}

	filter := bson.M{"user_email": email, "itemid": itemID}
	update := bson.M{
		"$set": bson.M{"checked": body.Checked, "notes": body.Notes},
		"$setOnInsert": bson.M{
			"progressid": utils.NewID("pp"),
			"user_email": email,
			"itemid":     itemID,
		},
	}

	_, err = db.PackingProgressCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving progress")
		return
	}

	mq.Emit("packingProgress", "updated", itemID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Progress saved"})
}

// PackingSummary is what the packing dashboard tile renders.
type PackingSummary struct {
	TotalItems         int     `json:"total_items"`
	CheckedItems       int     `json:"checked_items"`
	CompletionPercent  int     `json:"completion_percent"`
	CheckedWeightGrams float64 `json:"checked_weight_grams"`
	TotalWeightGrams   float64 `json:"total_weight_grams"`
}

// Summarize computes completion and weight totals for one user. Weight is
// weight*count summed over checked items.
func Summarize(items []models.PackingItem, progress []models.PackingProgress) PackingSummary {
	checked := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.Checked {
			checked[p.ItemID] = true
		}
	}

	summary := PackingSummary{TotalItems: len(items)}
	for _, item := range items {
		weight := item.WeightGrams * float64(item.Count)
		summary.TotalWeightGrams += weight
		if checked[item.ItemID] {
			summary.CheckedItems++
			summary.CheckedWeightGrams += weight
		}
	}
	summary.CompletionPercent = stats.Percentage(summary.CheckedItems, summary.TotalItems)
	return summary
}

// GET /api/packing/summary returns the caller's packing completion and weight.
func GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.RequestingEmail(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.PackingItem](ctx, db.PackingItemsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching packing items")
		return
	}
	progress, err := utils.FindAndDecode[models.PackingProgress](ctx, db.PackingProgressCollection, bson.M{"user_email": email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching packing progress")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, Summarize(items, progress))
}
