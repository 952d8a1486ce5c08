package production

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/shots
func CreateShot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var shot models.DocumentaryShot
	if err := json.NewDecoder(r.Body).Decode(&shot); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if shot.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if shot.Status == "" {
		shot.Status = "planned"
	}

	shot.ShotID = utils.NewID("sh")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ShotsCollection.InsertOne(ctx, shot); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting shot")
		return
	}

	mq.Emit("documentaryShots", "created", shot.ShotID)
	utils.RespondWithJSON(w, http.StatusCreated, shot)
}

// GET /api/shots
func GetShots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if day := r.URL.Query().Get("day"); day != "" {
		filter["day"] = day
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shots, err := utils.FindAndDecode[models.DocumentaryShot](ctx, db.ShotsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching shots")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shots)
}

// PUT /api/shots/:id
func UpdateShot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shotID := ps.ByName("id")

	var updated models.DocumentaryShot
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":         updated.Title,
		"location":      updated.Location,
		"day":           updated.Day,
		"status":        updated.Status,
		"equipment_ids": updated.EquipmentIDs,
		"notes":         updated.Notes,
	}}

	result, err := db.ShotsCollection.UpdateOne(ctx, bson.M{"shotid": shotID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating shot")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Shot not found")
		return
	}

	mq.Emit("documentaryShots", "updated", shotID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Shot updated"})
}

// POST /api/story-arcs
func CreateStoryArc(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var element models.StoryArcElement
	if err := json.NewDecoder(r.Body).Decode(&element); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if element.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	element.ElementID = utils.NewID("arc")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.StoryArcsCollection.InsertOne(ctx, element); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting story arc element")
		return
	}

	mq.Emit("storyArcElements", "created", element.ElementID)
	utils.RespondWithJSON(w, http.StatusCreated, element)
}

// GET /api/story-arcs: ordered by phase position then explicit order.
func GetStoryArcs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	elements, err := utils.FindAndDecode[models.StoryArcElement](ctx, db.StoryArcsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching story arc")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, SortStoryArc(elements))
}

// PUT /api/story-arcs/:id
func UpdateStoryArc(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	elementID := ps.ByName("id")

	var updated models.StoryArcElement
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       updated.Title,
		"description": updated.Description,
		"phase":       updated.Phase,
		"order":       updated.Order,
		"status":      updated.Status,
	}}

	result, err := db.StoryArcsCollection.UpdateOne(ctx, bson.M{"elementid": elementID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating story arc element")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Story arc element not found")
		return
	}

	mq.Emit("storyArcElements", "updated", elementID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Story arc element updated"})
}
