package production

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/stats"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var validEquipmentStatuses = map[string]bool{
	models.EquipmentAvailable: true,
	models.EquipmentInUse:     true,
	models.EquipmentCharging:  true,
	models.EquipmentMissing:   true,
}

// POST /api/equipment
func CreateEquipment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if item.Status == "" {
		item.Status = models.EquipmentAvailable
	}
	if !validEquipmentStatuses[item.Status] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if item.BatteryLevel < 0 || item.BatteryLevel > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, "Battery level must be 0-100")
		return
	}

	item.EquipmentID = utils.NewID("eq")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.EquipmentCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting equipment")
		return
	}

	mq.Emit("documentaryEquipment", "created", item.EquipmentID)
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GET /api/equipment: full list plus counts-by-status for the tiles.
func GetEquipment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.Equipment](ctx, db.EquipmentCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching equipment")
		return
	}

	counts := stats.Summarize(items, func(e models.Equipment) string { return e.Status })
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":  items,
		"counts": counts,
		"total":  len(items),
	})
}

// PUT /api/equipment/:id
func UpdateEquipment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	equipmentID := ps.ByName("id")

	var updated models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validEquipmentStatuses[updated.Status] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if updated.BatteryLevel < 0 || updated.BatteryLevel > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, "Battery level must be 0-100")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          updated.Name,
		"status":        updated.Status,
		"assignee":      updated.Assignee,
		"location":      updated.Location,
		"battery_level": updated.BatteryLevel,
	}}

	result, err := db.EquipmentCollection.UpdateOne(ctx, bson.M{"equipmentid": equipmentID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating equipment")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Equipment not found")
		return
	}

	mq.Emit("documentaryEquipment", "updated", equipmentID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Equipment updated"})
}

// DELETE /api/equipment/:id
func DeleteEquipment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	equipmentID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.EquipmentCollection.DeleteOne(ctx, bson.M{"equipmentid": equipmentID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting equipment")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Equipment not found")
		return
	}

	mq.Emit("documentaryEquipment", "deleted", equipmentID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Equipment deleted"})
}
