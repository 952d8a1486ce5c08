package userdata

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/middleware"
	"trekhub/models"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/userdata/:section returns the caller's checklist state for one
// dashboard section.
func GetProgress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := middleware.RequestingEmail(r)
	section := ps.ByName("section")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var progress models.UserProgress
	err := db.UserProgressCollection.FindOne(ctx, bson.M{"user_email": email, "section": section}).Decode(&progress)
	if err != nil {
		// No record yet is not an error; the client starts blank.
		utils.RespondWithJSON(w, http.StatusOK, models.UserProgress{
			UserEmail:  email,
			Section:    section,
			CheckedIDs: []string{},
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, progress)
}

// PUT /api/userdata/:section
func SetProgress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := middleware.RequestingEmail(r)
	section := ps.ByName("section")

	var body struct {
		CheckedIDs []string `json:"checked_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_email": email, "section": section}
	update := bson.M{
		"$set": bson.M{
			"checked_ids": body.CheckedIDs,
			"updated_at":  time.Now(),
		},
		"$setOnInsert": bson.M{
			"progressid": utils.NewID("up"),
			"user_email": email,
			"section":    section,
		},
	}

	_, err := db.UserProgressCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving progress")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Progress saved"})
}
