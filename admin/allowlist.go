package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/middleware"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// POST /api/admin/allowed-emails
func AddAllowedEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if input.Role == "" {
		input.Role = "member"
	}

	email := utils.NormalizeEmail(input.Email)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.AllowedEmail
	err := db.AllowedEmailsCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		// Re-adding a revoked email reactivates it rather than
		// duplicating the record.
		_, err = db.AllowedEmailsCollection.UpdateOne(ctx,
			bson.M{"email": email},
			bson.M{"$set": bson.M{"is_active": true, "role": input.Role}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error reactivating email")
			return
		}
		mq.Emit("allowedEmails", "updated", email)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Email reactivated"})
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	record := models.AllowedEmail{
		Email:    email,
		Role:     input.Role,
		IsActive: true,
		AddedBy:  middleware.RequestingEmail(r),
		AddedAt:  time.Now(),
	}

	if _, err := db.AllowedEmailsCollection.InsertOne(ctx, record); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error adding email")
		return
	}

	mq.Emit("allowedEmails", "created", email)
	utils.RespondWithJSON(w, http.StatusCreated, record)
}

// GET /api/admin/allowed-emails
func GetAllowedEmails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := utils.FindAndDecode[models.AllowedEmail](ctx, db.AllowedEmailsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching allowed emails")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}

// DELETE /api/admin/allowed-emails/:email is a soft delete. The record
// stays with is_active=false; the middleware denies the email on its
// very next request.
func RevokeAllowedEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := utils.NormalizeEmail(ps.ByName("email"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.AllowedEmailsCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error revoking email")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Email not found")
		return
	}

	mq.Emit("allowedEmails", "updated", email)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Access revoked"})
}
