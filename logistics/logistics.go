package logistics

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

// POST /api/accommodations
func CreateAccommodation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var acc models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if acc.Name == "" || acc.Location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and location are required")
		return
	}

	acc.AccommodationID = utils.NewID("ac")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.AccommodationsCollection.InsertOne(ctx, acc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting accommodation")
		return
	}

	mq.Emit("accommodations", "created", acc.AccommodationID)
	utils.RespondWithJSON(w, http.StatusCreated, acc)
}

// GET /api/accommodations
func GetAccommodations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accs, err := utils.FindAndDecode[models.Accommodation](ctx, db.AccommodationsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching accommodations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, accs)
}

// PUT /api/accommodations/:id
func UpdateAccommodation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	accommodationID := ps.ByName("id")

	var updated models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      updated.Name,
		"location":  updated.Location,
		"check_in":  updated.CheckIn,
		"check_out": updated.CheckOut,
		"nights":    updated.Nights,
		"notes":     updated.Notes,
	}}

	result, err := db.AccommodationsCollection.UpdateOne(ctx, bson.M{"accommodationid": accommodationID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating accommodation")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Accommodation not found")
		return
	}

	mq.Emit("accommodations", "updated", accommodationID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Accommodation updated"})
}

// POST /api/emergency-contacts
func CreateEmergencyContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var contact models.EmergencyContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if contact.Name == "" || contact.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and phone are required")
		return
	}
	if contact.Kind == "" {
		contact.Kind = "personal"
	}

	contact.ContactID = utils.NewID("ec")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.EmergencyContactsCollection.InsertOne(ctx, contact); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting contact")
		return
	}

	mq.Emit("emergencyContacts", "created", contact.ContactID)
	utils.RespondWithJSON(w, http.StatusCreated, contact)
}

// GET /api/emergency-contacts: optional memberid filter; without it the
// group-wide contacts (agency, embassy, rescue) come back too.
func GetEmergencyContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if memberID := r.URL.Query().Get("memberid"); memberID != "" {
		filter["memberid"] = memberID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := utils.FindAndDecode[models.EmergencyContact](ctx, db.EmergencyContactsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

// DELETE /api/emergency-contacts/:id
func DeleteEmergencyContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contactID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.EmergencyContactsCollection.DeleteOne(ctx, bson.M{"contactid": contactID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting contact")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	mq.Emit("emergencyContacts", "deleted", contactID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Contact deleted"})
}

// POST /api/weather
func CreateWeatherUpdate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update models.WeatherUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if update.Location == "" || update.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Location and date are required")
		return
	}

	update.UpdateID = utils.NewID("wx")
	update.RecordedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.WeatherUpdatesCollection.InsertOne(ctx, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting weather update")
		return
	}

	mq.Emit("weatherUpdates", "created", update.UpdateID)
	utils.RespondWithJSON(w, http.StatusCreated, update)
}

// GET /api/weather
func GetWeatherUpdates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if location := r.URL.Query().Get("location"); location != "" {
		filter["location"] = location
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updates, err := utils.FindAndDecode[models.WeatherUpdate](ctx, db.WeatherUpdatesCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching weather updates")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updates)
}
