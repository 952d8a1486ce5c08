package interviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/interviews/templates
func CreateTemplate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var template models.InterviewTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if template.Name == "" || len(template.Questions) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and at least one question are required")
		return
	}

	template.TemplateID = utils.NewID("it")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.InterviewTemplatesCollection.InsertOne(ctx, template); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting template")
		return
	}

	mq.Emit("interviewTemplates", "created", template.TemplateID)
	utils.RespondWithJSON(w, http.StatusCreated, template)
}

// GET /api/interviews/templates
func GetTemplates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	templates, err := utils.FindAndDecode[models.InterviewTemplate](ctx, db.InterviewTemplatesCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching templates")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, templates)
}

// GET /api/interviews/templates/:id
func GetTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var template models.InterviewTemplate
	if err := db.InterviewTemplatesCollection.FindOne(ctx, bson.M{"templateid": ps.ByName("id")}).Decode(&template); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, template)
}

// PUT /api/interviews/templates/:id
func UpdateTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	templateID := ps.ByName("id")

	var updated models.InterviewTemplate
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":               updated.Name,
		"description":        updated.Description,
		"questions":          updated.Questions,
		"estimated_duration": updated.EstimatedDuration,
		"tags":               updated.Tags,
	}}

	result, err := db.InterviewTemplatesCollection.UpdateOne(ctx, bson.M{"templateid": templateID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating template")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Template not found")
		return
	}

	// Schedules keep joining on templateid; refresh their display copies.
	if _, err := db.InterviewSchedulesCollection.UpdateMany(ctx,
		bson.M{"templateid": templateID},
		bson.M{"$set": bson.M{"template_name": updated.Name}},
	); err != nil {
		log.Printf("template_name refresh failed for %s: %v", templateID, err)
	}

	mq.Emit("interviewTemplates", "updated", templateID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Template updated"})
}
