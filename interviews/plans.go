package interviews

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

// POST /api/interviews/subjects
func CreateSubject(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var subject models.InterviewSubject
	if err := json.NewDecoder(r.Body).Decode(&subject); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if subject.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	subject.SubjectID = utils.NewID("sub")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.InterviewSubjectsCollection.InsertOne(ctx, subject); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting subject")
		return
	}

	mq.Emit("interviewSubjects", "created", subject.SubjectID)
	utils.RespondWithJSON(w, http.StatusCreated, subject)
}

// GET /api/interviews/subjects
func GetSubjects(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subjects, err := utils.FindAndDecode[models.InterviewSubject](ctx, db.InterviewSubjectsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching subjects")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subjects)
}

// POST /api/interviews/plans
func CreateDailyPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var plan models.DailyInterviewPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if plan.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Date is required")
		return
	}

	plan.PlanID = utils.NewID("dp")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.DailyPlansCollection.InsertOne(ctx, plan); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting plan")
		return
	}

	mq.Emit("dailyInterviewPlans", "created", plan.PlanID)
	utils.RespondWithJSON(w, http.StatusCreated, plan)
}

// GET /api/interviews/plans/:date returns the plan for one trek day plus its
// schedules, ordered by time of day.
func GetDailyPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := ps.ByName("date")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var plan models.DailyInterviewPlan
	if err := db.DailyPlansCollection.FindOne(ctx, bson.M{"date": date}).Decode(&plan); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No plan for that date")
		return
	}

	schedules, err := utils.FindAndDecode[models.InterviewSchedule](ctx, db.InterviewSchedulesCollection,
		bson.M{"scheduleid": bson.M{"$in": plan.ScheduleIDs}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching schedules")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"plan":      plan,
		"schedules": SortSchedules(schedules),
	})
}

// PUT /api/interviews/plans/:id
func UpdateDailyPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	planID := ps.ByName("id")

	var updated models.DailyInterviewPlan
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":         updated.Date,
		"schedule_ids": updated.ScheduleIDs,
		"notes":        updated.Notes,
	}}

	result, err := db.DailyPlansCollection.UpdateOne(ctx, bson.M{"planid": planID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating plan")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Plan not found")
		return
	}

	mq.Emit("dailyInterviewPlans", "updated", planID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Plan updated"})
}
