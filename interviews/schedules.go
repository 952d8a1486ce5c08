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

var validPhases = map[string]bool{
	models.PhasePreTrek:    true,
	models.PhaseDuringTrek: true,
	models.PhasePostTrek:   true,
}

var validPriorities = map[string]bool{"high": true, "medium": true, "low": true}

// POST /api/interviews/schedules
func CreateSchedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var schedule models.InterviewSchedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if schedule.MemberID == "" || schedule.TemplateID == "" || schedule.ScheduledDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "memberid, templateid and scheduled_date are required")
		return
	}
	if !validPhases[schedule.Phase] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid phase")
		return
	}
	if schedule.Priority != "" && !validPriorities[schedule.Priority] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid priority")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Resolve display names from the referenced records so the stored
	// copies start out consistent.
	var member models.TrekMember
	if err := db.TrekMembersCollection.FindOne(ctx, bson.M{"memberid": schedule.MemberID}).Decode(&member); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		return
	}
	var template models.InterviewTemplate
	if err := db.InterviewTemplatesCollection.FindOne(ctx, bson.M{"templateid": schedule.TemplateID}).Decode(&template); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Template not found")
		return
	}

	schedule.ScheduleID = utils.NewID("is")
	schedule.IntervieweeName = member.Name
	schedule.TemplateName = template.Name
	schedule.Status = models.InterviewPlanned
	if schedule.EstimatedDuration == 0 {
		schedule.EstimatedDuration = template.EstimatedDuration
	}

	if _, err := db.InterviewSchedulesCollection.InsertOne(ctx, schedule); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting schedule")
		return
	}

	mq.Emit("interviewSchedules", "created", schedule.ScheduleID)
	utils.RespondWithJSON(w, http.StatusCreated, schedule)
}

// GET /api/interviews/schedules
// Optional filters: phase, status, memberid, date. Results are ordered by
// scheduled date and time of day.
func GetSchedules(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := bson.M{}
	if phase := query.Get("phase"); phase != "" {
		filter["phase"] = phase
	}
	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}
	if memberID := query.Get("memberid"); memberID != "" {
		filter["memberid"] = memberID
	}
	if date := query.Get("date"); date != "" {
		filter["scheduled_date"] = date
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	schedules, err := utils.FindAndDecode[models.InterviewSchedule](ctx, db.InterviewSchedulesCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching schedules")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, SortSchedules(schedules))
}

// GET /api/interviews/schedules/:id
func GetSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	scheduleID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var schedule models.InterviewSchedule
	if err := db.InterviewSchedulesCollection.FindOne(ctx, bson.M{"scheduleid": scheduleID}).Decode(&schedule); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, schedule)
}

// PUT /api/interviews/schedules/:id
func UpdateSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	scheduleID := ps.ByName("id")

	var updated models.InterviewSchedule
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"interviewer_name":   updated.InterviewerName,
		"scheduled_date":     updated.ScheduledDate,
		"scheduled_time":     updated.ScheduledTime,
		"location":           updated.Location,
		"estimated_duration": updated.EstimatedDuration,
		"phase":              updated.Phase,
		"priority":           updated.Priority,
	}}

	result, err := db.InterviewSchedulesCollection.UpdateOne(ctx, bson.M{"scheduleid": scheduleID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating schedule")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	mq.Emit("interviewSchedules", "updated", scheduleID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Schedule updated"})
}

// Status transitions. Each one is an explicit user action; the allowed
// source states mirror the buttons shown for them in the client.

// POST /api/interviews/schedules/:id/confirm
func ConfirmSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	transition(w, r, ps.ByName("id"),
		[]string{models.InterviewPlanned, models.InterviewRescheduled},
		bson.M{"status": models.InterviewConfirmed})
}

// POST /api/interviews/schedules/:id/start
func StartSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	transition(w, r, ps.ByName("id"),
		[]string{models.InterviewPlanned, models.InterviewConfirmed, models.InterviewRescheduled},
		bson.M{
			"status":            models.InterviewInProgress,
			"actual_start_time": time.Now().Format(time.RFC3339),
		})
}

// POST /api/interviews/schedules/:id/complete
func CompleteSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		CompletionNotes string `json:"completion_notes"`
	}
	json.NewDecoder(r.Body).Decode(&body)

	transition(w, r, ps.ByName("id"),
		[]string{models.InterviewInProgress},
		bson.M{
			"status":           models.InterviewCompleted,
			"actual_end_time":  time.Now().Format(time.RFC3339),
			"completion_notes": body.CompletionNotes,
		})
}

// POST /api/interviews/schedules/:id/fail
func FailSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		FailureReason string `json:"failure_reason"`
	}
	json.NewDecoder(r.Body).Decode(&body)

	transition(w, r, ps.ByName("id"),
		[]string{models.InterviewPlanned, models.InterviewConfirmed, models.InterviewInProgress},
		bson.M{
			"status":         models.InterviewFailed,
			"failure_reason": body.FailureReason,
		})
}

// POST /api/interviews/schedules/:id/reschedule
func RescheduleSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		ScheduledDate string `json:"scheduled_date"`
		ScheduledTime string `json:"scheduled_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ScheduledDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "scheduled_date is required")
		return
	}

	transition(w, r, ps.ByName("id"),
		[]string{models.InterviewPlanned, models.InterviewConfirmed, models.InterviewFailed},
		bson.M{
			"status":         models.InterviewRescheduled,
			"scheduled_date": body.ScheduledDate,
			"scheduled_time": body.ScheduledTime,
		})
}

func transition(w http.ResponseWriter, r *http.Request, scheduleID string, from []string, set bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var schedule models.InterviewSchedule
	if err := db.InterviewSchedulesCollection.FindOne(ctx, bson.M{"scheduleid": scheduleID}).Decode(&schedule); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	allowed := false
	for _, s := range from {
		if schedule.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.RespondWithError(w, http.StatusConflict, "Transition not allowed from status "+schedule.Status)
		return
	}

	if _, err := db.InterviewSchedulesCollection.UpdateOne(ctx, bson.M{"scheduleid": scheduleID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating schedule")
		return
	}

	mq.Emit("interviewSchedules", "updated", scheduleID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Schedule updated", "status": set["status"]})
}

// GET /api/interviews/coverage
func GetCoverage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	schedules, err := utils.FindAndDecode[models.InterviewSchedule](ctx, db.InterviewSchedulesCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching schedules")
		return
	}
	trekMembers, err := utils.FindAndDecode[models.TrekMember](ctx, db.TrekMembersCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching members")
		return
	}
	templates, err := utils.FindAndDecode[models.InterviewTemplate](ctx, db.InterviewTemplatesCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching templates")
		return
	}

	memberRows, templateRows := AnalyzeCoverage(schedules, trekMembers, templates)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"per_member":   memberRows,
		"per_template": templateRows,
	})
}
