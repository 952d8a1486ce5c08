package dashboard

import (
	"context"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/interviews"
	"trekhub/members"
	"trekhub/models"
	"trekhub/stats"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// BookingTile is the booking-readiness summary block.
type BookingTile struct {
	Ready   int `json:"ready"`
	Partial int `json:"partial"`
	Missing int `json:"missing"`
	Total   int `json:"total"`
}

// BuildBookingTile counts members per derived booking status.
func BuildBookingTile(trekMembers []models.TrekMember) BookingTile {
	counts := stats.Summarize(trekMembers, func(m models.TrekMember) string {
		return m.BookingStatus
	})
	return BookingTile{
		Ready:   counts[models.StatusComplete],
		Partial: counts[models.StatusPartial],
		Missing: counts[models.StatusMissing],
		Total:   len(trekMembers),
	}
}

// GET /api/dashboard/summary
// One call backing the landing page tiles: booking readiness, equipment
// state, interview completion, everything counted fresh on each request.
func GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	trekMembers, err := members.LoadWithDerivedStatus(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching members")
		return
	}

	equipment, err := utils.FindAndDecode[models.Equipment](ctx, db.EquipmentCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching equipment")
		return
	}
	equipmentCounts := stats.Summarize(equipment, func(e models.Equipment) string {
		return e.Status
	})

	schedules, err := utils.FindAndDecode[models.InterviewSchedule](ctx, db.InterviewSchedulesCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching schedules")
		return
	}
	interviewCounts := stats.Summarize(schedules, func(s models.InterviewSchedule) string {
		return s.Status
	})

	prepared := 0
	for _, m := range trekMembers {
		if m.MedicalCertificate && m.TravelInsurance && m.TrekkingGear && m.EmergencyContactsShared {
			prepared++
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"bookings": BuildBookingTile(trekMembers),
		"preparation": utils.M{
			"prepared": prepared,
			"percent":  stats.Percentage(prepared, len(trekMembers)),
		},
		"equipment": utils.M{
			"counts": equipmentCounts,
			"total":  len(equipment),
		},
		"interviews": utils.M{
			"counts":  interviewCounts,
			"total":   len(schedules),
			"percent": stats.Percentage(interviewCounts[models.InterviewCompleted], len(schedules)),
		},
	})
}

// GET /api/dashboard/coverage: thin alias for clients that render the
// coverage tables on the landing page.
func GetCoverage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	interviews.GetCoverage(w, r, ps)
}
