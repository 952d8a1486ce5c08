package members

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

// POST /api/members
func CreateMember(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var member models.TrekMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if member.Name == "" || member.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	member.MemberID = utils.NewID("tm")
	member.Email = utils.NormalizeEmail(member.Email)
	member.BookingStatus = Classify(RequiredLegsFor(member), nil)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TrekMembersCollection.InsertOne(ctx, member); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting member")
		return
	}

	mq.Emit("trekMembers", "created", member.MemberID)
	utils.RespondWithJSON(w, http.StatusCreated, member)
}

// POST /api/members/bulk
func BulkImportMembers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var incoming []models.TrekMember
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(incoming) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No members to import")
		return
	}

	docs := make([]interface{}, 0, len(incoming))
	for i := range incoming {
		if incoming[i].Name == "" || incoming[i].Email == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Every member needs a name and email")
			return
		}
		incoming[i].MemberID = utils.NewID("tm")
		incoming[i].Email = utils.NormalizeEmail(incoming[i].Email)
		incoming[i].BookingStatus = Classify(RequiredLegsFor(incoming[i]), nil)
		docs = append(docs, incoming[i])
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.TrekMembersCollection.InsertMany(ctx, docs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error importing members")
		return
	}

	mq.Emit("trekMembers", "created", "bulk")
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"imported": len(docs)})
}

// GET /api/members
func GetMembers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	members, err := LoadWithDerivedStatus(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching members")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, members)
}

// GET /api/members/prioritized
func GetMembersPrioritized(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	members, err := LoadWithDerivedStatus(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching members")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, RankByStatus(members))
}

// GET /api/members/member/:id
func GetMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	memberID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var member models.TrekMember
	err := db.TrekMembersCollection.FindOne(ctx, bson.M{"memberid": memberID}).Decode(&member)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	bookings, err := utils.FindAndDecode[models.FlightBooking](ctx, db.FlightBookingsCollection, bson.M{"memberid": memberID})
	if err == nil {
		member.BookingStatus = ClassifyMember(member, bookings)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"member":   member,
		"bookings": bookings,
	})
}

// PUT /api/members/member/:id
func UpdateMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	memberID := ps.ByName("id")

	var updated models.TrekMember
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.TrekMember
	err := db.TrekMembersCollection.FindOne(ctx, bson.M{"memberid": memberID}).Decode(&existing)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":                      updated.Name,
		"email":                     utils.NormalizeEmail(updated.Email),
		"phone":                     updated.Phone,
		"emergency_contact":         updated.EmergencyContact,
		"emergency_phone":           updated.EmergencyPhone,
		"blood_group":               updated.BloodGroup,
		"medical_certificate":       updated.MedicalCertificate,
		"travel_insurance":          updated.TravelInsurance,
		"trekking_gear":             updated.TrekkingGear,
		"emergency_contacts_shared": updated.EmergencyContactsShared,
		"has_access":                updated.HasAccess,
		"required_legs":             updated.RequiredLegs,
	}}

	if _, err := db.TrekMembersCollection.UpdateOne(ctx, bson.M{"memberid": memberID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating member")
		return
	}

	// Schedules keep joining on memberid; refresh their display copies.
	if updated.Name != existing.Name {
		if _, err := db.InterviewSchedulesCollection.UpdateMany(ctx,
			bson.M{"memberid": memberID},
			bson.M{"$set": bson.M{"interviewee_name": updated.Name}},
		); err != nil {
			log.Printf("interviewee_name refresh failed for %s: %v", memberID, err)
		}
	}

	// Required legs may have changed, so the derived status may too.
	status, err := RecomputeBookingStatus(ctx, memberID)
	if err != nil {
		log.Printf("status recompute failed for %s: %v", memberID, err)
	}

	mq.Emit("trekMembers", "updated", memberID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Member updated", "booking_status": status})
}

// LoadWithDerivedStatus re-derives every member's booking status
// from their flight bookings at read time so the stored field can never
// serve stale data.
func LoadWithDerivedStatus(ctx context.Context) ([]models.TrekMember, error) {
	members, err := utils.FindAndDecode[models.TrekMember](ctx, db.TrekMembersCollection, bson.M{})
	if err != nil {
		return nil, err
	}

	bookings, err := utils.FindAndDecode[models.FlightBooking](ctx, db.FlightBookingsCollection, bson.M{})
	if err != nil {
		return nil, err
	}

	byMember := make(map[string][]models.FlightBooking)
	for _, b := range bookings {
		byMember[b.MemberID] = append(byMember[b.MemberID], b)
	}

	for i := range members {
		members[i].BookingStatus = ClassifyMember(members[i], byMember[members[i].MemberID])
	}
	return members, nil
}

// RecomputeBookingStatus derives and stores a member's booking status in
// the same operation that changed the underlying legs.
func RecomputeBookingStatus(ctx context.Context, memberID string) (string, error) {
	var member models.TrekMember
	if err := db.TrekMembersCollection.FindOne(ctx, bson.M{"memberid": memberID}).Decode(&member); err != nil {
		return "", err
	}

	bookings, err := utils.FindAndDecode[models.FlightBooking](ctx, db.FlightBookingsCollection, bson.M{"memberid": memberID})
	if err != nil {
		return "", err
	}

	status := ClassifyMember(member, bookings)
	_, err = db.TrekMembersCollection.UpdateOne(ctx,
		bson.M{"memberid": memberID},
		bson.M{"$set": bson.M{"booking_status": status}},
	)
	return status, err
}
