package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/members"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var validLegs = map[string]bool{
	models.LegArrival:   true,
	models.LegInternal:  true,
	models.LegDeparture: true,
}

// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.FlightBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if booking.MemberID == "" || !validLegs[booking.Leg] {
		utils.RespondWithError(w, http.StatusBadRequest, "memberid and a valid leg are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// The booking must belong to an existing member.
	n, err := db.TrekMembersCollection.CountDocuments(ctx, bson.M{"memberid": booking.MemberID})
	if err != nil || n == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	booking.BookingID = utils.NewID("fb")
	if _, err := db.FlightBookingsCollection.InsertOne(ctx, booking); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting booking")
		return
	}

	recomputeOwner(ctx, booking.MemberID)
	mq.Emit("flightBookings", "created", booking.BookingID)
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// GET /api/bookings/member/:memberid
func GetBookingsForMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	memberID := ps.ByName("memberid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookings, err := utils.FindAndDecode[models.FlightBooking](ctx, db.FlightBookingsCollection, bson.M{"memberid": memberID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// PUT /api/bookings/:id: admin correction only; bookings are otherwise
// immutable once created.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var updated models.FlightBooking
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if updated.Leg != "" && !validLegs[updated.Leg] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid leg")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.FlightBooking
	if err := db.FlightBookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	set := bson.M{
		"flight_number":  updated.FlightNumber,
		"route":          updated.Route,
		"date":           updated.Date,
		"departure_time": updated.DepartureTime,
		"arrival_time":   updated.ArrivalTime,
		"ticket_ref":     updated.TicketRef,
	}
	if updated.Leg != "" {
		set["leg"] = updated.Leg
	}

	if _, err := db.FlightBookingsCollection.UpdateOne(ctx, bson.M{"bookingid": bookingID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating booking")
		return
	}

	recomputeOwner(ctx, existing.MemberID)
	mq.Emit("flightBookings", "updated", bookingID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking updated"})
}

// DELETE /api/bookings/:id
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.FlightBooking
	if err := db.FlightBookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if _, err := db.FlightBookingsCollection.DeleteOne(ctx, bson.M{"bookingid": bookingID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting booking")
		return
	}

	recomputeOwner(ctx, existing.MemberID)
	mq.Emit("flightBookings", "deleted", bookingID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking deleted"})
}

// recomputeOwner keeps the stored derived status in step with the legs
// that were just written.
func recomputeOwner(ctx context.Context, memberID string) {
	if _, err := members.RecomputeBookingStatus(ctx, memberID); err != nil {
		log.Printf("status recompute failed for %s: %v", memberID, err)
	}
	mq.Emit("trekMembers", "updated", memberID)
}
