package members

import (
	"testing"

	"trekhub/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTotality(t *testing.T) {
	legs := []string{models.LegArrival, models.LegInternal, models.LegDeparture}

	// Every present/absent combination of the three legs must land on
	// exactly one status, complete iff all, missing iff none.
	for mask := 0; mask < 8; mask++ {
		present := map[string]bool{}
		count := 0
		for i, leg := range legs {
			if mask&(1<<i) != 0 {
				present[leg] = true
				count++
			}
		}

		got := Classify(legs, present)
		switch count {
		case 3:
			assert.Equal(t, models.StatusComplete, got, "mask %b", mask)
		case 0:
			assert.Equal(t, models.StatusMissing, got, "mask %b", mask)
		default:
			assert.Equal(t, models.StatusPartial, got, "mask %b", mask)
		}
	}
}

func TestClassifyNonRequiredLegNeverBlocks(t *testing.T) {
	// Member exempt from the internal flight: arrival+departure alone
	// count as complete.
	m := models.TrekMember{RequiredLegs: []string{models.LegArrival, models.LegDeparture}}
	bookings := []models.FlightBooking{
		{Leg: models.LegArrival, FlightNumber: "QR652"},
		{Leg: models.LegDeparture, FlightNumber: "QR653"},
	}
	assert.Equal(t, models.StatusComplete, ClassifyMember(m, bookings))
}

func TestClassifyEmptyFlightNumberIsNotBooked(t *testing.T) {
	m := models.TrekMember{}
	bookings := []models.FlightBooking{
		{Leg: models.LegArrival, FlightNumber: ""},
	}
	assert.Equal(t, models.StatusMissing, ClassifyMember(m, bookings))
}

func TestClassifyMalformedFlightNumberStillCounts(t *testing.T) {
	m := models.TrekMember{RequiredLegs: []string{models.LegArrival}}
	bookings := []models.FlightBooking{
		{Leg: models.LegArrival, FlightNumber: "???not-a-flight???"},
	}
	assert.Equal(t, models.StatusComplete, ClassifyMember(m, bookings))
}

func TestRankByStatusStable(t *testing.T) {
	a := models.TrekMember{MemberID: "A", BookingStatus: models.StatusMissing}
	b := models.TrekMember{MemberID: "B", BookingStatus: models.StatusComplete}
	c := models.TrekMember{MemberID: "C", BookingStatus: models.StatusMissing}

	ranked := RankByStatus([]models.TrekMember{a, b, c})

	ids := []string{ranked[0].MemberID, ranked[1].MemberID, ranked[2].MemberID}
	assert.Equal(t, []string{"A", "C", "B"}, ids)
}

func TestRankByStatusDoesNotMutateInput(t *testing.T) {
	in := []models.TrekMember{
		{MemberID: "B", BookingStatus: models.StatusComplete},
		{MemberID: "A", BookingStatus: models.StatusMissing},
	}
	_ = RankByStatus(in)
	assert.Equal(t, "B", in[0].MemberID)
}
