package members

import (
	"sort"

	"trekhub/models"
)

// severity orders booking statuses for display prioritization.
var severity = map[string]int{
	models.StatusMissing:  3,
	models.StatusPartial:  2,
	models.StatusComplete: 1,
}

// RequiredLegsFor returns the member's required booking legs, falling
// back to the default set when no override is stored. A member who skips
// the internal flight simply omits it from RequiredLegs and that leg
// never blocks completeness.
func RequiredLegsFor(m models.TrekMember) []string {
	if len(m.RequiredLegs) > 0 {
		return m.RequiredLegs
	}
	return models.DefaultRequiredLegs
}

// PresentLegs reports which legs have a booking on file. Presence means a
// non-empty flight number; no format or date validation is applied, a
// malformed flight number still counts as booked.
func PresentLegs(bookings []models.FlightBooking) map[string]bool {
	present := make(map[string]bool)
	for _, b := range bookings {
		if b.FlightNumber != "" {
			present[b.Leg] = true
		}
	}
	return present
}

// Classify maps a member's booked legs to a booking status: complete when
// every required leg is present, missing when none are, partial otherwise.
// A member with no required legs has nothing outstanding and is complete.
func Classify(requiredLegs []string, present map[string]bool) string {
	if len(requiredLegs) == 0 {
		return models.StatusComplete
	}

	booked := 0
	for _, leg := range requiredLegs {
		if present[leg] {
			booked++
		}
	}

	switch booked {
	case len(requiredLegs):
		return models.StatusComplete
	case 0:
		return models.StatusMissing
	default:
		return models.StatusPartial
	}
}

// ClassifyMember derives the member's status from their bookings.
func ClassifyMember(m models.TrekMember, bookings []models.FlightBooking) string {
	return Classify(RequiredLegsFor(m), PresentLegs(bookings))
}

// RankByStatus orders members most-urgent first (missing, then partial,
// then complete). The sort is explicitly stable so members with equal
// severity keep their original relative order.
func RankByStatus(members []models.TrekMember) []models.TrekMember {
	ranked := make([]models.TrekMember, len(members))
	copy(ranked, members)
	sort.SliceStable(ranked, func(i, j int) bool {
		return severity[ranked[i].BookingStatus] > severity[ranked[j].BookingStatus]
	})
	return ranked
}
