package dashboard

import (
	"testing"

	"trekhub/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildBookingTileOneOfEach(t *testing.T) {
	trekMembers := []models.TrekMember{
		{MemberID: "tm-1", BookingStatus: models.StatusComplete},
		{MemberID: "tm-2", BookingStatus: models.StatusPartial},
		{MemberID: "tm-3", BookingStatus: models.StatusMissing},
	}

	tile := BuildBookingTile(trekMembers)

	assert.Equal(t, 1, tile.Ready)
	assert.Equal(t, 1, tile.Partial)
	assert.Equal(t, 1, tile.Missing)
	assert.Equal(t, 3, tile.Total)
}

func TestBuildBookingTileEmpty(t *testing.T) {
	tile := BuildBookingTile(nil)
	assert.Equal(t, BookingTile{}, tile)
}
