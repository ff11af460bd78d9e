package builders

import (
	"testing"
	"time"

	"casamia/constants"
	"casamia/models"

	"github.com/stretchr/testify/assert"
)

func TestReservationBuilder(t *testing.T) {
	entry := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	departure := entry.AddDate(0, 0, 5)
	expiry := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
	room := &models.Room{ID: 4, HotelID: 2}

	r := NewReservationBuilder().
		WithUser(9).
		WithRoom(room).
		WithStay(entry, departure).
		WithExtraServices([]int64{1, 3}).
		WithCard("4111111111114242", "123", expiry).
		Build()

	assert.Equal(t, constants.ReservationActive, r.State)
	assert.Equal(t, uint(9), r.UserID)
	assert.Equal(t, uint(4), r.RoomID)
	assert.Same(t, room, r.Room)
	assert.Equal(t, entry, r.EntryDate)
	assert.Equal(t, departure, r.DepartureDate)
	assert.Equal(t, []int64{1, 3}, []int64(r.ExtraServiceIDs))
	assert.Equal(t, "4242", r.CardLast4)
	assert.Equal(t, expiry, r.CardExpiry)
}

func TestReservationBuilderWithoutExtras(t *testing.T) {
	r := NewReservationBuilder().WithExtraServices(nil).Build()
	assert.Nil(t, r.ExtraServiceIDs)
}
