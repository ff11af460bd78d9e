package notification

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder(t *testing.T) {
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	msg := NewMessageBuilder(EventReservationMoved).
		Hotel(2).Room(9).Reservation(31).Status("OCUPADA").At(at).
		Build()

	var e Event
	require.NoError(t, json.Unmarshal([]byte(msg), &e))
	assert.True(t, e.At.Equal(at))
	e.At = time.Time{}
	assert.Equal(t, Event{Type: EventReservationMoved, HotelID: 2, RoomID: 9, ReservationID: 31, Status: "OCUPADA"}, e)
}

func TestMessageBuilderOmitsEmptyFields(t *testing.T) {
	msg := NewMessageBuilder(EventRoomDeleted).Room(4).Build()
	assert.Contains(t, msg, `"type":"room.deleted"`)
	assert.Contains(t, msg, `"roomId":4`)
	assert.NotContains(t, msg, "hotelId")
	assert.NotContains(t, msg, "status")
}

func TestMelodyServiceWithoutInstance(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).SendMessage("{}"))
}
