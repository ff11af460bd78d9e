package models

import (
	"testing"
	"time"

	"casamia/constants"

	"github.com/stretchr/testify/assert"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	stay := Interval{Start: date(1, 10), End: date(1, 15)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"inside", Interval{Start: date(1, 11), End: date(1, 12)}, true},
		{"covering", Interval{Start: date(1, 1), End: date(1, 31)}, true},
		{"tail", Interval{Start: date(1, 12), End: date(1, 20)}, true},
		{"head", Interval{Start: date(1, 5), End: date(1, 11)}, true},
		{"starts on departure", Interval{Start: date(1, 15), End: date(1, 20)}, false},
		{"ends on entry", Interval{Start: date(1, 5), End: date(1, 10)}, false},
		{"disjoint", Interval{Start: date(2, 1), End: date(2, 5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(stay))
		})
	}
}

func TestIntervalValid(t *testing.T) {
	assert.True(t, Interval{Start: date(1, 10), End: date(1, 11)}.Valid())
	assert.False(t, Interval{Start: date(1, 10), End: date(1, 10)}.Valid())
	assert.False(t, Interval{Start: date(1, 11), End: date(1, 10)}.Valid())
}

func TestReservationStateTransitions(t *testing.T) {
	r := &Reservation{State: constants.ReservationActive}
	assert.True(t, r.IsActive())
	assert.NoError(t, GetReservationState(r.State).Cancel(r))
	assert.Equal(t, constants.ReservationCancelled, r.State)
	assert.ErrorIs(t, GetReservationState(r.State).Cancel(r), ErrAlreadyCancelled)
	assert.Error(t, GetReservationState(r.State).Finish(r))
	assert.Equal(t, constants.ReservationCancelled, r.State)

	r = &Reservation{State: constants.ReservationActive}
	assert.NoError(t, GetReservationState(r.State).Finish(r))
	assert.Equal(t, constants.ReservationFinished, r.State)
	assert.ErrorIs(t, GetReservationState(r.State).Finish(r), ErrAlreadyFinished)
	assert.Error(t, GetReservationState(r.State).Cancel(r))

	r = &Reservation{State: "pendiente"}
	assert.Error(t, GetReservationState(r.State).Cancel(r))
	assert.Equal(t, "pendiente", r.State)
}

func TestRoomValidation(t *testing.T) {
	room := &Room{Type: constants.RoomTypeSuite, Status: constants.RoomStatusAvailable}
	assert.NoError(t, room.ValidateType())
	assert.NoError(t, room.ValidateStatus())
	assert.True(t, room.IsAvailable())

	room.Type = "penthouse"
	room.Status = "LIMPIEZA"
	assert.Error(t, room.ValidateType())
	assert.Error(t, room.ValidateStatus())
	assert.False(t, room.IsAvailable())
}
