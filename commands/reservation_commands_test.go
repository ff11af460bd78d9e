package commands

import (
	"context"
	"errors"
	"testing"

	"casamia/constants"
	"casamia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	saved    []models.Reservation
	statuses map[uint]string
	saveErr  error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{statuses: make(map[uint]string)}
}

func (w *fakeWriter) SaveReservation(ctx context.Context, r *models.Reservation) error {
	if w.saveErr != nil {
		return w.saveErr
	}
	w.saved = append(w.saved, *r)
	return nil
}

func (w *fakeWriter) UpdateRoomStatus(ctx context.Context, roomID uint, status string) error {
	w.statuses[roomID] = status
	return nil
}

func TestReassignReservationCommand(t *testing.T) {
	w := newFakeWriter()
	r := &models.Reservation{ID: 1, RoomID: 10, State: constants.ReservationActive}
	sub := &models.Room{ID: 20, Status: constants.RoomStatusAvailable}

	cmd := NewReassignReservationCommand(w, r, sub)
	require.NoError(t, cmd.Execute(context.Background()))

	assert.Equal(t, OutcomeReassigned, cmd.Outcome())
	assert.Equal(t, uint(20), r.RoomID)
	require.Len(t, w.saved, 1)
	assert.Equal(t, uint(20), w.saved[0].RoomID)
	assert.Equal(t, constants.RoomStatusOccupied, w.statuses[20])
	assert.Equal(t, constants.RoomStatusOccupied, sub.Status)
}

func TestReassignRestoresRoomOnFailure(t *testing.T) {
	w := newFakeWriter()
	w.saveErr = errors.New("write failed")
	r := &models.Reservation{ID: 1, RoomID: 10, State: constants.ReservationActive}

	err := NewReassignReservationCommand(w, r, &models.Room{ID: 20}).Execute(context.Background())
	assert.Error(t, err)
	assert.Equal(t, uint(10), r.RoomID)
	assert.Empty(t, w.statuses)
}

func TestCancelReservationCommand(t *testing.T) {
	w := newFakeWriter()
	r := &models.Reservation{ID: 1, RoomID: 10, State: constants.ReservationActive}

	cmd := NewCancelReservationCommand(w, r)
	require.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, OutcomeCancelled, cmd.Outcome())
	assert.Equal(t, constants.ReservationCancelled, w.saved[0].State)

	assert.Error(t, cmd.Execute(context.Background()))
	assert.Len(t, w.saved, 1)
}

func TestCancelRestoresStateOnFailure(t *testing.T) {
	w := newFakeWriter()
	w.saveErr = errors.New("write failed")
	r := &models.Reservation{ID: 1, State: constants.ReservationActive}

	assert.Error(t, NewCancelReservationCommand(w, r).Execute(context.Background()))
	assert.Equal(t, constants.ReservationActive, r.State)
}
