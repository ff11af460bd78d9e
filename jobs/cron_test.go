package jobs

import (
	"context"
	"errors"
	"testing"

	"casamia/constants"
	"casamia/models"
	"casamia/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaintainer struct {
	finished  int
	finishErr error
	statuses  map[uint]string
	failing   map[uint]bool
	refreshed []uint
}

func (m *fakeMaintainer) FinishExpired(ctx context.Context) (int, error) {
	return m.finished, m.finishErr
}

func (m *fakeMaintainer) RefreshRoomStatus(ctx context.Context, room models.Room) (string, error) {
	m.refreshed = append(m.refreshed, room.ID)
	if m.failing[room.ID] {
		return "", errors.New("db down")
	}
	return m.statuses[room.ID], nil
}

type fakeRooms struct {
	rooms []models.Room
	err   error
}

func (f fakeRooms) AllRooms(ctx context.Context) ([]models.Room, error) {
	return f.rooms, f.err
}

func TestRefreshRoomsCountsChanges(t *testing.T) {
	rooms := fakeRooms{rooms: []models.Room{
		{ID: 1, Status: constants.RoomStatusOccupied},
		{ID: 2, Status: constants.RoomStatusAvailable},
		{ID: 3, Status: constants.RoomStatusAvailable},
		{ID: 4, Status: constants.RoomStatusAvailable},
	}}
	m := &fakeMaintainer{
		statuses: map[uint]string{
			1: constants.RoomStatusAvailable,
			2: constants.RoomStatusAvailable,
			4: constants.RoomStatusOccupied,
		},
		failing: map[uint]bool{3: true},
	}

	changed := RefreshRooms(context.Background(), m, rooms, logger.NopLogger{})
	assert.Equal(t, 2, changed)
	assert.Equal(t, []uint{1, 2, 3, 4}, m.refreshed)
}

func TestRefreshRoomsStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := &fakeMaintainer{}
	rooms := fakeRooms{rooms: []models.Room{{ID: 1}, {ID: 2}}}

	assert.Zero(t, RefreshRooms(ctx, m, rooms, logger.NopLogger{}))
	assert.Empty(t, m.refreshed)
}

func TestRefreshRoomsListingFails(t *testing.T) {
	m := &fakeMaintainer{}
	assert.Zero(t, RefreshRooms(context.Background(), m, fakeRooms{err: errors.New("db down")}, logger.NopLogger{}))
	assert.Empty(t, m.refreshed)
}

func TestInitCronJobsRegistersBothJobs(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, &fakeMaintainer{}, fakeRooms{}, nil))
	defer c.Stop()
	assert.Len(t, c.Entries(), 2)
}

func TestSchedules(t *testing.T) {
	for _, spec := range []string{FinishExpiredSpec, RefreshRoomsSpec} {
		_, err := cron.ParseStandard(spec)
		assert.NoError(t, err, spec)
	}
}
