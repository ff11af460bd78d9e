package jobs

import (
	"context"
	"time"

	"casamia/models"
	"casamia/services/logger"

	"github.com/robfig/cron/v3"
)

// RoomMaintainer closes past stays and rewrites room statuses
type RoomMaintainer interface {
	FinishExpired(ctx context.Context) (int, error)
	RefreshRoomStatus(ctx context.Context, room models.Room) (string, error)
}

// RoomSource lists the rooms to refresh
type RoomSource interface {
	AllRooms(ctx context.Context) ([]models.Room, error)
}

const (
	FinishExpiredSpec = "0 0 * * *"
	RefreshRoomsSpec  = "0 * * * *"

	jobTimeout = 10 * time.Minute
)

// FinishExpired runs one pass of the daily job
func FinishExpired(ctx context.Context, m RoomMaintainer, log logger.Logger) {
	n, err := m.FinishExpired(ctx)
	if err != nil {
		log.Error("finishing expired reservations: %v", err)
	}
	log.Info("%d reservations finished", n)
}

// RefreshRooms rewrites the status of every room. A failing room does not
// stop the pass. Returns how many rooms changed status.
func RefreshRooms(ctx context.Context, m RoomMaintainer, rooms RoomSource, log logger.Logger) int {
	list, err := rooms.AllRooms(ctx)
	if err != nil {
		log.Error("listing rooms: %v", err)
		return 0
	}
	changed := 0
	for _, room := range list {
		if ctx.Err() != nil {
			log.Warn("room refresh interrupted: %v", ctx.Err())
			break
		}
		status, err := m.RefreshRoomStatus(ctx, room)
		if err != nil {
			log.Error("refreshing room %d: %v", room.ID, err)
			continue
		}
		if status != room.Status {
			log.Debug("room %d: %s -> %s", room.ID, room.Status, status)
			changed++
		}
	}
	return changed
}

// InitCronJobs registers the maintenance jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, m RoomMaintainer, rooms RoomSource, log logger.Logger) error {
	if log == nil {
		log = logger.NopLogger{}
	}

	_, err := c.AddFunc(FinishExpiredSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		FinishExpired(ctx, m, log)
	})
	if err != nil {
		return err
	}

	_, err = c.AddFunc(RefreshRoomsSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if n := RefreshRooms(ctx, m, rooms, log); n > 0 {
			log.Info("%d room statuses corrected", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
