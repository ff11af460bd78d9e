package services

import (
	"context"

	"casamia/models"
	"casamia/services/logger"
	"casamia/services/notification"
)

// BookingFacade runs availability operations and fans out their side
// effects: websocket notifications and room cache invalidation. Side effect
// failures are logged and never fail the operation.
type BookingFacade struct {
	availability *AvailabilityService
	notifier     notification.Service
	cache        RoomCache
	logger       logger.Logger
}

func NewBookingFacade(availability *AvailabilityService, notifier notification.Service, cache RoomCache, log logger.Logger) *BookingFacade {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &BookingFacade{
		availability: availability,
		notifier:     notifier,
		cache:        cache,
		logger:       log,
	}
}

func (f *BookingFacade) Availability() *AvailabilityService {
	return f.availability
}

func (f *BookingFacade) notify(message string) {
	if f.notifier == nil {
		return
	}
	if err := f.notifier.SendMessage(message); err != nil {
		f.logger.Warn("notification not sent: %v", err)
	}
}

func (f *BookingFacade) invalidate(ctx context.Context, hotelIDs ...uint) {
	if f.cache == nil {
		return
	}
	for _, id := range hotelIDs {
		if err := f.cache.Invalidate(ctx, id); err != nil {
			f.logger.Warn("room cache of hotel %d not invalidated: %v", id, err)
		}
	}
}

// CreateBooking books a room
func (f *BookingFacade) CreateBooking(ctx context.Context, in BookingInput) (*models.Reservation, error) {
	reservation, err := f.availability.Book(ctx, in)
	if err != nil {
		return nil, err
	}
	room := reservation.Room
	f.invalidate(ctx, room.HotelID)
	f.notify(notification.NewMessageBuilder(notification.EventReservationCreated).
		Hotel(room.HotelID).Room(room.ID).Reservation(reservation.ID).Status(room.Status).Build())
	return reservation, nil
}

// CancelBooking cancels a reservation on behalf of its owner
func (f *BookingFacade) CancelBooking(ctx context.Context, reservationID, userID uint) (*models.Reservation, error) {
	reservation, err := f.availability.Cancel(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	msg := notification.NewMessageBuilder(notification.EventReservationCancelled).
		Room(reservation.RoomID).Reservation(reservation.ID)
	if room := reservation.Room; room != nil {
		msg.Hotel(room.HotelID).Status(room.Status)
		f.invalidate(ctx, room.HotelID)
	}
	f.notify(msg.Build())
	return reservation, nil
}

// DeleteRoom deletes a room after resolving its reservations
func (f *BookingFacade) DeleteRoom(ctx context.Context, roomID uint) (DeletionSummary, error) {
	summary, err := f.availability.DeleteRoom(ctx, roomID)
	f.publishDeletion(ctx, summary, err)
	return summary, err
}

// DeleteHotelRooms force-deletes rooms of a hotel that is going away,
// cancelling their reservations. Every room is attempted; the first error is
// returned along with all summaries.
func (f *BookingFacade) DeleteHotelRooms(ctx context.Context, roomIDs []uint) ([]DeletionSummary, error) {
	summaries := make([]DeletionSummary, 0, len(roomIDs))
	var firstErr error
	for _, id := range roomIDs {
		summary, err := f.availability.ForceDeleteRoom(ctx, id)
		f.publishDeletion(ctx, summary, err)
		summaries = append(summaries, summary)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return summaries, firstErr
}

func (f *BookingFacade) publishDeletion(ctx context.Context, summary DeletionSummary, err error) {
	if summary.HotelID != 0 && (summary.Affected() > 0 || summary.Deleted) {
		f.invalidate(ctx, summary.HotelID)
	}
	for _, r := range summary.Resolved {
		if r.NewRoomID != 0 {
			f.notify(notification.NewMessageBuilder(notification.EventReservationMoved).
				Hotel(summary.HotelID).Room(r.NewRoomID).Reservation(r.ReservationID).Build())
		} else {
			f.notify(notification.NewMessageBuilder(notification.EventReservationCancelled).
				Hotel(summary.HotelID).Room(summary.RoomID).Reservation(r.ReservationID).Build())
		}
	}
	if err != nil {
		return
	}
	f.notify(notification.NewMessageBuilder(notification.EventRoomDeleted).
		Hotel(summary.HotelID).Room(summary.RoomID).Build())
}

// FinishExpired closes past stays
func (f *BookingFacade) FinishExpired(ctx context.Context) (int, error) {
	return f.availability.FinishExpired(ctx)
}

// RefreshRoomStatus rewrites a room status from the ledger and broadcasts it
func (f *BookingFacade) RefreshRoomStatus(ctx context.Context, room models.Room) (string, error) {
	status, err := f.availability.RefreshRoomStatus(ctx, room.ID)
	if err != nil {
		return "", err
	}
	if status != room.Status {
		f.invalidate(ctx, room.HotelID)
		f.notify(notification.NewMessageBuilder(notification.EventRoomStatus).
			Hotel(room.HotelID).Room(room.ID).Status(status).Build())
	}
	return status, nil
}
