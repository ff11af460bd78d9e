package commands

import (
	"context"

	"casamia/constants"
	"casamia/models"
)

// ReservationWriter is the storage needed by the commands
type ReservationWriter interface {
	SaveReservation(ctx context.Context, r *models.Reservation) error
	UpdateRoomStatus(ctx context.Context, roomID uint, status string) error
}

// ReservationCommand is one step of resolving a displaced reservation
type ReservationCommand interface {
	Execute(ctx context.Context) error
	Outcome() string
}

const (
	OutcomeReassigned = "reassigned"
	OutcomeCancelled  = "cancelled"
)

// ReassignReservationCommand moves a reservation to a substitute room and
// marks the substitute occupied
type ReassignReservationCommand struct {
	w           ReservationWriter
	reservation *models.Reservation
	substitute  *models.Room
}

func NewReassignReservationCommand(w ReservationWriter, reservation *models.Reservation, substitute *models.Room) *ReassignReservationCommand {
	return &ReassignReservationCommand{
		w:           w,
		reservation: reservation,
		substitute:  substitute,
	}
}

func (c *ReassignReservationCommand) Execute(ctx context.Context) error {
	previous := c.reservation.RoomID
	c.reservation.RoomID = c.substitute.ID
	c.reservation.Room = nil
	if err := c.w.SaveReservation(ctx, c.reservation); err != nil {
		c.reservation.RoomID = previous
		return err
	}
	if err := c.w.UpdateRoomStatus(ctx, c.substitute.ID, constants.RoomStatusOccupied); err != nil {
		return err
	}
	c.substitute.Status = constants.RoomStatusOccupied
	return nil
}

func (c *ReassignReservationCommand) Outcome() string {
	return OutcomeReassigned
}

// CancelReservationCommand force-cancels an active reservation
type CancelReservationCommand struct {
	w           ReservationWriter
	reservation *models.Reservation
}

func NewCancelReservationCommand(w ReservationWriter, reservation *models.Reservation) *CancelReservationCommand {
	return &CancelReservationCommand{
		w:           w,
		reservation: reservation,
	}
}

func (c *CancelReservationCommand) Execute(ctx context.Context) error {
	if err := models.GetReservationState(c.reservation.State).Cancel(c.reservation); err != nil {
		return err
	}
	if err := c.w.SaveReservation(ctx, c.reservation); err != nil {
		c.reservation.State = constants.ReservationActive
		return err
	}
	return nil
}

func (c *CancelReservationCommand) Outcome() string {
	return OutcomeCancelled
}
