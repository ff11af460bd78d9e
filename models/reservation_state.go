package models

import (
	"errors"

	"casamia/constants"
)

var (
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
	ErrAlreadyFinished  = errors.New("reservation already finished")
)

// ReservationState defines the transitions allowed from a reservation state
type ReservationState interface {
	Cancel(r *Reservation) error
	Finish(r *Reservation) error
}

// ActiveState accepts both transitions
type ActiveState struct{}

func (s *ActiveState) Cancel(r *Reservation) error {
	r.State = constants.ReservationCancelled
	return nil
}

func (s *ActiveState) Finish(r *Reservation) error {
	r.State = constants.ReservationFinished
	return nil
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Cancel(r *Reservation) error {
	return ErrAlreadyCancelled
}

func (s *CancelledState) Finish(r *Reservation) error {
	return errors.New("cannot finish cancelled reservation")
}

// FinishedState is terminal
type FinishedState struct{}

func (s *FinishedState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel finished reservation")
}

func (s *FinishedState) Finish(r *Reservation) error {
	return ErrAlreadyFinished
}

// GetReservationState returns the state handler for a stored state value
func GetReservationState(state string) ReservationState {
	switch state {
	case constants.ReservationActive:
		return &ActiveState{}
	case constants.ReservationCancelled:
		return &CancelledState{}
	case constants.ReservationFinished:
		return &FinishedState{}
	default:
		// Unknown values never transition.
		return &CancelledState{}
	}
}
