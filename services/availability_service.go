package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casamia/builders"
	"casamia/commands"
	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"
	"casamia/services/logger"
)

// BookingInput is a validated booking request
type BookingInput struct {
	UserID          uint
	RoomID          uint
	EntryDate       time.Time
	DepartureDate   time.Time
	ExtraServiceIDs []int64
	CardNumber      string
	CVV             string
	CardExpiry      time.Time
}

// ResolvedReservation records what happened to one displaced reservation
type ResolvedReservation struct {
	ReservationID uint   `json:"reservationId"`
	Outcome       string `json:"outcome"`
	NewRoomID     uint   `json:"newRoomId,omitempty"`
}

// DeletionSummary is the result of deleting a room
type DeletionSummary struct {
	RoomID   uint                  `json:"roomId"`
	HotelID  uint                  `json:"hotelId"`
	Deleted  bool                  `json:"deleted"`
	Resolved []ResolvedReservation `json:"resolved"`
	Failed   []uint                `json:"failed,omitempty"`
}

// Affected is the number of reservations touched by the deletion
func (d DeletionSummary) Affected() int {
	return len(d.Resolved)
}

// AvailabilityService owns every decision that links reservations to rooms.
// All work on a room runs under that room's lock and inside one transaction.
type AvailabilityService struct {
	store          Store
	locker         Locker
	logger         logger.Logger
	lockWait       time.Duration
	substituteWait time.Duration
	now            func() time.Time
}

type AvailabilityServiceOptions struct {
	Store    Store
	Locker   Locker
	Logger   logger.Logger
	LockWait time.Duration
	// SubstituteLockWait bounds the wait on a substitute room during a
	// deletion. A substitute still locked after that wait is skipped.
	SubstituteLockWait time.Duration
	Now                func() time.Time
}

const maxCancelAttempts = 3

func NewAvailabilityService(opts AvailabilityServiceOptions) *AvailabilityService {
	s := &AvailabilityService{
		store:          opts.Store,
		locker:         opts.Locker,
		logger:         opts.Logger,
		lockWait:       opts.LockWait,
		substituteWait: opts.SubstituteLockWait,
		now:            opts.Now,
	}
	if s.locker == nil {
		s.locker = NewKeyedMutex()
	}
	if s.logger == nil {
		s.logger = logger.NopLogger{}
	}
	if s.lockWait <= 0 {
		s.lockWait = 5 * time.Second
	}
	if s.substituteWait <= 0 || s.substituteWait > s.lockWait {
		s.substituteWait = min(s.lockWait, 500*time.Millisecond)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *AvailabilityService) withRoomLock(ctx context.Context, roomID uint, fn func() error) error {
	unlock, err := s.lockRoom(ctx, roomID, s.lockWait)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}

func (s *AvailabilityService) lockRoom(ctx context.Context, roomID uint, wait time.Duration) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	return s.locker.Lock(lockCtx, roomLockKey(roomID))
}

// IsAvailable reports whether no active reservation on the room overlaps period.
func (s *AvailabilityService) IsAvailable(ctx context.Context, roomID uint, period models.Interval) (bool, error) {
	if !period.Valid() {
		return false, apperrors.NewAppError(apperrors.ErrCodeValidation, "departure date must be after the date of entry", nil)
	}
	if _, err := s.store.FindRoom(ctx, roomID); err != nil {
		return false, err
	}
	conflicts, err := s.store.OverlappingReservations(ctx, roomID, period, 0)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Book creates an active reservation and marks the room occupied.
func (s *AvailabilityService) Book(ctx context.Context, in BookingInput) (*models.Reservation, error) {
	period := models.Interval{Start: in.EntryDate, End: in.DepartureDate}
	if !period.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "departure date must be after the date of entry", nil)
	}
	extras := uniqueIDs(in.ExtraServiceIDs)

	var created *models.Reservation
	err := s.withRoomLock(ctx, in.RoomID, func() error {
		return s.store.Transaction(ctx, func(tx Store) error {
			room, err := tx.LockRoom(ctx, in.RoomID)
			if err != nil {
				return err
			}

			if len(extras) > 0 {
				n, err := tx.CountExtraServices(ctx, room.HotelID, extras)
				if err != nil {
					return err
				}
				if n != int64(len(extras)) {
					return apperrors.NewAppError(apperrors.ErrCodeInvalidExtraService, "some extra services do not belong to the room's hotel", nil)
				}
			}

			// The status flag is advisory, the ledger decides.
			conflicts, err := tx.OverlappingReservations(ctx, room.ID, period, 0)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return apperrors.ErrRoomUnavailable
			}

			reservation := builders.NewReservationBuilder().
				WithUser(in.UserID).
				WithRoom(room).
				WithStay(in.EntryDate, in.DepartureDate).
				WithExtraServices(extras).
				WithCard(in.CardNumber, in.CVV, in.CardExpiry).
				Build()
			if err := tx.CreateReservation(ctx, reservation); err != nil {
				return err
			}
			if room.Status != constants.RoomStatusOccupied {
				if err := tx.UpdateRoomStatus(ctx, room.ID, constants.RoomStatusOccupied); err != nil {
					return err
				}
				room.Status = constants.RoomStatusOccupied
			}
			reservation.Room = room
			created = reservation
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation %d booked on room %d [%s, %s)", created.ID, created.RoomID,
		created.EntryDate.Format(constants.DateLayout), created.DepartureDate.Format(constants.DateLayout))
	return created, nil
}

// Cancel cancels an active reservation owned by userID and frees the room
// when nothing else occupies it between now and the cancelled departure.
func (s *AvailabilityService) Cancel(ctx context.Context, reservationID, userID uint) (*models.Reservation, error) {
	reservation, err := s.store.FindReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}

	roomID := reservation.RoomID
	for attempt := 1; ; attempt++ {
		cancelled, movedTo, err := s.cancelOnRoom(ctx, reservationID, roomID)
		if err != nil {
			return nil, err
		}
		if movedTo == 0 {
			reservation = cancelled
			break
		}
		if attempt == maxCancelAttempts {
			return nil, apperrors.NewAppError(apperrors.ErrCodeLockTimeout, "reservation is being moved, try again", nil)
		}
		// Reassigned while waiting for the lock, follow it.
		s.logger.Debug("reservation %d moved from room %d to %d before cancel", reservationID, roomID, movedTo)
		roomID = movedTo
	}
	if room, err := s.store.FindRoom(ctx, roomID); err == nil {
		reservation.Room = room
	}
	s.logger.Info("reservation %d cancelled by user %d", reservation.ID, userID)
	return reservation, nil
}

// cancelOnRoom cancels the reservation under roomID's lock. movedTo is the
// reservation's current room when it no longer sits on roomID, and nothing
// is written in that case.
func (s *AvailabilityService) cancelOnRoom(ctx context.Context, reservationID, roomID uint) (*models.Reservation, uint, error) {
	var (
		cancelled *models.Reservation
		movedTo   uint
	)
	err := s.withRoomLock(ctx, roomID, func() error {
		return s.store.Transaction(ctx, func(tx Store) error {
			current, err := tx.FindReservation(ctx, reservationID)
			if err != nil {
				return err
			}
			if current.RoomID != roomID {
				movedTo = current.RoomID
				return nil
			}
			if err := models.GetReservationState(current.State).Cancel(current); err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeInvalidState, apperrors.ErrInvalidState.Message, err)
			}
			if err := tx.SaveReservation(ctx, current); err != nil {
				return err
			}

			window := models.Interval{Start: s.now(), End: current.DepartureDate}
			stillBusy := false
			if window.Valid() {
				others, err := tx.OverlappingReservations(ctx, roomID, window, current.ID)
				if err != nil {
					return err
				}
				stillBusy = len(others) > 0
			}
			if !stillBusy {
				if err := tx.UpdateRoomStatus(ctx, roomID, constants.RoomStatusAvailable); err != nil {
					if !errors.Is(err, apperrors.ErrRoomNotFound) {
						return err
					}
				}
			}
			cancelled = current
			return nil
		})
	})
	return cancelled, movedTo, err
}

// DeleteRoom resolves every active reservation of the room, reassigning it to
// a substitute of the same hotel and type or cancelling it, and then deletes
// the room. Reservations are resolved one by one; when any of them fails the
// room is kept and the error is returned with the partial summary.
func (s *AvailabilityService) DeleteRoom(ctx context.Context, roomID uint) (DeletionSummary, error) {
	return s.deleteRoom(ctx, roomID, true)
}

// ForceDeleteRoom cancels every active reservation of the room without
// looking for substitutes, then deletes the room.
func (s *AvailabilityService) ForceDeleteRoom(ctx context.Context, roomID uint) (DeletionSummary, error) {
	return s.deleteRoom(ctx, roomID, false)
}

func (s *AvailabilityService) deleteRoom(ctx context.Context, roomID uint, reassign bool) (DeletionSummary, error) {
	summary := DeletionSummary{RoomID: roomID}
	err := s.withRoomLock(ctx, roomID, func() error {
		room, err := s.store.FindRoom(ctx, roomID)
		if err != nil {
			return err
		}
		summary.HotelID = room.HotelID

		active, err := s.store.ActiveReservations(ctx, roomID)
		if err != nil {
			return err
		}

		var firstErr error
		for i := range active {
			var (
				resolved ResolvedReservation
				err      error
			)
			if reassign {
				resolved, err = s.resolveDisplaced(ctx, room, &active[i])
			} else {
				resolved, err = s.cancelDisplaced(ctx, &active[i])
			}
			if err != nil {
				s.logger.Error("room %d deletion: reservation %d unresolved: %v", roomID, active[i].ID, err)
				summary.Failed = append(summary.Failed, active[i].ID)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			summary.Resolved = append(summary.Resolved, resolved)
		}
		if firstErr != nil {
			return apperrors.NewAppError(apperrors.Code(firstErr),
				fmt.Sprintf("%d reservations could not be resolved, room kept", len(summary.Failed)), firstErr)
		}

		return s.store.Transaction(ctx, func(tx Store) error {
			if _, err := tx.LockRoom(ctx, roomID); err != nil {
				return err
			}
			left, err := tx.ActiveReservations(ctx, roomID)
			if err != nil {
				return err
			}
			if len(left) > 0 {
				return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
					fmt.Sprintf("room took %d new reservations while being deleted, room kept", len(left)), nil)
			}
			if err := tx.DeleteRoom(ctx, roomID); err != nil {
				return err
			}
			summary.Deleted = true
			return nil
		})
	})
	if err != nil {
		summary.Deleted = false
		return summary, err
	}
	s.logger.Info("room %d deleted, affected reservations: %d", roomID, summary.Affected())
	return summary, nil
}

func (s *AvailabilityService) resolveDisplaced(ctx context.Context, room *models.Room, reservation *models.Reservation) (ResolvedReservation, error) {
	period := reservation.Period()
	busy, err := s.store.BusyRoomIDs(ctx, period)
	if err != nil {
		return ResolvedReservation{}, err
	}
	candidates, err := s.store.SubstituteRooms(ctx, room.HotelID, room.Type, append(busy, room.ID))
	if err != nil {
		return ResolvedReservation{}, err
	}

	for i := range candidates {
		candidate := &candidates[i]
		resolved, ok, err := s.tryReassign(ctx, reservation, candidate)
		if err != nil {
			return ResolvedReservation{}, err
		}
		if ok {
			return resolved, nil
		}
	}
	return s.cancelDisplaced(ctx, reservation)
}

func (s *AvailabilityService) cancelDisplaced(ctx context.Context, reservation *models.Reservation) (ResolvedReservation, error) {
	cmd := commands.NewCancelReservationCommand(s.store, reservation)
	if err := cmd.Execute(ctx); err != nil {
		return ResolvedReservation{}, err
	}
	return ResolvedReservation{ReservationID: reservation.ID, Outcome: cmd.Outcome()}, nil
}

// tryReassign moves reservation onto candidate under the candidate's lock.
// ok is false when the candidate stopped being eligible or its lock stayed
// busy for the substitute wait, which covers a concurrent deletion of the
// candidate itself.
func (s *AvailabilityService) tryReassign(ctx context.Context, reservation *models.Reservation, candidate *models.Room) (ResolvedReservation, bool, error) {
	unlock, err := s.lockRoom(ctx, candidate.ID, s.substituteWait)
	if err != nil {
		if errors.Is(err, apperrors.ErrLockTimeout) && ctx.Err() == nil {
			s.logger.Warn("substitute room %d busy, skipped for reservation %d", candidate.ID, reservation.ID)
			return ResolvedReservation{}, false, nil
		}
		return ResolvedReservation{}, false, err
	}
	defer unlock()

	var resolved ResolvedReservation
	ok := false
	err = s.store.Transaction(ctx, func(tx Store) error {
		fresh, err := tx.LockRoom(ctx, candidate.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrRoomNotFound) {
				return nil
			}
			return err
		}
		if !fresh.IsAvailable() {
			return nil
		}
		conflicts, err := tx.OverlappingReservations(ctx, fresh.ID, reservation.Period(), reservation.ID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return nil
		}
		cmd := commands.NewReassignReservationCommand(tx, reservation, fresh)
		if err := cmd.Execute(ctx); err != nil {
			return err
		}
		resolved = ResolvedReservation{ReservationID: reservation.ID, Outcome: cmd.Outcome(), NewRoomID: fresh.ID}
		ok = true
		return nil
	})
	return resolved, ok, err
}

// FinishExpired moves active reservations whose departure has passed to
// finalizada, and frees rooms left without upcoming stays. Returns the
// number of finished reservations.
func (s *AvailabilityService) FinishExpired(ctx context.Context) (int, error) {
	now := s.now()
	expired, err := s.store.ExpiredReservations(ctx, now)
	if err != nil {
		return 0, err
	}

	byRoom := make(map[uint][]uint)
	var order []uint
	for _, r := range expired {
		if _, ok := byRoom[r.RoomID]; !ok {
			order = append(order, r.RoomID)
		}
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r.ID)
	}

	finished := 0
	var firstErr error
	for _, roomID := range order {
		ids := byRoom[roomID]
		n := 0
		err := s.withRoomLock(ctx, roomID, func() error {
			return s.store.Transaction(ctx, func(tx Store) error {
				n = 0
				for _, id := range ids {
					r, err := tx.FindReservation(ctx, id)
					if err != nil {
						return err
					}
					if err := models.GetReservationState(r.State).Finish(r); err != nil {
						continue
					}
					if err := tx.SaveReservation(ctx, r); err != nil {
						return err
					}
					n++
				}
				_, err := s.deriveStatus(ctx, tx, roomID, now)
				return err
			})
		})
		if err != nil {
			s.logger.Error("finishing reservations of room %d: %v", roomID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		finished += n
	}
	return finished, firstErr
}

// RefreshRoomStatus rewrites the room status from the ledger: OCUPADA while an
// active reservation has not yet departed, DISPONIBLE otherwise.
func (s *AvailabilityService) RefreshRoomStatus(ctx context.Context, roomID uint) (string, error) {
	var status string
	err := s.withRoomLock(ctx, roomID, func() error {
		return s.store.Transaction(ctx, func(tx Store) error {
			var err error
			status, err = s.deriveStatus(ctx, tx, roomID, s.now())
			return err
		})
	})
	return status, err
}

func (s *AvailabilityService) deriveStatus(ctx context.Context, tx Store, roomID uint, now time.Time) (string, error) {
	room, err := tx.LockRoom(ctx, roomID)
	if err != nil {
		return "", err
	}
	upcoming, err := tx.OverlappingReservations(ctx, roomID, models.Interval{Start: now, End: farFuture}, 0)
	if err != nil {
		return "", err
	}
	status := constants.RoomStatusAvailable
	if len(upcoming) > 0 {
		status = constants.RoomStatusOccupied
	}
	if room.Status != status {
		if err := tx.UpdateRoomStatus(ctx, roomID, status); err != nil {
			return "", err
		}
	}
	return status, nil
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
