package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"casamia/constants"
	apperrors "casamia/errors"
	"casamia/models"
)

// memStore is an in-memory Store. Transactions are serialized and rolled
// back on error.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	rooms        map[uint]models.Room
	reservations map[uint]models.Reservation
	extras       map[uint]models.ExtraService
	nextID       uint

	failSave map[uint]error
}

func newMemStore() *memStore {
	return &memStore{
		rooms:        make(map[uint]models.Room),
		reservations: make(map[uint]models.Reservation),
		extras:       make(map[uint]models.ExtraService),
		failSave:     make(map[uint]error),
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) addRoom(hotelID uint, number int, roomType, status string) models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := models.Room{ID: s.id(), HotelID: hotelID, RoomNumber: number, Type: roomType, Capacity: 2, Price: 100, Status: status}
	s.rooms[room.ID] = room
	return room
}

func (s *memStore) addReservation(userID, roomID uint, entry, departure time.Time, state string) models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := models.Reservation{ID: s.id(), UserID: userID, RoomID: roomID, EntryDate: entry, DepartureDate: departure, State: state}
	s.reservations[r.ID] = r
	return r
}

func (s *memStore) addExtra(hotelID uint, name string) models.ExtraService {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := models.ExtraService{ID: s.id(), HotelID: hotelID, Name: name}
	s.extras[e.ID] = e
	return e
}

func (s *memStore) room(id uint) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

func (s *memStore) reservation(id uint) models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations[id]
}

func (s *memStore) activeOn(roomID uint) []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reservation
	for _, r := range s.reservations {
		if r.RoomID == roomID && r.State == constants.ReservationActive {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return &r, nil
}

func (s *memStore) LockRoom(ctx context.Context, id uint) (*models.Room, error) {
	return s.FindRoom(ctx, id)
}

func (s *memStore) UpdateRoomStatus(ctx context.Context, id uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	r.Status = status
	s.rooms[id] = r
	return nil
}

func (s *memStore) DeleteRoom(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	delete(s.rooms, id)
	return nil
}

func (s *memStore) SubstituteRooms(ctx context.Context, hotelID uint, roomType string, exclude []uint) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	skip := make(map[uint]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var out []models.Room
	for _, r := range s.rooms {
		if r.HotelID == hotelID && r.Type == roomType && r.Status == constants.RoomStatusAvailable && !skip[r.ID] {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (s *memStore) FindReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, apperrors.ErrReservationNotFound
	}
	return &r, nil
}

func (s *memStore) ActiveReservations(ctx context.Context, roomID uint) ([]models.Reservation, error) {
	return s.activeOn(roomID), nil
}

func (s *memStore) OverlappingReservations(ctx context.Context, roomID uint, period models.Interval, excludeID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range s.activeOn(roomID) {
		if r.ID != excludeID && r.Period().Overlaps(period) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) BusyRoomIDs(ctx context.Context, period models.Interval) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[uint]bool)
	var ids []uint
	for _, r := range s.reservations {
		if r.State == constants.ReservationActive && r.Period().Overlaps(period) && !seen[r.RoomID] {
			seen[r.RoomID] = true
			ids = append(ids, r.RoomID)
		}
	}
	return ids, nil
}

func (s *memStore) ExpiredReservations(ctx context.Context, now time.Time) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reservation
	for _, r := range s.reservations {
		if r.State == constants.ReservationActive && !r.DepartureDate.After(now) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	r.CreatedAt = time.Now()
	stored := *r
	stored.Room = nil
	s.reservations[r.ID] = stored
	return nil
}

func (s *memStore) SaveReservation(ctx context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failSave[r.ID]; err != nil {
		return err
	}
	if _, ok := s.reservations[r.ID]; !ok {
		return apperrors.ErrReservationNotFound
	}
	stored := *r
	stored.Room = nil
	s.reservations[r.ID] = stored
	return nil
}

func (s *memStore) CountExtraServices(ctx context.Context, hotelID uint, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, id := range ids {
		if e, ok := s.extras[uint(id)]; ok && e.HotelID == hotelID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	rooms := make(map[uint]models.Room, len(s.rooms))
	for k, v := range s.rooms {
		rooms[k] = v
	}
	reservations := make(map[uint]models.Reservation, len(s.reservations))
	for k, v := range s.reservations {
		reservations[k] = v
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.rooms = rooms
		s.reservations = reservations
		s.mu.Unlock()
		return err
	}
	return nil
}
