package notification

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Event types pushed to websocket clients
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationMoved     = "reservation.reassigned"
	EventRoomStatus           = "room.status"
	EventRoomDeleted          = "room.deleted"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event is the JSON payload of a broadcast
type Event struct {
	Type          string    `json:"type"`
	HotelID       uint      `json:"hotelId,omitempty"`
	RoomID        uint      `json:"roomId,omitempty"`
	ReservationID uint      `json:"reservationId,omitempty"`
	Status        string    `json:"status,omitempty"`
	At            time.Time `json:"at"`
}

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(eventType string) *MessageBuilder {
	return &MessageBuilder{event: Event{Type: eventType}}
}

func (b *MessageBuilder) Hotel(id uint) *MessageBuilder {
	b.event.HotelID = id
	return b
}

func (b *MessageBuilder) Room(id uint) *MessageBuilder {
	b.event.RoomID = id
	return b
}

func (b *MessageBuilder) Reservation(id uint) *MessageBuilder {
	b.event.ReservationID = id
	return b
}

func (b *MessageBuilder) Status(status string) *MessageBuilder {
	b.event.Status = status
	return b
}

func (b *MessageBuilder) At(t time.Time) *MessageBuilder {
	b.event.At = t
	return b
}

func (b *MessageBuilder) Build() string {
	if b.event.At.IsZero() {
		b.event.At = time.Now()
	}
	data, err := json.Marshal(b.event)
	if err != nil {
		return fmt.Sprintf(`{"type":%q}`, b.event.Type)
	}
	return string(data)
}
