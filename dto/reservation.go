package dto

import "time"

// ReservationRequest is the body of POST /reservation/Reserve
type ReservationRequest struct {
	RoomID        uint    `json:"roomId" binding:"required"`
	DateEntry     string  `json:"dateEntry" binding:"required"`
	DepartureDate string  `json:"departureDate" binding:"required"`
	CardNumber    string  `json:"cardNumber" binding:"required,numeric,len=16"`
	CVV           string  `json:"CVV" binding:"required,numeric,min=3,max=4"`
	Expired       string  `json:"expired" binding:"required"`
	ExtraServices []int64 `json:"extraServices" binding:"omitempty,dive,gt=0"`
}

type ReservationRoomResponse struct {
	ID         uint   `json:"id"`
	HotelID    uint   `json:"hotelId"`
	RoomNumber int    `json:"roomNumber"`
	Type       string `json:"type"`
	Status     string `json:"status"`
}

type ReservationResponse struct {
	ID            uint                     `json:"id"`
	UserID        uint                     `json:"userId"`
	RoomID        uint                     `json:"roomId"`
	Room          *ReservationRoomResponse `json:"room,omitempty"`
	DateEntry     string                   `json:"dateEntry"`
	DepartureDate string                   `json:"departureDate"`
	State         string                   `json:"state"`
	ExtraServices []int64                  `json:"extraServices"`
	CardLast4     string                   `json:"cardLast4"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type AvailabilityResponse struct {
	RoomID        uint   `json:"roomId"`
	DateEntry     string `json:"dateEntry"`
	DepartureDate string `json:"departureDate"`
	Available     bool   `json:"available"`
}
