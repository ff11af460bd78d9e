package dto

// RoomRequest is the body for registering a room
type RoomRequest struct {
	HotelID    uint    `json:"hotelId" binding:"required"`
	RoomNumber int     `json:"numeroCuarto" binding:"required,gt=0"`
	Type       string  `json:"tipo" binding:"required,oneof=simple doble suite familiar lujo"`
	Capacity   int     `json:"capacidad" binding:"required,gt=0"`
	Price      float64 `json:"precio" binding:"required,gt=0"`
}

// RoomUpdateRequest is the body for editing a room. Nil fields are left
// unchanged. Status is derived from reservations and cannot be edited.
type RoomUpdateRequest struct {
	RoomNumber *int     `json:"numeroCuarto" binding:"omitempty,gt=0"`
	Type       *string  `json:"tipo" binding:"omitempty,oneof=simple doble suite familiar lujo"`
	Capacity   *int     `json:"capacidad" binding:"omitempty,gt=0"`
	Price      *float64 `json:"precio" binding:"omitempty,gt=0"`
}

type RoomResponse struct {
	ID         uint    `json:"id"`
	HotelID    uint    `json:"hotelId"`
	RoomNumber int     `json:"numeroCuarto"`
	Type       string  `json:"tipo"`
	Capacity   int     `json:"capacidad"`
	Price      float64 `json:"precio"`
	Status     string  `json:"status"`
	Avatar     string  `json:"avatar,omitempty"`
}

type RoomDeletionResponse struct {
	RoomID                 uint        `json:"roomId"`
	AffectedReservations   int         `json:"affectedReservations"`
	Resolved               interface{} `json:"resolved"`
	UnresolvedReservations []uint      `json:"unresolvedReservations,omitempty"`
}
