package dto

type HotelRequest struct {
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Qualification int      `json:"qualification" binding:"required,min=1,max=5"`
	Category      string   `json:"category" binding:"required"`
	Amenities     []string `json:"amenities"`
	AdminID       uint     `json:"admin" binding:"required"`
}

type HotelSearchRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Qualification int    `json:"qualification" binding:"omitempty,min=1,max=5"`
	Category      string `json:"category"`
}

type ExtraServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Description string  `json:"description"`
}

// HotelUpdateRequest changes only the fields it carries
type HotelUpdateRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1"`
	Address       *string  `json:"address" binding:"omitempty,min=1"`
	Qualification *int     `json:"qualification" binding:"omitempty,min=1,max=5"`
	Category      *string  `json:"category" binding:"omitempty,min=1"`
	Amenities     []string `json:"amenities"`
	AdminID       *uint    `json:"admin" binding:"omitempty,min=1"`
	Status        *bool    `json:"status"`
}

func (r HotelUpdateRequest) Empty() bool {
	return r.Name == nil && r.Address == nil && r.Qualification == nil && r.Category == nil &&
		r.Amenities == nil && r.AdminID == nil && r.Status == nil
}

type HotelDeletionResponse struct {
	HotelID                uint   `json:"hotelId"`
	DeletedRooms           []uint `json:"deletedRooms"`
	CancelledReservations  int    `json:"cancelledReservations"`
	UnresolvedReservations []uint `json:"unresolvedReservations,omitempty"`
}
