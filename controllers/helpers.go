package controllers

import (
	"strconv"

	"casamia/constants"
	"casamia/dto"
	"casamia/errors"
	"casamia/models"

	"github.com/gin-gonic/gin"
)

func uintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, name+" must be a positive integer", err)
	}
	return uint(v), nil
}

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		RoomNumber: room.RoomNumber,
		Type:       room.Type,
		Capacity:   room.Capacity,
		Price:      room.Price,
		Status:     room.Status,
		Avatar:     room.Avatar,
	}
}

func toRoomResponses(rooms []models.Room) []dto.RoomResponse {
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out
}

func toReservationResponse(r models.Reservation) dto.ReservationResponse {
	res := dto.ReservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		RoomID:        r.RoomID,
		DateEntry:     r.EntryDate.Format(constants.DateLayout),
		DepartureDate: r.DepartureDate.Format(constants.DateLayout),
		State:         r.State,
		ExtraServices: []int64(r.ExtraServiceIDs),
		CardLast4:     r.CardLast4,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if res.ExtraServices == nil {
		res.ExtraServices = []int64{}
	}
	if r.Room != nil {
		res.Room = &dto.ReservationRoomResponse{
			ID:         r.Room.ID,
			HotelID:    r.Room.HotelID,
			RoomNumber: r.Room.RoomNumber,
			Type:       r.Room.Type,
			Status:     r.Room.Status,
		}
	}
	return res
}

func toReservationResponses(reservations []models.Reservation) []dto.ReservationResponse {
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return out
}
