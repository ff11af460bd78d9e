package validator

import (
	"testing"
	"time"

	"casamia/constants"
	"casamia/dto"
	"casamia/errors"
	"casamia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func validRequest() dto.ReservationRequest {
	return dto.ReservationRequest{
		RoomID:        4,
		DateEntry:     "2024-01-10",
		DepartureDate: "2024-01-15",
		CardNumber:    "4111111111111111",
		CVV:           "123",
		Expired:       "12/27",
	}
}

func TestValidateReservation(t *testing.T) {
	dates, err := ValidateReservation(validRequest(), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), dates.Entry)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), dates.Departure)
	assert.Equal(t, 2027, dates.Expiry.Year())
	assert.Equal(t, time.December, dates.Expiry.Month())
	assert.Equal(t, 31, dates.Expiry.Day())
}

func TestValidateReservationRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*dto.ReservationRequest)
		code   errors.ErrorCode
	}{
		{"short card", func(r *dto.ReservationRequest) { r.CardNumber = "411111111111" }, errors.ErrCodeValidation},
		{"card with letters", func(r *dto.ReservationRequest) { r.CardNumber = "4111ab1111111111" }, errors.ErrCodeValidation},
		{"long cvv", func(r *dto.ReservationRequest) { r.CVV = "12345" }, errors.ErrCodeValidation},
		{"cvv with letters", func(r *dto.ReservationRequest) { r.CVV = "12a" }, errors.ErrCodeValidation},
		{"expired card", func(r *dto.ReservationRequest) { r.Expired = "2023-12-31" }, errors.ErrCodeValidation},
		{"unreadable expiry", func(r *dto.ReservationRequest) { r.Expired = "soon" }, errors.ErrCodeInvalidFormat},
		{"bad entry", func(r *dto.ReservationRequest) { r.DateEntry = "10/01/2024" }, errors.ErrCodeInvalidFormat},
		{"bad departure", func(r *dto.ReservationRequest) { r.DepartureDate = "" }, errors.ErrCodeInvalidFormat},
		{"same day", func(r *dto.ReservationRequest) { r.DepartureDate = r.DateEntry }, errors.ErrCodeValidation},
		{"departure first", func(r *dto.ReservationRequest) { r.DateEntry, r.DepartureDate = r.DepartureDate, r.DateEntry }, errors.ErrCodeValidation},
		{"bad extra id", func(r *dto.ReservationRequest) { r.ExtraServices = []int64{3, 0} }, errors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			_, err := ValidateReservation(req, now)
			assert.Equal(t, tt.code, errors.Code(err))
		})
	}
}

func TestParseExpiry(t *testing.T) {
	for _, value := range []string{"2026-05-31", "05/26", "05/2026"} {
		got, err := ParseExpiry(value)
		require.NoError(t, err, value)
		assert.Equal(t, 2026, got.Year(), value)
		assert.Equal(t, time.May, got.Month(), value)
		assert.Equal(t, 31, got.Day(), value)
	}
}

func TestValidateRoom(t *testing.T) {
	room := &models.Room{HotelID: 1, RoomNumber: 101, Type: constants.RoomTypeDouble, Capacity: 2, Price: 80}
	assert.NoError(t, ValidateRoom(room))

	bad := *room
	bad.HotelID = 0
	assert.Equal(t, errors.ErrCodeRequiredField, errors.Code(ValidateRoom(&bad)))

	bad = *room
	bad.Type = "castillo"
	assert.Equal(t, errors.ErrCodeValidation, errors.Code(ValidateRoom(&bad)))

	bad = *room
	bad.Price = -1
	assert.Equal(t, errors.ErrCodeValidation, errors.Code(ValidateRoom(&bad)))
}

func TestValidateHotel(t *testing.T) {
	hotel := &models.Hotel{Name: "Miramar", Address: "Paseo 1", Qualification: 4}
	assert.NoError(t, ValidateHotel(hotel))

	hotel.Qualification = 6
	assert.Equal(t, errors.ErrCodeValidation, errors.Code(ValidateHotel(hotel)))

	hotel.Qualification = 3
	hotel.Name = " "
	assert.Equal(t, errors.ErrCodeRequiredField, errors.Code(ValidateHotel(hotel)))
}

func TestBindingError(t *testing.T) {
	err := ValidateStruct(dto.ExtraServiceRequest{Cost: -2})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.Code(err))
	assert.Contains(t, errors.GetAppError(err).Message, "Name")

	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.Code(BindingError(assert.AnError)))
}
