package validator

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"casamia/constants"
	"casamia/dto"
	"casamia/errors"
	"casamia/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

// newValidate reads the same `binding` tags gin validates on requests
func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// ReservationDates are the parsed dates of a reservation request
type ReservationDates struct {
	Entry     time.Time
	Departure time.Time
	Expiry    time.Time
}

// ValidateStruct runs the `binding` tags of v outside a gin bind
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return BindingError(err)
	}
	return nil
}

// BindingError turns a gin binding or validator error into a validation AppError
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return errors.NewAppError(errors.ErrCodeValidation, "invalid fields: "+strings.Join(fields, ", "), err)
	}
	return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid request body", err)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field), err)
	}
	return t, nil
}

// ParseExpiry accepts YYYY-MM-DD, MM/YY or MM/YYYY. Month forms expire at the
// end of that month.
func ParseExpiry(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(constants.DateLayout, value); err == nil {
		return t, nil
	}
	for _, layout := range []string{"01/06", "01/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
		}
	}
	return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid expiration date", nil)
}

// ValidateReservation checks the card and the stay of a booking request
func ValidateReservation(req dto.ReservationRequest, now time.Time) (ReservationDates, error) {
	var dates ReservationDates

	if len(req.CardNumber) != 16 || !digitsRegex.MatchString(req.CardNumber) {
		return dates, errors.NewAppError(errors.ErrCodeValidation, "card number must have 16 digits", nil)
	}
	if l := len(req.CVV); l < 3 || l > 4 || !digitsRegex.MatchString(req.CVV) {
		return dates, errors.NewAppError(errors.ErrCodeValidation, "CVV must have 3 or 4 digits", nil)
	}

	expiry, err := ParseExpiry(req.Expired)
	if err != nil {
		return dates, err
	}
	if !expiry.After(now) {
		return dates, errors.NewAppError(errors.ErrCodeValidation, "card is expired", nil)
	}

	entry, err := ParseDate("dateEntry", req.DateEntry)
	if err != nil {
		return dates, err
	}
	departure, err := ParseDate("departureDate", req.DepartureDate)
	if err != nil {
		return dates, err
	}
	if !entry.Before(departure) {
		return dates, errors.NewAppError(errors.ErrCodeValidation, "departure date must be after the date of entry", nil)
	}

	for _, id := range req.ExtraServices {
		if id <= 0 {
			return dates, errors.NewAppError(errors.ErrCodeValidation, "extra service ids must be positive", nil)
		}
	}

	dates.Entry = entry
	dates.Departure = departure
	dates.Expiry = expiry
	return dates, nil
}

// ValidateRoom checks a room before it is stored
func ValidateRoom(room *models.Room) error {
	if room.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel is required", nil)
	}
	if room.RoomNumber <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "room number must be positive", nil)
	}
	if err := room.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if room.Status != "" {
		if err := room.ValidateStatus(); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
		}
	}
	if room.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "capacity must be positive", nil)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "price cannot be negative", nil)
	}
	return nil
}

// ValidateHotel checks a hotel before it is stored
func ValidateHotel(hotel *models.Hotel) error {
	if strings.TrimSpace(hotel.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel name is required", nil)
	}
	if strings.TrimSpace(hotel.Address) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel address is required", nil)
	}
	if err := hotel.ValidateQualification(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}
