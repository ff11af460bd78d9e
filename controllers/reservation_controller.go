package controllers

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"casamia/constants"
	"casamia/dto"
	"casamia/errors"
	"casamia/middleware"
	"casamia/models"
	"casamia/response"
	"casamia/services"
	"casamia/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB      *gorm.DB
	Booking *services.BookingFacade
	Now     func() time.Time
}

func NewReservationController(db *gorm.DB, booking *services.BookingFacade) *ReservationController {
	return &ReservationController{DB: db, Booking: booking, Now: time.Now}
}

// Reserve godoc
// @Summary Book a room
// @Tags reservation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ReservationRequest true "reservation"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reservation/Reserve [post]
func (rc *ReservationController) Reserve(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	dates, err := validator.ValidateReservation(req, rc.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}

	userID, _ := middleware.CurrentUser(c)
	reservation, err := rc.Booking.CreateBooking(c.Request.Context(), services.BookingInput{
		UserID:          userID,
		RoomID:          req.RoomID,
		EntryDate:       dates.Entry,
		DepartureDate:   dates.Departure,
		ExtraServiceIDs: req.ExtraServices,
		CardNumber:      req.CardNumber,
		CVV:             req.CVV,
		CardExpiry:      dates.Expiry,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Reservation completed successfully", toReservationResponse(*reservation))
}

// Cancel godoc
// @Summary Cancel one of the caller's active reservations
// @Tags reservation
// @Security BearerAuth
// @Param reservationId path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservation/Cancel/{reservationId} [put]
func (rc *ReservationController) Cancel(c *gin.Context) {
	reservationID, err := uintParam(c, "reservationId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	userID, _ := middleware.CurrentUser(c)
	reservation, err := rc.Booking.CancelBooking(c.Request.Context(), reservationID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Code: 1,
		Mess: "Reservation canceled successfully",
		Data: toReservationResponse(*reservation),
	})
}

// MyReservations godoc
// @Summary Active reservations of the caller
// @Tags reservation
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reservation/my-reservations [get]
func (rc *ReservationController) MyReservations(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var reservations []models.Reservation
	err := rc.DB.WithContext(c.Request.Context()).
		Preload("Room").
		Where("user_id = ? AND state = ?", userID, constants.ReservationActive).
		Order("entry_date").
		Find(&reservations).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toReservationResponses(reservations))
}

// findUser resolves a numeric id or a username
func (rc *ReservationController) findUser(c *gin.Context, identifier string) (*models.User, error) {
	var user models.User
	query := rc.DB.WithContext(c.Request.Context())
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("username = ?", identifier)
	}
	if err := query.First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "user not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find user", err)
	}
	return &user, nil
}

// UserReservationsAdmin godoc
// @Summary Every reservation of a user
// @Tags reservation
// @Security BearerAuth
// @Param identifier path string true "user id or username"
// @Success 200 {object} response.Response
// @Router /reservation/user-reservations/{identifier} [get]
func (rc *ReservationController) UserReservationsAdmin(c *gin.Context) {
	user, err := rc.findUser(c, c.Param("identifier"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var reservations []models.Reservation
	err = rc.DB.WithContext(c.Request.Context()).
		Preload("Room").
		Where("user_id = ?", user.ID).
		Order("entry_date").
		Find(&reservations).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toReservationResponses(reservations))
}

// UserReservationsHotelAdmin godoc
// @Summary Reservations of a user in the hotels managed by the caller
// @Tags reservation
// @Security BearerAuth
// @Param identifier path string true "user id or username"
// @Success 200 {object} response.Response
// @Router /reservation/admin/hotel-reservations/{identifier} [get]
func (rc *ReservationController) UserReservationsHotelAdmin(c *gin.Context) {
	adminID, _ := middleware.CurrentUser(c)
	user, err := rc.findUser(c, c.Param("identifier"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	managed := rc.DB.Model(&models.Hotel{}).Select("id").Where("admin_id = ?", adminID)
	var reservations []models.Reservation
	err = rc.DB.WithContext(c.Request.Context()).
		Preload("Room").
		Joins("JOIN rooms ON rooms.id = reservations.room_id").
		Where("reservations.user_id = ? AND rooms.hotel_id IN (?)", user.ID, managed).
		Order("reservations.entry_date").
		Find(&reservations).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toReservationResponses(reservations))
}
