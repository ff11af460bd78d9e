package controllers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"casamia/constants"
	"casamia/dto"
	"casamia/errors"
	"casamia/middleware"
	"casamia/models"
	"casamia/response"
	"casamia/services"
	"casamia/services/logger"
	"casamia/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	DB       *gorm.DB
	Booking  *services.BookingFacade
	Cache    services.RoomCache
	Uploader services.ImageUploader
	Logger   logger.Logger
}

type RoomControllerOptions struct {
	DB       *gorm.DB
	Booking  *services.BookingFacade
	Cache    services.RoomCache
	Uploader services.ImageUploader
	Logger   logger.Logger
}

func NewRoomController(opts RoomControllerOptions) *RoomController {
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	return &RoomController{
		DB:       opts.DB,
		Booking:  opts.Booking,
		Cache:    opts.Cache,
		Uploader: opts.Uploader,
		Logger:   opts.Logger,
	}
}

func (r *RoomController) invalidate(c *gin.Context, hotelID uint) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Invalidate(c.Request.Context(), hotelID); err != nil {
		r.Logger.Warn("room cache of hotel %d not invalidated: %v", hotelID, err)
	}
}

func (r *RoomController) findHotel(c *gin.Context, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.DB.WithContext(c.Request.Context()).First(&hotel, hotelID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeHotelNotFound, fmt.Sprintf("no hotel found with ID: %d", hotelID), nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find hotel", err)
	}
	return &hotel, nil
}

func (r *RoomController) findRoom(c *gin.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.DB.WithContext(c.Request.Context()).First(&room, roomID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, fmt.Sprintf("no room found with ID: %d", roomID), nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find room", err)
	}
	return &room, nil
}

// authorizeHotel enforces that hotel admins only manage their own hotels.
// Global admins pass.
func authorizeHotel(c *gin.Context, hotel *models.Hotel) error {
	userID, role := middleware.CurrentUser(c)
	if role == constants.RoleAdmin {
		return nil
	}
	if hotel.AdminID != userID {
		return errors.NewAppError(errors.ErrCodeForbidden, "not authorized to manage rooms of this hotel", nil)
	}
	return nil
}

func (r *RoomController) roomNumberTaken(c *gin.Context, hotelID uint, number int, exceptID uint) (bool, error) {
	var count int64
	query := r.DB.WithContext(c.Request.Context()).Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, number)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "check room number", err)
	}
	return count > 0, nil
}

func duplicateRoom(number int) error {
	return errors.NewAppError(errors.ErrCodeDuplicateRoom,
		fmt.Sprintf("a room with number %d already exists in this hotel", number), nil)
}

// AllRoomsByHotel godoc
// @Summary List the rooms of a hotel by id or by ?hotelName=
// @Tags room
// @Param idHotel path int false "hotel id"
// @Param hotelName query string false "hotel name"
// @Success 200 {object} response.Response
// @Router /room/available/{idHotel} [get]
func (r *RoomController) AllRoomsByHotel(c *gin.Context) {
	ctx := c.Request.Context()

	var hotel models.Hotel
	query := r.DB.WithContext(ctx).Where("status = ?", true)
	switch {
	case c.Param("idHotel") != "":
		id, err := uintParam(c, "idHotel")
		if err != nil {
			response.FromError(c, err)
			return
		}
		query = query.Where("id = ?", id)
	case c.Query("hotelName") != "":
		query = query.Where("name ILIKE ?", "%"+c.Query("hotelName")+"%")
	default:
		response.BadRequest(c, "Hotel ID or name is required")
		return
	}
	if err := query.First(&hotel).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.FromError(c, errors.ErrHotelNotFound)
			return
		}
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if r.Cache != nil {
		cached, err := r.Cache.Rooms(ctx, hotel.ID)
		if err == nil {
			rooms = cached
		} else if !stderrors.Is(err, services.ErrCacheMiss) {
			r.Logger.Warn("room cache read for hotel %d: %v", hotel.ID, err)
		}
	}
	if rooms == nil {
		if err := r.DB.WithContext(ctx).Where("hotel_id = ?", hotel.ID).Order("room_number").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if r.Cache != nil {
			if err := r.Cache.StoreRooms(ctx, hotel.ID, rooms); err != nil {
				r.Logger.Warn("room cache write for hotel %d: %v", hotel.ID, err)
			}
		}
	}

	if len(rooms) == 0 {
		response.NotFound(c, "No rooms found for this hotel")
		return
	}
	response.Success(c, toRoomResponses(rooms))
}

// RegisterRoomAdmin godoc
// @Summary Register a room in any hotel
// @Tags room
// @Security BearerAuth
// @Param body body dto.RoomRequest true "room"
// @Success 201 {object} response.Response
// @Router /room/registerAdmin [post]
func (r *RoomController) RegisterRoomAdmin(c *gin.Context) {
	r.registerRoom(c)
}

// RegisterRoomManager godoc
// @Summary Register a room in a hotel managed by the caller
// @Tags room
// @Security BearerAuth
// @Param body body dto.RoomRequest true "room"
// @Success 201 {object} response.Response
// @Router /room/registerManager [post]
func (r *RoomController) RegisterRoomManager(c *gin.Context) {
	r.registerRoom(c)
}

func (r *RoomController) registerRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	hotel, err := r.findHotel(c, req.HotelID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := authorizeHotel(c, hotel); err != nil {
		response.FromError(c, err)
		return
	}

	taken, err := r.roomNumberTaken(c, hotel.ID, req.RoomNumber, 0)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if taken {
		response.FromError(c, duplicateRoom(req.RoomNumber))
		return
	}

	room := models.Room{
		HotelID:    hotel.ID,
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Capacity:   req.Capacity,
		Price:      req.Price,
		Status:     constants.RoomStatusAvailable,
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}
	if err := r.DB.WithContext(c.Request.Context()).Create(&room).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			response.FromError(c, duplicateRoom(req.RoomNumber))
			return
		}
		response.ServerError(c)
		return
	}

	r.invalidate(c, hotel.ID)
	response.Created(c, "Room successfully registered", toRoomResponse(room))
}

// UpdateRoomAdmin godoc
// @Summary Edit any room
// @Tags room
// @Security BearerAuth
// @Param roomId path int true "room id"
// @Param body body dto.RoomUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /room/adminUpdate/{roomId} [put]
func (r *RoomController) UpdateRoomAdmin(c *gin.Context) {
	r.updateRoom(c)
}

// UpdateRoomManager godoc
// @Summary Edit a room of a hotel managed by the caller
// @Tags room
// @Security BearerAuth
// @Param roomId path int true "room id"
// @Param body body dto.RoomUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /room/managerUpdate/{roomId} [put]
func (r *RoomController) UpdateRoomManager(c *gin.Context) {
	r.updateRoom(c)
}

func (r *RoomController) updateRoom(c *gin.Context) {
	roomID, err := uintParam(c, "roomId")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req dto.RoomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	room, err := r.findRoom(c, roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	hotel, err := r.findHotel(c, room.HotelID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := authorizeHotel(c, hotel); err != nil {
		response.FromError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		taken, err := r.roomNumberTaken(c, room.HotelID, *req.RoomNumber, room.ID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		if taken {
			response.FromError(c, duplicateRoom(*req.RoomNumber))
			return
		}
		room.RoomNumber = *req.RoomNumber
		updates["room_number"] = room.RoomNumber
	}
	if req.Type != nil {
		room.Type = *req.Type
		updates["type"] = room.Type
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
		updates["capacity"] = room.Capacity
	}
	if req.Price != nil {
		room.Price = *req.Price
		updates["price"] = room.Price
	}
	if err := validator.ValidateRoom(room); err != nil {
		response.FromError(c, err)
		return
	}

	if len(updates) > 0 {
		if err := r.DB.WithContext(c.Request.Context()).Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error; err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				response.FromError(c, duplicateRoom(room.RoomNumber))
				return
			}
			response.ServerError(c)
			return
		}
		r.invalidate(c, room.HotelID)
	}

	c.JSON(http.StatusOK, response.Response{
		Code: 1,
		Mess: "Room successfully updated",
		Data: toRoomResponse(*room),
	})
}

// DeleteRoomAdmin godoc
// @Summary Delete any room, reassigning or cancelling its active reservations
// @Tags room
// @Security BearerAuth
// @Param roomId path int true "room id"
// @Success 200 {object} response.Response
// @Router /room/admin/{roomId} [delete]
func (r *RoomController) DeleteRoomAdmin(c *gin.Context) {
	r.deleteRoom(c)
}

// DeleteRoomManager godoc
// @Summary Delete a room of a hotel managed by the caller
// @Tags room
// @Security BearerAuth
// @Param roomId path int true "room id"
// @Success 200 {object} response.Response
// @Router /room/manager/{roomId} [delete]
func (r *RoomController) DeleteRoomManager(c *gin.Context) {
	r.deleteRoom(c)
}

func (r *RoomController) deleteRoom(c *gin.Context) {
	roomID, err := uintParam(c, "roomId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	room, err := r.findRoom(c, roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	var hotel models.Hotel
	if err := r.DB.WithContext(c.Request.Context()).First(&hotel, room.HotelID).Error; err == nil {
		if err := authorizeHotel(c, &hotel); err != nil {
			response.FromError(c, err)
			return
		}
	} else if _, role := middleware.CurrentUser(c); role != constants.RoleAdmin {
		response.FromError(c, errors.NewAppError(errors.ErrCodeForbidden, "not authorized to delete this room", nil))
		return
	}

	summary, err := r.Booking.DeleteRoom(c.Request.Context(), roomID)
	body := dto.RoomDeletionResponse{
		RoomID:                 summary.RoomID,
		AffectedReservations:   summary.Affected(),
		Resolved:               summary.Resolved,
		UnresolvedReservations: summary.Failed,
	}
	if err != nil {
		if len(summary.Failed) > 0 {
			code := errors.Code(err)
			c.JSON(errors.HTTPStatus(code), response.Response{
				Code:      0,
				Mess:      "Room kept: some reservations could not be resolved",
				ErrorCode: string(code),
				Data:      body,
			})
			return
		}
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Code: 1,
		Mess: fmt.Sprintf("Room deleted successfully. Affected reservations: %d", summary.Affected()),
		Data: body,
	})
}

// RoomAvailability godoc
// @Summary Whether a room is free for a stay
// @Tags room
// @Param roomId path int true "room id"
// @Param entry query string true "YYYY-MM-DD"
// @Param departure query string true "YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Router /room/{roomId}/availability [get]
func (r *RoomController) RoomAvailability(c *gin.Context) {
	roomID, err := uintParam(c, "roomId")
	if err != nil {
		response.FromError(c, err)
		return
	}
	entry, err := validator.ParseDate("entry", c.Query("entry"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	departure, err := validator.ParseDate("departure", c.Query("departure"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	available, err := r.Booking.Availability().IsAvailable(c.Request.Context(), roomID, models.Interval{Start: entry, End: departure})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.AvailabilityResponse{
		RoomID:        roomID,
		DateEntry:     entry.Format(constants.DateLayout),
		DepartureDate: departure.Format(constants.DateLayout),
		Available:     available,
	})
}

// UploadAvatar godoc
// @Summary Upload the room picture
// @Tags room
// @Security BearerAuth
// @Accept multipart/form-data
// @Param roomId path int true "room id"
// @Param avatar formData file true "image"
// @Success 200 {object} response.Response
// @Router /room/{roomId}/avatar [post]
func (r *RoomController) UploadAvatar(c *gin.Context) {
	if r.Uploader == nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeValidation, "image upload is not configured", nil))
		return
	}
	roomID, err := uintParam(c, "roomId")
	if err != nil {
		response.FromError(c, err)
		return
	}
	room, err := r.findRoom(c, roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	hotel, err := r.findHotel(c, room.HotelID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := authorizeHotel(c, hotel); err != nil {
		response.FromError(c, err)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "avatar file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "avatar file cannot be read")
		return
	}
	defer file.Close()

	url, err := r.Uploader.Upload(c.Request.Context(), file, fmt.Sprintf("casamia/hotels/%d/rooms", room.HotelID))
	if err != nil {
		r.Logger.Error("avatar upload for room %d: %v", room.ID, err)
		response.ServerError(c)
		return
	}
	if err := r.DB.WithContext(c.Request.Context()).Model(&models.Room{}).Where("id = ?", room.ID).Update("avatar", url).Error; err != nil {
		response.ServerError(c)
		return
	}
	room.Avatar = url
	r.invalidate(c, room.HotelID)
	response.Success(c, toRoomResponse(*room))
}
