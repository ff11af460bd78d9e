package controllers

import (
	stderrors "errors"
	"strconv"

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
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HotelController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Booking *services.BookingFacade
	Logger  logger.Logger
}

func NewHotelController(db *gorm.DB, rdb *redis.Client, booking *services.BookingFacade, log logger.Logger) *HotelController {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &HotelController{DB: db, Redis: rdb, Booking: booking, Logger: log}
}

func (h *HotelController) findHotel(c *gin.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := h.DB.WithContext(c.Request.Context()).Where("id = ? AND status = ?", id, true).First(&hotel).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrHotelNotFound
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find hotel", err)
	}
	return &hotel, nil
}

func (h *HotelController) findHotelAdmin(c *gin.Context, id uint) (*models.User, error) {
	var admin models.User
	err := h.DB.WithContext(c.Request.Context()).Where("id = ? AND role = ?", id, constants.RoleHotelAdmin).First(&admin).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "hotel admin not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find hotel admin", err)
	}
	return &admin, nil
}

// CreateHotel godoc
// @Summary Register a hotel
// @Tags hotel
// @Security BearerAuth
// @Param body body dto.HotelRequest true "hotel"
// @Success 201 {object} response.Response
// @Router /hotel [post]
func (h *HotelController) CreateHotel(c *gin.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	admin, err := h.findHotelAdmin(c, req.AdminID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	hotel := models.Hotel{
		Name:          req.Name,
		Address:       req.Address,
		Qualification: req.Qualification,
		Category:      req.Category,
		Amenities:     req.Amenities,
		AdminID:       admin.ID,
		Status:        true,
	}
	if err := validator.ValidateHotel(&hotel); err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, "Hotel successfully registered", hotel)
}

// GetHotels godoc
// @Summary List active hotels
// @Tags hotel
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Response
// @Router /hotel [get]
func (h *HotelController) GetHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	query := h.DB.WithContext(c.Request.Context()).Model(&models.Hotel{}).Where("status = ?", true)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}
	var hotels []models.Hotel
	if err := query.Order("id").Offset(page * limit).Limit(limit).Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, hotels, page, limit, int(total))
}

// SearchHotels godoc
// @Summary Fuzzy search over hotel name and address
// @Description With an X-Session-ID header the search is remembered; refine=true
// @Description fills the missing criteria from the previous search of the session.
// @Tags hotel
// @Param X-Session-ID header string false "client session"
// @Param refine query bool false "merge with the previous search"
// @Param body body dto.HotelSearchRequest true "criteria"
// @Success 200 {object} response.Response
// @Router /hotel/search [post]
func (h *HotelController) SearchHotels(c *gin.Context) {
	var req dto.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	criteria := services.HotelSearchCriteria{
		Name:          req.Name,
		Address:       req.Address,
		Qualification: req.Qualification,
		Category:      req.Category,
	}
	criteria = h.rememberSearch(c, criteria)

	var hotels []models.Hotel
	if err := h.DB.WithContext(c.Request.Context()).Where("status = ?", true).Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchHotels(hotels, criteria)
	if results == nil {
		results = []services.ScoredHotel{}
	}
	response.Success(c, results)
}

// rememberSearch merges with and stores the last search of the session.
// Cache failures only degrade to a plain search.
func (h *HotelController) rememberSearch(c *gin.Context, criteria services.HotelSearchCriteria) services.HotelSearchCriteria {
	session := c.GetHeader("X-Session-ID")
	if h.Redis == nil || session == "" {
		return criteria
	}
	ctx := c.Request.Context()
	if c.Query("refine") == "true" {
		prev, err := services.GetLastFilters(ctx, h.Redis, session)
		switch {
		case err == nil:
			criteria = services.MergeFilters(prev, criteria)
		case !stderrors.Is(err, services.ErrCacheMiss):
			h.Logger.Warn("last hotel search of session %s: %v", session, err)
		}
	}
	if err := services.SaveLastFilters(ctx, h.Redis, session, criteria); err != nil {
		h.Logger.Warn("saving hotel search of session %s: %v", session, err)
	}
	return criteria
}

// GetHotelDetail godoc
// @Summary Hotel detail with its rooms
// @Tags hotel
// @Param id path int true "hotel id"
// @Success 200 {object} response.Response
// @Router /hotel/{id} [get]
func (h *HotelController) GetHotelDetail(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var hotel models.Hotel
	err = h.DB.WithContext(c.Request.Context()).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("room_number") }).
		Where("id = ? AND status = ?", id, true).
		First(&hotel).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.FromError(c, errors.ErrHotelNotFound)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, hotel)
}

// UpdateHotel godoc
// @Summary Update the fields of a hotel
// @Tags hotel
// @Security BearerAuth
// @Param id path int true "hotel id"
// @Param body body dto.HotelUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /hotel/{id} [put]
func (h *HotelController) UpdateHotel(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req dto.HotelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}
	if req.Empty() {
		response.FromError(c, errors.NewAppError(errors.ErrCodeValidation, "no fields provided for update", nil))
		return
	}

	var hotel models.Hotel
	if err := h.DB.WithContext(c.Request.Context()).First(&hotel, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.FromError(c, errors.ErrHotelNotFound)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.Qualification != nil {
		hotel.Qualification = *req.Qualification
	}
	if req.Category != nil {
		hotel.Category = *req.Category
	}
	if req.Amenities != nil {
		hotel.Amenities = req.Amenities
	}
	if req.Status != nil {
		hotel.Status = *req.Status
	}
	if req.AdminID != nil && *req.AdminID != hotel.AdminID {
		admin, err := h.findHotelAdmin(c, *req.AdminID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		hotel.AdminID = admin.ID
	}
	if err := validator.ValidateHotel(&hotel); err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.DB.WithContext(c.Request.Context()).Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, hotel)
}

// DeleteHotel godoc
// @Summary Delete a hotel with its rooms and extra services
// @Description Every active reservation of the hotel's rooms is cancelled. When a
// @Description room cannot be deleted the hotel is kept.
// @Tags hotel
// @Security BearerAuth
// @Param id path int true "hotel id"
// @Success 200 {object} response.Response
// @Router /hotel/{id} [delete]
func (h *HotelController) DeleteHotel(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	ctx := c.Request.Context()

	var hotel models.Hotel
	if err := h.DB.WithContext(ctx).First(&hotel, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.FromError(c, errors.ErrHotelNotFound)
			return
		}
		response.ServerError(c)
		return
	}

	var roomIDs []uint
	if err := h.DB.WithContext(ctx).Model(&models.Room{}).Where("hotel_id = ?", id).Order("id").Pluck("id", &roomIDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	summaries, err := h.Booking.DeleteHotelRooms(ctx, roomIDs)
	body := dto.HotelDeletionResponse{HotelID: id, DeletedRooms: []uint{}}
	for _, s := range summaries {
		if s.Deleted {
			body.DeletedRooms = append(body.DeletedRooms, s.RoomID)
		}
		body.CancelledReservations += s.Affected()
		body.UnresolvedReservations = append(body.UnresolvedReservations, s.Failed...)
	}
	if err != nil {
		h.Logger.Error("hotel %d deletion stopped: %v", id, err)
		code := errors.Code(err)
		c.JSON(errors.HTTPStatus(code), response.Response{
			Code:      0,
			Mess:      "Hotel kept: some rooms could not be deleted",
			ErrorCode: string(code),
			Data:      body,
		})
		return
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var left int64
		if err := tx.Model(&models.Room{}).Where("hotel_id = ?", id).Count(&left).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "count rooms", err)
		}
		if left > 0 {
			return errors.NewAppError(errors.ErrCodeInvalidState, "hotel got new rooms while being deleted, hotel kept", nil)
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&models.ExtraService{}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "delete extra services", err)
		}
		if err := tx.Delete(&models.Hotel{}, id).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "delete hotel", err)
		}
		return nil
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.Logger.Info("hotel %d deleted with %d rooms", id, len(body.DeletedRooms))
	response.Success(c, body)
}

// ManagedHotels godoc
// @Summary Active hotels managed by the caller
// @Description An ADMIN_ROLE caller may pass ?adminId= to list another manager's
// @Description hotels, inactive ones included.
// @Tags hotel
// @Security BearerAuth
// @Param adminId query int false "hotel admin id, ADMIN_ROLE only"
// @Success 200 {object} response.Response
// @Router /hotel/managed [get]
func (h *HotelController) ManagedHotels(c *gin.Context) {
	userID, role := middleware.CurrentUser(c)
	var adminID uint64
	if role == constants.RoleAdmin && c.Query("adminId") != "" {
		var err error
		adminID, err = strconv.ParseUint(c.Query("adminId"), 10, 64)
		if err != nil || adminID == 0 {
			response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "adminId must be a positive integer", err))
			return
		}
	}

	query := h.DB.WithContext(c.Request.Context()).Model(&models.Hotel{})
	if adminID != 0 {
		query = query.Where("admin_id = ?", adminID)
	} else {
		query = query.Where("admin_id = ? AND status = ?", userID, true)
	}

	hotels := []models.Hotel{}
	if err := query.Order("id").Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, hotels)
}
