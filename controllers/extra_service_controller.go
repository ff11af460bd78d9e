package controllers

import (
	stderrors "errors"

	"casamia/dto"
	"casamia/errors"
	"casamia/models"
	"casamia/response"
	"casamia/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExtraServiceController struct {
	DB *gorm.DB
}

func NewExtraServiceController(db *gorm.DB) *ExtraServiceController {
	return &ExtraServiceController{DB: db}
}

// managedHotel loads the :hotelId hotel and checks the caller may manage it
func (e *ExtraServiceController) managedHotel(c *gin.Context) (*models.Hotel, error) {
	hotelID, err := uintParam(c, "hotelId")
	if err != nil {
		return nil, err
	}
	var hotel models.Hotel
	if err := e.DB.WithContext(c.Request.Context()).First(&hotel, hotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find hotel", err)
	}
	if err := authorizeHotel(c, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (e *ExtraServiceController) findExtraService(c *gin.Context, hotelID uint) (*models.ExtraService, error) {
	id, err := uintParam(c, "extraServiceId")
	if err != nil {
		return nil, err
	}
	var service models.ExtraService
	err = e.DB.WithContext(c.Request.Context()).Where("id = ? AND hotel_id = ?", id, hotelID).First(&service).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeExtraServiceNotFound, "extra service not found in this hotel", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "find extra service", err)
	}
	return &service, nil
}

// CreateExtraService godoc
// @Summary Add an extra service to a hotel
// @Tags extraServices
// @Security BearerAuth
// @Param hotelId path int true "hotel id"
// @Param body body dto.ExtraServiceRequest true "extra service"
// @Success 201 {object} response.Response
// @Router /extraServices/{hotelId} [post]
func (e *ExtraServiceController) CreateExtraService(c *gin.Context) {
	hotel, err := e.managedHotel(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req dto.ExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	service := models.ExtraService{
		HotelID:     hotel.ID,
		Name:        req.Name,
		Cost:        req.Cost,
		Description: req.Description,
	}
	if err := e.DB.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, "Extra service created", service)
}

// GetExtraServicesByHotel godoc
// @Summary List the extra services of a hotel
// @Tags extraServices
// @Param hotelId path int true "hotel id"
// @Success 200 {object} response.Response
// @Router /extraServices/{hotelId} [get]
func (e *ExtraServiceController) GetExtraServicesByHotel(c *gin.Context) {
	hotelID, err := uintParam(c, "hotelId")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var services []models.ExtraService
	if err := e.DB.WithContext(c.Request.Context()).Where("hotel_id = ?", hotelID).Order("id").Find(&services).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, services)
}

// UpdateExtraService godoc
// @Summary Edit an extra service
// @Tags extraServices
// @Security BearerAuth
// @Param hotelId path int true "hotel id"
// @Param extraServiceId path int true "extra service id"
// @Param body body dto.ExtraServiceRequest true "extra service"
// @Success 200 {object} response.Response
// @Router /extraServices/{hotelId}/{extraServiceId} [put]
func (e *ExtraServiceController) UpdateExtraService(c *gin.Context) {
	hotel, err := e.managedHotel(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	service, err := e.findExtraService(c, hotel.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req dto.ExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err))
		return
	}

	service.Name = req.Name
	service.Cost = req.Cost
	service.Description = req.Description
	if err := e.DB.WithContext(c.Request.Context()).Save(service).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, service)
}

// DeleteExtraService godoc
// @Summary Remove an extra service
// @Tags extraServices
// @Security BearerAuth
// @Param hotelId path int true "hotel id"
// @Param extraServiceId path int true "extra service id"
// @Success 200 {object} response.Response
// @Router /extraServices/{hotelId}/{extraServiceId} [delete]
func (e *ExtraServiceController) DeleteExtraService(c *gin.Context) {
	hotel, err := e.managedHotel(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	service, err := e.findExtraService(c, hotel.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := e.DB.WithContext(c.Request.Context()).Delete(service).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"id": service.ID})
}
