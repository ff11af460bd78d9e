package routes

import (
	"net/http"

	"casamia/constants"
	"casamia/controllers"
	_ "casamia/docs"
	middlewares "casamia/middleware"
	"casamia/services"
	"casamia/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const BasePath = "/casaMiaManagement/v1"

// RouteOptions carries what the controllers are built from
type RouteOptions struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Tokens   middlewares.TokenParser
	Auth     *services.AuthService
	Booking  *services.BookingFacade
	Users    *services.UserService
	Cache    services.RoomCache
	Uploader services.ImageUploader
	Logger   logger.Logger
}

func SetupRoutes(router *gin.Engine, opts RouteOptions) {
	authController := controllers.NewAuthController(opts.Auth)
	hotelController := controllers.NewHotelController(opts.DB, opts.Redis, opts.Booking, opts.Logger)
	userController := controllers.NewUserController(opts.Users)
	roomController := controllers.NewRoomController(controllers.RoomControllerOptions{
		DB:       opts.DB,
		Booking:  opts.Booking,
		Cache:    opts.Cache,
		Uploader: opts.Uploader,
		Logger:   opts.Logger,
	})
	reservationController := controllers.NewReservationController(opts.DB, opts.Booking)
	extraServiceController := controllers.NewExtraServiceController(opts.DB)

	authenticated := middlewares.AuthMiddleware(opts.Tokens)
	admin := middlewares.AuthMiddleware(opts.Tokens, constants.RoleAdmin)
	manager := middlewares.AuthMiddleware(opts.Tokens, constants.RoleHotelAdmin)
	staff := middlewares.AuthMiddleware(opts.Tokens, constants.RoleAdmin, constants.RoleHotelAdmin)

	router.Use(middlewares.RequestIDMiddleware(), middlewares.ErrorHandler())

	v1 := router.Group(BasePath)

	v1.POST("/auth/login", authController.Login)

	hotel := v1.Group("/hotel")
	hotel.POST("", admin, hotelController.CreateHotel)
	hotel.GET("", hotelController.GetHotels)
	hotel.POST("/search", hotelController.SearchHotels)
	hotel.GET("/managed", staff, hotelController.ManagedHotels)
	hotel.GET("/:id", hotelController.GetHotelDetail)
	hotel.PUT("/:id", admin, hotelController.UpdateHotel)
	hotel.DELETE("/:id", admin, hotelController.DeleteHotel)

	user := v1.Group("/user", authenticated)
	user.PUT("/editProfile", userController.EditProfile)
	user.PUT("/updatePassword", userController.UpdatePassword)
	user.DELETE("/delete/me", userController.DeleteMe)

	userAdmin := user.Group("", middlewares.RoleMiddleware(constants.RoleAdmin))
	userAdmin.GET("/getUsers", userController.GetUsers)
	userAdmin.PUT("/editUsers", userController.EditUserAdmin)
	userAdmin.DELETE("/delete/admin", userController.DeleteUserAdmin)

	room := v1.Group("/room")
	room.GET("/available", roomController.AllRoomsByHotel)
	room.GET("/available/:idHotel", roomController.AllRoomsByHotel)
	room.POST("/registerAdmin", admin, roomController.RegisterRoomAdmin)
	room.POST("/registerManager", manager, roomController.RegisterRoomManager)
	room.PUT("/adminUpdate/:roomId", admin, roomController.UpdateRoomAdmin)
	room.PUT("/managerUpdate/:roomId", manager, roomController.UpdateRoomManager)
	room.DELETE("/admin/:roomId", admin, roomController.DeleteRoomAdmin)
	room.DELETE("/manager/:roomId", manager, roomController.DeleteRoomManager)
	room.GET("/:roomId/availability", roomController.RoomAvailability)
	room.POST("/:roomId/avatar", staff, roomController.UploadAvatar)

	reservation := v1.Group("/reservation")
	reservation.POST("/Reserve", authenticated, reservationController.Reserve)
	reservation.PUT("/Cancel/:reservationId", authenticated, reservationController.Cancel)
	reservation.GET("/my-reservations", authenticated, reservationController.MyReservations)
	reservation.GET("/user-reservations/:identifier", admin, reservationController.UserReservationsAdmin)
	reservation.GET("/admin/hotel-reservations/:identifier", manager, reservationController.UserReservationsHotelAdmin)

	extras := v1.Group("/extraServices")
	extras.POST("/:hotelId", staff, extraServiceController.CreateExtraService)
	extras.GET("/:hotelId", extraServiceController.GetExtraServicesByHotel)
	extras.PUT("/:hotelId/:extraServiceId", staff, extraServiceController.UpdateExtraService)
	extras.DELETE("/:hotelId/:extraServiceId", staff, extraServiceController.DeleteExtraService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
