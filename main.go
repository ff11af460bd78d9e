package main

import (
	"context"
	"log"
	"time"

	"casamia/config"
	"casamia/jobs"
	"casamia/routes"
	"casamia/services"
	"casamia/services/logger"
	"casamia/services/notification"
	"casamia/utils"
)

func main() {
	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	cfg := app.Config
	if cfg.LogDir != "" {
		out, closer, err := utils.LogOutput(cfg.LogDir, time.Now())
		if err != nil {
			log.Printf("Warning: log file not opened, logging to stderr: %v", err)
		} else {
			log.SetOutput(out)
			defer closer.Close()
		}
	}
	baseLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	var locker services.Locker
	if app.Redis != nil {
		locker = services.NewRedisLocker(app.Redis, cfg.LockTTL)
	} else {
		locker = services.NewKeyedMutex()
	}

	store := services.NewGormStore(app.DB)
	availability := services.NewAvailabilityService(services.AvailabilityServiceOptions{
		Store:    store,
		Locker:   locker,
		Logger:   baseLogger.Named("availability"),
		LockWait: cfg.LockWait,
	})
	roomCache := services.NewRedisRoomCache(app.Redis, cfg.RoomCacheTTL)
	booking := services.NewBookingFacade(
		availability,
		notification.NewMelodyService(app.Melody),
		roomCache,
		baseLogger.Named("booking"),
	)

	users := services.NewUserService(services.UserServiceOptions{
		Store:    services.NewGormUserStore(app.DB),
		Bookings: booking,
		Logger:   baseLogger.Named("users"),
	})

	tokens := services.NewTokenManager(cfg.SecretKey, cfg.TokenTTL)
	auth := services.NewAuthService(app.DB, tokens, baseLogger.Named("auth"))
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := auth.SeedDefaultUsers(seedCtx, services.DefaultUsers); err != nil {
		log.Printf("Warning: default users not seeded: %v", err)
	}
	cancel()

	if err := jobs.InitCronJobs(app.Cron, booking, store, baseLogger.Named("jobs")); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer app.Cron.Stop()

	config.InitWebSocket(app.Router, app.Melody)

	routes.SetupRoutes(app.Router, routes.RouteOptions{
		DB:       app.DB,
		Redis:    app.Redis,
		Tokens:   tokens,
		Auth:     auth,
		Booking:  booking,
		Users:    users,
		Cache:    roomCache,
		Uploader: services.NewImageUploader(app.Cloudinary),
		Logger:   baseLogger.Named("http"),
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := app.Router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
