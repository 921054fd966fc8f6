package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"workhive/config"
	"workhive/cron"
	"workhive/database"
	promoRepoPkg "workhive/database/repository/promo"
	reservationRepoPkg "workhive/database/repository/reservation"
	spaceRepoPkg "workhive/database/repository/space"
	"workhive/handlers"
	"workhive/middleware"
	"workhive/routes"
	"workhive/services/analytics"
	"workhive/services/booking"
	"workhive/services/promo"
	"workhive/services/space"
	"workhive/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	spaceRepo := spaceRepoPkg.NewMongoSpaceRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()

	// services.
	hours := booking.BusinessHoursFromConfig()

	spaceService := &space.DefaultSpaceService{Repo: spaceRepo}
	promoService := &promo.DefaultPromoService{Repo: promoRepo}
	availabilityService := &booking.DefaultAvailabilityService{
		Spaces:       spaceRepo,
		Reservations: reservationRepo,
		Hours:        hours,
	}
	flowService := &booking.DefaultBookingFlowService{
		Spaces:       spaceRepo,
		Reservations: reservationRepo,
		Promo:        promoService,
		Sessions:     booking.NewRedisSessionStore(),
		Hours:        hours,
		MaxHours:     config.AppConfig.MaxBookingHours,
		MaxDays:      config.AppConfig.MaxBookingDays,
	}
	analyticsService := &analytics.DefaultAnalyticsService{
		Spaces:       spaceRepo,
		Reservations: reservationRepo,
		Hours:        hours,
	}

	// Background reservation status sweeper.
	cron.InitStatusSweeper(reservationRepo)

	// handlers.
	handlerBundle := &routes.Handlers{
		Booking:     handlers.NewBookingHandler(flowService, logger),
		Space:       handlers.NewSpaceHandler(spaceService, availabilityService, logger),
		Reservation: handlers.NewReservationHandler(reservationRepo, logger),
		Promo:       handlers.NewPromoHandler(promoService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
