package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"workhive/handlers"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Booking     *handlers.BookingHandler
	Space       *handlers.SpaceHandler
	Reservation *handlers.ReservationHandler
	Promo       *handlers.PromoHandler
	Analytics   *handlers.AnalyticsHandler
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Multi-step booking flow.
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.Booking.StartSession)
		booking.GET("/session/:sessionID", h.Booking.GetSession)
		booking.PUT("/session/:sessionID/space", h.Booking.SelectSpace)
		booking.PUT("/session/:sessionID/datetime", h.Booking.SelectDateTime)
		booking.POST("/session/:sessionID/confirm", h.Booking.Confirm)
		booking.POST("/session/:sessionID/back", h.Booking.Back)
		booking.DELETE("/session/:sessionID", h.Booking.CancelSession)
	}

	// Space catalogue and availability views.
	spaces := r.Group("/api/spaces")
	{
		spaces.POST("", h.Space.CreateSpace)
		spaces.GET("", h.Space.ListSpaces)
		spaces.GET("/:id", h.Space.GetSpace)
		spaces.PUT("/:id", h.Space.UpdateSpace)
		spaces.PATCH("/:id/disponible", h.Space.SetDisponible)
		spaces.GET("/:id/availability", h.Space.GetAvailability)
	}

	// Back-office reservation management.
	reservations := r.Group("/api/reservations")
	{
		reservations.GET("", h.Reservation.ListReservations)
		reservations.GET("/:id", h.Reservation.GetReservation)
		reservations.PATCH("/:id/status", h.Reservation.UpdateStatus)
	}

	// Promo codes.
	promos := r.Group("/api/promos")
	{
		promos.POST("", h.Promo.CreatePromo)
		promos.GET("", h.Promo.ListPromos)
		promos.POST("/validate", h.Promo.ValidatePromo)
		promos.DELETE("/:code", h.Promo.DeactivatePromo)
	}

	// Analytics.
	analytics := r.Group("/api/analytics")
	{
		analytics.GET("/occupancy/:spaceID", h.Analytics.Occupancy)
	}
}
