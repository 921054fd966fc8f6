package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "workhive/database/repository/reservation"
	"workhive/services/booking"
	"workhive/utils"
)

// ReservationHandler exposes the back-office reservation views and the
// status transitions. Reservations are never deleted, only transitioned.
type ReservationHandler struct {
	Repo   reservationRepo.ReservationRepository
	Logger *zap.Logger
}

func NewReservationHandler(repo reservationRepo.ReservationRepository, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Repo: repo, Logger: logger}
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	filter := reservationRepo.ReservationFilter{
		SpaceID: c.Query("spaceId"),
		UserID:  c.Query("userId"),
		Status:  c.Query("status"),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid from date", err.Error())
			return
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid to date", err.Error())
			return
		}
		filter.To = to.AddDate(0, 0, 1) // inclusive end date
	}

	reservations, err := h.Repo.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateStatus applies one lifecycle transition.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
		return
	}
	if !booking.CanTransitionStatus(reservation.Status, input.Status) {
		utils.JSONError(c, http.StatusConflict, "invalid status transition",
			reservation.Status+" cannot move to "+input.Status)
		return
	}
	if err := h.Repo.UpdateStatus(reservation.ID, input.Status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status", err.Error())
		return
	}

	h.Logger.Info("reservation status changed",
		zap.String("reservationId", reservation.ID),
		zap.String("from", reservation.Status),
		zap.String("to", input.Status))
	c.JSON(http.StatusOK, gin.H{"id": reservation.ID, "status": input.Status})
}
