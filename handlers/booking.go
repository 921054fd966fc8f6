package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workhive/models"
	"workhive/services/booking"
	"workhive/utils"
)

// BookingHandler exposes the multi-step booking flow.
type BookingHandler struct {
	Flow   booking.BookingFlowService
	Logger *zap.Logger
}

func NewBookingHandler(flow booking.BookingFlowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Flow: flow, Logger: logger}
}

// flowErrorStatus maps each flow error code to one HTTP status. The
// session stays on its current step, so the client can correct and retry.
func flowErrorStatus(code string) int {
	switch code {
	case booking.CodeInvalidInterval, booking.CodeOutsideBusinessPolicy:
		return http.StatusUnprocessableEntity
	case booking.CodeCapacityExceeded, booking.CodeFullyBooked, booking.CodeStaleAvailability:
		return http.StatusConflict
	case booking.CodeSessionNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidStep:
		return http.StatusBadRequest
	case booking.CodeTransportFailure:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondFlowError(c *gin.Context, err error) {
	if fe, ok := booking.AsFlowError(err); ok {
		utils.JSONError(c, flowErrorStatus(fe.Code), fe.Code, fe.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "bookingError", err.Error())
}

func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	// Body is optional; anonymous sessions are allowed.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Flow.StartSession(input.UserID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.BookingFlowResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
	})
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Flow.GetSession(c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SelectSpace(c *gin.Context) {
	var input struct {
		SpaceID string `json:"spaceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SelectSpace(c.Param("sessionID"), input.SpaceID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingFlowResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
	})
}

func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	var input struct {
		Start        time.Time        `json:"start" binding:"required"`
		End          time.Time        `json:"end" binding:"required"`
		MultiDay     models.LooseBool `json:"multiDay"`
		Participants models.LooseInt  `json:"participants"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SelectDateTime(c.Param("sessionID"), booking.DateTimeSelection{
		Start:        input.Start,
		End:          input.End,
		MultiDay:     input.MultiDay.Bool(),
		Participants: input.Participants.Int(),
	})
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingFlowResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
		Amount:    session.Amount,
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		Notes     string `json:"notes"`
		PromoCode string `json:"promoCode"`
	}
	_ = c.ShouldBindJSON(&input)

	sessionID := c.Param("sessionID")
	reservation, err := h.Flow.Confirm(sessionID, input.Notes, input.PromoCode)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.BookingFlowResponse{
		SessionID:   sessionID,
		Step:        models.StepSubmitted,
		Amount:      reservation.Amount,
		Reservation: reservation,
	})
}

func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Flow.Back(c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingFlowResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
	})
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Flow.CancelSession(c.Param("sessionID")); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
