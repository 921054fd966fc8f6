package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	spaceRepo "workhive/database/repository/space"
	"workhive/models"
	"workhive/services/booking"
	"workhive/services/space"
	"workhive/utils"
)

// SpaceHandler exposes the space catalogue and its availability views.
type SpaceHandler struct {
	Service      space.SpaceService
	Availability booking.AvailabilityService
	Logger       *zap.Logger
}

func NewSpaceHandler(svc space.SpaceService, avail booking.AvailabilityService, logger *zap.Logger) *SpaceHandler {
	return &SpaceHandler{Service: svc, Availability: avail, Logger: logger}
}

// spacePayload tolerates the loose field encodings legacy back-office
// clients send (numbers as strings, booleans as 1/0).
type spacePayload struct {
	Name         string            `json:"name" binding:"required"`
	Type         string            `json:"type" binding:"required"`
	Capacity     models.LooseInt   `json:"capacity"`
	PriceHourly  models.LooseFloat `json:"priceHourly"`
	PriceHalfDay models.LooseFloat `json:"priceHalfDay"`
	PriceDay     models.LooseFloat `json:"priceDay"`
	PriceWeek    models.LooseFloat `json:"priceWeek"`
	Disponible   models.LooseBool  `json:"disponible"`
	Description  string            `json:"description"`
}

func (p spacePayload) toInput() space.SpaceInput {
	return space.SpaceInput{
		Name:         p.Name,
		Type:         p.Type,
		Capacity:     p.Capacity.Int(),
		PriceHourly:  p.PriceHourly.Float64(),
		PriceHalfDay: p.PriceHalfDay.Float64(),
		PriceDay:     p.PriceDay.Float64(),
		PriceWeek:    p.PriceWeek.Float64(),
		Disponible:   p.Disponible.Bool(),
		Description:  p.Description,
	}
}

func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	var payload spacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.CreateSpace(payload.toInput())
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create space", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	var payload spacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := h.Service.UpdateSpace(c.Param("id"), payload.toInput())
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to update space", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SpaceHandler) GetSpace(c *gin.Context) {
	found, err := h.Service.GetSpace(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "space not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	filter := spaceRepo.SpaceFilter{Type: c.Query("type")}
	if raw := c.Query("disponible"); raw != "" {
		disponible := raw == "1" || raw == "true"
		filter.Disponible = &disponible
	}
	spaces, err := h.Service.ListSpaces(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list spaces", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": spaces})
}

func (h *SpaceHandler) SetDisponible(c *gin.Context) {
	var input struct {
		Disponible models.LooseBool `json:"disponible"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.SetDisponible(c.Param("id"), input.Disponible.Bool()); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to toggle space", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "disponible": input.Disponible.Bool()})
}

// GetAvailability serves both the single-date snapshot (?date=) and the
// per-day range summary (?from=&to=).
func (h *SpaceHandler) GetAvailability(c *gin.Context) {
	spaceID := c.Param("id")

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		snapshot, err := h.Availability.DayAvailability(spaceID, day)
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "expected ?date= or ?from=&to= in 2006-01-02 format")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "expected ?date= or ?from=&to= in 2006-01-02 format")
		return
	}
	days, err := h.Availability.RangeAvailability(spaceID, from, to)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaceId": spaceID, "days": days})
}
