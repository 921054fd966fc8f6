package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhive/models"
	"workhive/services/promo"
	"workhive/utils"
)

// PromoHandler exposes promo code management and validation.
type PromoHandler struct {
	Service promo.PromoService
}

func NewPromoHandler(svc promo.PromoService) *PromoHandler {
	return &PromoHandler{Service: svc}
}

func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var input struct {
		Code       string            `json:"code" binding:"required"`
		Type       string            `json:"type" binding:"required"`
		Value      models.LooseFloat `json:"value"`
		ValidFrom  string            `json:"validFrom"`
		ValidUntil string            `json:"validUntil"`
		MaxUses    models.LooseInt   `json:"maxUses"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Type != models.PromoPercent && input.Type != models.PromoFixed {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid promo type",
			"type must be \"percent\" or \"fixed\"")
		return
	}
	if input.Value.Float64() <= 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid promo value", "value must be positive")
		return
	}

	code := models.PromoCode{
		Code:    input.Code,
		Type:    input.Type,
		Value:   input.Value.Float64(),
		MaxUses: input.MaxUses.Int(),
		Active:  true,
	}
	if input.ValidFrom != "" {
		from, err := parseDate(input.ValidFrom)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid validFrom", err.Error())
			return
		}
		code.ValidFrom = from
	}
	if input.ValidUntil != "" {
		until, err := parseDate(input.ValidUntil)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid validUntil", err.Error())
			return
		}
		code.ValidUntil = until.AddDate(0, 0, 1) // valid through the named day
	}

	created, err := h.Service.CreatePromo(code)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create promo", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PromoHandler) ListPromos(c *gin.Context) {
	activeOnly := c.Query("active") == "1" || c.Query("active") == "true"
	promos, err := h.Service.ListPromos(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list promos", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"promos": promos})
}

func (h *PromoHandler) DeactivatePromo(c *gin.Context) {
	if err := h.Service.DeactivatePromo(c.Param("code")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to deactivate promo", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": c.Param("code"), "active": false})
}

// ValidatePromo is the advisory check the booking UI calls before confirm.
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var input struct {
		Code   string            `json:"code" binding:"required"`
		Amount models.LooseFloat `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Service.Validate(input.Code, input.Amount.Float64())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to validate promo", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
