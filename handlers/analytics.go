package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workhive/services/analytics"
	"workhive/utils"
)

// AnalyticsHandler serves occupancy reports for the back-office charts.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected 2006-01-02 date, got %q", raw)
	}
	return t, nil
}

func (h *AnalyticsHandler) Occupancy(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}
	report, err := h.Service.Occupancy(c.Param("spaceID"), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to build occupancy report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
