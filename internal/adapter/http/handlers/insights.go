package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/period"
	"github.com/Chikimuras/ezlife/internal/core/ports"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

type InsightsHandler struct {
	insightsService ports.InsightsService
	clock           ports.Clock
}

func NewInsightsHandler(insightsService ports.InsightsService, clock ports.Clock) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService, clock: clock}
}

func (h *InsightsHandler) WeeklyComparison(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := h.queryDate(c)
	if !ok {
		return
	}
	report, err := h.insightsService.WeeklyComparison(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to build weekly comparison")
		return
	}
	c.JSON(http.StatusOK, mapper.ToWeeklyComparisonResponse(report))
}

func (h *InsightsHandler) DailyComparison(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := h.queryDate(c)
	if !ok {
		return
	}
	report, err := h.insightsService.DailyComparison(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to build daily comparison")
		return
	}
	c.JSON(http.StatusOK, mapper.ToDailyComparisonResponse(report))
}

// queryDate reads ?date=YYYY-MM-DD and defaults to today.
func (h *InsightsHandler) queryDate(c *gin.Context) (time.Time, bool) {
	value := c.Query("date")
	if value == "" {
		return period.Date(h.clock.Now()), true
	}
	date, err := validation.ParseDate(value)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidDate)
		return time.Time{}, false
	}
	return date, true
}
