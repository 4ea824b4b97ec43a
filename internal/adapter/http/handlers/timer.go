package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type TimerHandler struct {
	timerService ports.TimerService
}

func NewTimerHandler(timerService ports.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.StartTimerRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	categoryID, err := validation.ParseID(req.CategoryID)
	if err != nil {
		respondError(c, err, "invalid timer payload")
		return
	}
	activity, err := h.timerService.StartTimer(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondError(c, err, "failed to start timer")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToActivityItem(activity))
}

func (h *TimerHandler) StopTimer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	activity, err := h.timerService.StopTimer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to stop timer")
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *TimerHandler) StopTimerAt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.StopTimerAtRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	end, err := validation.ParseTime(req.EndTime)
	if err != nil {
		respondError(c, err, "invalid timer payload")
		return
	}
	activity, err := h.timerService.StopTimerAt(c.Request.Context(), userID, end)
	if err != nil {
		respondError(c, err, "failed to stop timer")
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *TimerHandler) ActiveTimer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	activity, err := h.timerService.ActiveTimer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get active timer")
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}
