package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/ports"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	activities, err := h.activityService.ListActivities(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list activities")
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

func (h *ActivityHandler) ListActivitiesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, err := validation.ParseDate(c.Param("date"))
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidDate)
		return
	}
	activities, err := h.activityService.ListActivitiesByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to list activities by date", zap.String("date", c.Param("date")))
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	activity, err := h.activityService.GetActivity(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to get activity", zap.String("activity_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateActivityRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildActivity(userID, req)
	if err != nil {
		respondError(c, err, "invalid activity payload")
		return
	}
	activity, err := h.activityService.CreateActivity(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create activity")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateActivityRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}
	patch, err := validation.BuildActivityPatch(req, raw)
	if err != nil {
		respondError(c, err, "invalid activity payload")
		return
	}
	activity, err := h.activityService.UpdateActivity(c.Request.Context(), id, userID, patch)
	if err != nil {
		respondError(c, err, "failed to update activity", zap.String("activity_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.activityService.DeleteActivity(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to delete activity", zap.String("activity_id", id.String()))
		return
	}
	c.Status(http.StatusNoContent)
}
