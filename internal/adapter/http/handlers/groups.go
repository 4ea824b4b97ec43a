package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type GroupHandler struct {
	groupService ports.GroupService
}

func NewGroupHandler(groupService ports.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	groups, err := h.groupService.ListGroups(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list groups")
		return
	}
	c.JSON(http.StatusOK, mapper.ToGroupItems(groups))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	group, err := h.groupService.GetGroup(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to get group", zap.String("group_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGroupRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildGroup(userID, req)
	if err != nil {
		respondError(c, err, "invalid group payload")
		return
	}
	group, err := h.groupService.CreateGroup(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create group")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToGroupItem(group))
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateGroupRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}
	patch, err := validation.BuildGroupPatch(req, raw)
	if err != nil {
		respondError(c, err, "invalid group payload")
		return
	}
	group, err := h.groupService.UpdateGroup(c.Request.Context(), id, userID, patch)
	if err != nil {
		respondError(c, err, "failed to update group", zap.String("group_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.groupService.DeleteGroup(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to delete group", zap.String("group_id", id.String()))
		return
	}
	c.Status(http.StatusNoContent)
}
