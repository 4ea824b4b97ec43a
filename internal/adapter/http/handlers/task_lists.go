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

type TaskListHandler struct {
	taskListService ports.TaskListService
}

func NewTaskListHandler(taskListService ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{taskListService: taskListService}
}

func (h *TaskListHandler) ListTaskLists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	lists, err := h.taskListService.ListTaskLists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list task lists")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskListItems(lists))
}

func (h *TaskListHandler) GetTaskList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.taskListService.GetTaskList(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to get task list", zap.String("task_list_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) CreateTaskList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTaskListRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildTaskList(userID, req)
	if err != nil {
		respondError(c, err, "invalid task list payload")
		return
	}
	list, err := h.taskListService.CreateTaskList(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create task list")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) UpdateTaskList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskListRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}
	patch, err := validation.BuildTaskListPatch(req, raw)
	if err != nil {
		respondError(c, err, "invalid task list payload")
		return
	}
	list, err := h.taskListService.UpdateTaskList(c.Request.Context(), id, userID, patch)
	if err != nil {
		respondError(c, err, "failed to update task list", zap.String("task_list_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) DeleteTaskList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taskListService.DeleteTaskList(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to delete task list", zap.String("task_list_id", id.String()))
		return
	}
	c.Status(http.StatusNoContent)
}
