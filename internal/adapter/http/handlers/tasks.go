package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

const defaultOccurrenceCount = 10

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks accepts the optional listId and status filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter domain.TaskFilter
	listParam := c.Query("listId")
	if listParam == "" {
		listParam = c.Query("list_id")
	}
	if listParam != "" {
		listID, err := uuid.Parse(listParam)
		if err != nil {
			respondBadRequest(c, apierrors.MsgInvalidID)
			return
		}
		filter.ListID = &listID
	}
	if status := c.Query("status"); status != "" {
		value := domain.TaskStatus(status)
		switch value {
		case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusDone:
		default:
			respondBadRequest(c, apierrors.MsgInvalidPayload)
			return
		}
		filter.Status = &value
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.taskService.GetTask(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to get task", zap.String("task_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildTask(userID, req)
	if err != nil {
		respondError(c, err, "invalid task payload")
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}
	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		respondError(c, err, "invalid task payload")
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), id, userID, patch)
	if err != nil {
		respondError(c, err, "failed to update task", zap.String("task_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to delete task", zap.String("task_id", id.String()))
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateOccurrences reads the count query parameter, 10 when absent.
// Range checks happen in the service.
func (h *TaskHandler) GenerateOccurrences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	count := defaultOccurrenceCount
	if value := c.Query("count"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			respondBadRequest(c, apierrors.MsgInvalidOccurrenceCount)
			return
		}
		count = parsed
	}

	tasks, err := h.taskService.GenerateOccurrences(c.Request.Context(), id, userID, count)
	if err != nil {
		respondError(c, err, "failed to generate occurrences", zap.String("task_id", id.String()))
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GenerateRollingOccurrences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.taskService.GenerateRollingOccurrences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to generate rolling occurrences")
		return
	}
	c.JSON(http.StatusOK, mapper.ToRollingGenerationResponse(result))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CompleteTaskRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildCompleteTaskInput(req)
	if err != nil {
		respondError(c, err, "invalid completion payload")
		return
	}
	task, err := h.taskService.CompleteTask(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, err, "failed to complete task", zap.String("task_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ConvertToActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ConvertTaskRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildConvertTaskInput(req)
	if err != nil {
		respondError(c, err, "invalid conversion payload")
		return
	}
	link, err := h.taskService.ConvertToActivity(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, err, "failed to convert task to activity", zap.String("task_id", id.String()))
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskActivityItem(link))
}
