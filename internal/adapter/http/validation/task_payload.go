package validation

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func BuildTask(userID uuid.UUID, req dto.CreateTaskRequest) (domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Task{}, ErrInvalidPayload
	}
	listID, err := ParseID(req.TaskListID)
	if err != nil {
		return domain.Task{}, err
	}
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.Task{}, err
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.Task{}, err
	}
	scheduledDate, err := parseOptionalDate(req.ScheduledDate)
	if err != nil {
		return domain.Task{}, err
	}
	start, err := parseOptionalTime(req.ScheduledStartTime)
	if err != nil {
		return domain.Task{}, err
	}
	end, err := parseOptionalTime(req.ScheduledEndTime)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		UserID:                   userID,
		TaskListID:               listID,
		CategoryID:               categoryID,
		Title:                    title,
		Description:              req.Description,
		Status:                   domain.TaskStatusTodo,
		Priority:                 domain.TaskPriorityMedium,
		DueDate:                  dueDate,
		ScheduledDate:            scheduledDate,
		ScheduledStartTime:       start,
		ScheduledEndTime:         end,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		RecurrenceRule:           normalizeRule(req.RecurrenceRule),
		ExceptionDates:           req.ExceptionDates,
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Position != nil {
		task.Position = *req.Position
	}
	return task, nil
}

var taskFields = []string{
	"taskListId", "categoryId", "title", "description", "status", "priority", "dueDate",
	"scheduledDate", "scheduledStartTime", "scheduledEndTime", "estimatedDurationMinutes",
	"recurrenceRule", "exceptionDates", "position",
}

func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasAnyField(raw, taskFields...) {
		return domain.TaskPatch{}, ErrInvalidPayload
	}
	if err := rejectNull(raw, "taskListId", "status", "priority", "position"); err != nil {
		return domain.TaskPatch{}, err
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			return domain.TaskPatch{}, ErrInvalidPayload
		}
		value := strings.TrimSpace(*req.Title)
		title = &value
	}

	listID, err := parseOptionalID(req.TaskListID)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	scheduledDate, err := parseOptionalDate(req.ScheduledDate)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	start, err := parseOptionalTime(req.ScheduledStartTime)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	end, err := parseOptionalTime(req.ScheduledEndTime)
	if err != nil {
		return domain.TaskPatch{}, err
	}

	patch := domain.TaskPatch{
		TaskListID:                  listID,
		CategoryID:                  categoryID,
		CategoryIDSet:               hasJSONField(raw, "categoryId"),
		Title:                       title,
		Description:                 req.Description,
		DescriptionSet:              hasJSONField(raw, "description"),
		DueDate:                     dueDate,
		DueDateSet:                  hasJSONField(raw, "dueDate"),
		ScheduledDate:               scheduledDate,
		ScheduledDateSet:            hasJSONField(raw, "scheduledDate"),
		ScheduledStartTime:          start,
		ScheduledStartTimeSet:       hasJSONField(raw, "scheduledStartTime"),
		ScheduledEndTime:            end,
		ScheduledEndTimeSet:         hasJSONField(raw, "scheduledEndTime"),
		EstimatedDurationMinutes:    req.EstimatedDurationMinutes,
		EstimatedDurationMinutesSet: hasJSONField(raw, "estimatedDurationMinutes"),
		RecurrenceRule:              normalizeRule(req.RecurrenceRule),
		RecurrenceRuleSet:           hasJSONField(raw, "recurrenceRule"),
		ExceptionDates:              req.ExceptionDates,
		ExceptionDatesSet:           hasJSONField(raw, "exceptionDates"),
		Position:                    req.Position,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	return patch, nil
}

func BuildCompleteTaskInput(req dto.CompleteTaskRequest) (domain.CompleteTaskInput, error) {
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.CompleteTaskInput{}, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return domain.CompleteTaskInput{}, err
	}
	start, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return domain.CompleteTaskInput{}, err
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return domain.CompleteTaskInput{}, err
	}
	return domain.CompleteTaskInput{
		AddToTracker: req.AddToTracker,
		CategoryID:   categoryID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Notes:        req.Notes,
	}, nil
}

func BuildConvertTaskInput(req dto.ConvertTaskRequest) (domain.ConvertTaskInput, error) {
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.ConvertTaskInput{}, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return domain.ConvertTaskInput{}, err
	}
	start, err := ParseTime(req.StartTime)
	if err != nil {
		return domain.ConvertTaskInput{}, err
	}
	end, err := ParseTime(req.EndTime)
	if err != nil {
		return domain.ConvertTaskInput{}, err
	}
	return domain.ConvertTaskInput{
		CategoryID: categoryID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Notes:      req.Notes,
	}, nil
}

// normalizeRule maps a blank rule to nil so the task is not treated as recurring.
func normalizeRule(rule *string) *string {
	if rule == nil {
		return nil
	}
	value := strings.TrimSpace(*rule)
	if value == "" {
		return nil
	}
	return &value
}
