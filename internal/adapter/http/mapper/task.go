package mapper

import (
	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	exceptions := task.ExceptionDates
	if exceptions == nil {
		exceptions = []string{}
	}
	return dto.TaskItem{
		ID:                       task.ID.String(),
		UserID:                   task.UserID.String(),
		TaskListID:               task.TaskListID.String(),
		CategoryID:               uuidPtr(task.CategoryID),
		Title:                    task.Title,
		Description:              task.Description,
		Status:                   string(task.Status),
		Priority:                 string(task.Priority),
		DueDate:                  datePtr(task.DueDate),
		ScheduledDate:            datePtr(task.ScheduledDate),
		ScheduledStartTime:       timeOfDayPtr(task.ScheduledStartTime),
		ScheduledEndTime:         timeOfDayPtr(task.ScheduledEndTime),
		EstimatedDurationMinutes: task.EstimatedDurationMinutes,
		RecurrenceRule:           task.RecurrenceRule,
		ExceptionDates:           exceptions,
		Position:                 task.Position,
		ActivityIDs:              uuidStrings(task.ActivityIDs),
		CreatedAt:                timestamp(task.CreatedAt),
		UpdatedAt:                timestamp(task.UpdatedAt),
	}
}

func ToTaskActivityItem(link domain.TaskActivity) dto.TaskActivityItem {
	return dto.TaskActivityItem{
		ID:         link.ID.String(),
		TaskID:     link.TaskID.String(),
		ActivityID: link.ActivityID.String(),
		CreatedAt:  timestamp(link.CreatedAt),
	}
}

func ToRollingGenerationResponse(result domain.RollingResult) dto.RollingGenerationResponse {
	failures := make([]dto.RollingFailureItem, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, dto.RollingFailureItem{
			TaskID: f.TaskID.String(),
			Title:  f.Title,
			Error:  f.Err.Error(),
		})
	}
	return dto.RollingGenerationResponse{
		Message:               "Rolling occurrences generated",
		CreatedCount:          result.CreatedCount,
		RecurringTasksChecked: result.RecurringTasksChecked,
		Failures:              failures,
	}
}

func ToTaskListItems(lists []domain.TaskList) []dto.TaskListItem {
	items := make([]dto.TaskListItem, 0, len(lists))
	for _, l := range lists {
		items = append(items, ToTaskListItem(l))
	}
	return items
}

func ToTaskListItem(l domain.TaskList) dto.TaskListItem {
	return dto.TaskListItem{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Name:      l.Name,
		Color:     l.Color,
		Icon:      l.Icon,
		Position:  l.Position,
		CreatedAt: timestamp(l.CreatedAt),
		UpdatedAt: timestamp(l.UpdatedAt),
	}
}
