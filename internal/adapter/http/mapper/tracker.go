package mapper

import (
	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func ToGroupItems(groups []domain.Group) []dto.GroupItem {
	items := make([]dto.GroupItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, ToGroupItem(g))
	}
	return items
}

func ToGroupItem(g domain.Group) dto.GroupItem {
	return dto.GroupItem{
		ID:        g.ID.String(),
		UserID:    g.UserID.String(),
		Name:      g.Name,
		Color:     g.Color,
		CreatedAt: timestamp(g.CreatedAt),
		UpdatedAt: timestamp(g.UpdatedAt),
	}
}

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryItem(c))
	}
	return items
}

func ToCategoryItem(c domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:                c.ID.String(),
		UserID:            c.UserID.String(),
		GroupID:           c.GroupID.String(),
		Name:              c.Name,
		Priority:          c.Priority,
		MinWeeklyHours:    c.MinWeeklyHours,
		TargetWeeklyHours: c.TargetWeeklyHours,
		MaxWeeklyHours:    c.MaxWeeklyHours,
		Unit:              string(c.Unit),
		Mandatory:         c.Mandatory,
		CreatedAt:         timestamp(c.CreatedAt),
		UpdatedAt:         timestamp(c.UpdatedAt),
	}
}

func ToActivityItems(activities []domain.Activity) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, ToActivityItem(a))
	}
	return items
}

func ToActivityItem(a domain.Activity) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		CategoryID: a.CategoryID.String(),
		Date:       date(a.Date),
		StartTime:  a.StartTime.String(),
		EndTime:    timeOfDayPtr(a.EndTime),
		Notes:      a.Notes,
		IsRunning:  a.Running(),
		CreatedAt:  timestamp(a.CreatedAt),
		UpdatedAt:  timestamp(a.UpdatedAt),
	}
	if a.Task != nil {
		taskID := a.Task.TaskID.String()
		taskName := a.Task.TaskName
		item.IsFromTask = true
		item.TaskID = &taskID
		item.TaskName = &taskName
		item.TaskListColor = a.Task.TaskListColor
	}
	return item
}
