package validation

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

const defaultCategoryPriority = 1

func BuildGroup(userID uuid.UUID, req dto.CreateGroupRequest) (domain.Group, error) {
	name, err := requiredName(req.Name)
	if err != nil {
		return domain.Group{}, err
	}
	return domain.Group{UserID: userID, Name: name, Color: req.Color}, nil
}

func BuildGroupPatch(req dto.UpdateGroupRequest, raw map[string]json.RawMessage) (domain.GroupPatch, error) {
	if !hasAnyField(raw, "name", "color") {
		return domain.GroupPatch{}, ErrInvalidPayload
	}
	if err := rejectNull(raw, "color"); err != nil {
		return domain.GroupPatch{}, err
	}
	name, err := optionalName(raw, "name", req.Name)
	if err != nil {
		return domain.GroupPatch{}, err
	}
	return domain.GroupPatch{Name: name, Color: req.Color}, nil
}

func BuildCategory(userID uuid.UUID, req dto.CreateCategoryRequest) (domain.Category, error) {
	name, err := requiredName(req.Name)
	if err != nil {
		return domain.Category{}, err
	}
	groupID, err := ParseID(req.GroupID)
	if err != nil {
		return domain.Category{}, err
	}
	category := domain.Category{
		UserID:   userID,
		GroupID:  groupID,
		Name:     name,
		Priority: defaultCategoryPriority,
		Unit:     domain.CategoryUnitHours,
	}
	if req.Priority != nil {
		category.Priority = *req.Priority
	}
	if req.MinWeeklyHours != nil {
		category.MinWeeklyHours = *req.MinWeeklyHours
	}
	if req.TargetWeeklyHours != nil {
		category.TargetWeeklyHours = *req.TargetWeeklyHours
	}
	if req.MaxWeeklyHours != nil {
		category.MaxWeeklyHours = *req.MaxWeeklyHours
	}
	if req.Unit != nil {
		category.Unit = domain.CategoryUnit(*req.Unit)
	}
	if req.Mandatory != nil {
		category.Mandatory = *req.Mandatory
	}
	return category, nil
}

var categoryFields = []string{
	"groupId", "name", "priority", "minWeeklyHours", "targetWeeklyHours", "maxWeeklyHours", "unit", "mandatory",
}

func BuildCategoryPatch(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.CategoryPatch, error) {
	if !hasAnyField(raw, categoryFields...) {
		return domain.CategoryPatch{}, ErrInvalidPayload
	}
	if err := rejectNull(raw, categoryFields...); err != nil {
		return domain.CategoryPatch{}, err
	}
	name, err := optionalName(raw, "name", req.Name)
	if err != nil {
		return domain.CategoryPatch{}, err
	}
	groupID, err := parseOptionalID(req.GroupID)
	if err != nil {
		return domain.CategoryPatch{}, err
	}
	patch := domain.CategoryPatch{
		GroupID:           groupID,
		Name:              name,
		Priority:          req.Priority,
		MinWeeklyHours:    req.MinWeeklyHours,
		TargetWeeklyHours: req.TargetWeeklyHours,
		MaxWeeklyHours:    req.MaxWeeklyHours,
		Mandatory:         req.Mandatory,
	}
	if req.Unit != nil {
		unit := domain.CategoryUnit(*req.Unit)
		patch.Unit = &unit
	}
	return patch, nil
}

func BuildTaskList(userID uuid.UUID, req dto.CreateTaskListRequest) (domain.TaskList, error) {
	name, err := requiredName(req.Name)
	if err != nil {
		return domain.TaskList{}, err
	}
	list := domain.TaskList{UserID: userID, Name: name, Color: req.Color, Icon: req.Icon}
	if req.Position != nil {
		list.Position = *req.Position
	}
	return list, nil
}

func BuildTaskListPatch(req dto.UpdateTaskListRequest, raw map[string]json.RawMessage) (domain.TaskListPatch, error) {
	if !hasAnyField(raw, "name", "color", "icon", "position") {
		return domain.TaskListPatch{}, ErrInvalidPayload
	}
	if err := rejectNull(raw, "position"); err != nil {
		return domain.TaskListPatch{}, err
	}
	name, err := optionalName(raw, "name", req.Name)
	if err != nil {
		return domain.TaskListPatch{}, err
	}
	return domain.TaskListPatch{
		Name:     name,
		Color:    req.Color,
		ColorSet: hasJSONField(raw, "color"),
		Icon:     req.Icon,
		IconSet:  hasJSONField(raw, "icon"),
		Position: req.Position,
	}, nil
}
