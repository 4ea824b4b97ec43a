package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type TaskListService struct {
	lists ports.TaskListRepository
}

func NewTaskListService(lists ports.TaskListRepository) *TaskListService {
	return &TaskListService{lists: lists}
}

var _ ports.TaskListService = (*TaskListService)(nil)

func (s *TaskListService) ListTaskLists(ctx context.Context, userID uuid.UUID) ([]domain.TaskList, error) {
	return s.lists.ListByUser(ctx, userID)
}

func (s *TaskListService) GetTaskList(ctx context.Context, id, userID uuid.UUID) (domain.TaskList, error) {
	return s.lists.Get(ctx, id, userID)
}

func (s *TaskListService) CreateTaskList(ctx context.Context, list domain.TaskList) (domain.TaskList, error) {
	if err := s.lists.Create(ctx, &list); err != nil {
		return domain.TaskList{}, err
	}
	return list, nil
}

func (s *TaskListService) UpdateTaskList(ctx context.Context, id, userID uuid.UUID, patch domain.TaskListPatch) (domain.TaskList, error) {
	list, err := s.lists.Get(ctx, id, userID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if patch.Name != nil {
		list.Name = *patch.Name
	}
	if patch.ColorSet {
		list.Color = patch.Color
	}
	if patch.IconSet {
		list.Icon = patch.Icon
	}
	if patch.Position != nil {
		list.Position = *patch.Position
	}
	if err := s.lists.Update(ctx, &list); err != nil {
		return domain.TaskList{}, err
	}
	return list, nil
}

// DeleteTaskList removes the list together with its tasks.
func (s *TaskListService) DeleteTaskList(ctx context.Context, id, userID uuid.UUID) error {
	return s.lists.Delete(ctx, id, userID)
}
