package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type TaskListRepository interface {
	Repository[domain.TaskList]
}

type TaskRepository interface {
	Repository[domain.Task]
	List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error)
}

type TaskActivityRepository interface {
	Create(ctx context.Context, link *domain.TaskActivity) error
	ActivityIDsByTask(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	TaskInfoByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]domain.ActivityTaskInfo, error)
}

// OccurrenceSequence is an ordered, possibly infinite, series of instants.
// After returns the zero time once the series is exhausted.
type OccurrenceSequence interface {
	After(t time.Time, inclusive bool) time.Time
}

type RecurrenceParser interface {
	Parse(rule string, start time.Time) (OccurrenceSequence, error)
}

type TaskListService interface {
	ListTaskLists(ctx context.Context, userID uuid.UUID) ([]domain.TaskList, error)
	GetTaskList(ctx context.Context, id, userID uuid.UUID) (domain.TaskList, error)
	CreateTaskList(ctx context.Context, list domain.TaskList) (domain.TaskList, error)
	UpdateTaskList(ctx context.Context, id, userID uuid.UUID, patch domain.TaskListPatch) (domain.TaskList, error)
	DeleteTaskList(ctx context.Context, id, userID uuid.UUID) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id, userID uuid.UUID) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, id, userID uuid.UUID, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id, userID uuid.UUID) error
	GenerateOccurrences(ctx context.Context, id, userID uuid.UUID, count int) ([]domain.Task, error)
	GenerateRollingOccurrences(ctx context.Context, userID uuid.UUID) (domain.RollingResult, error)
	CompleteTask(ctx context.Context, id, userID uuid.UUID, input domain.CompleteTaskInput) (domain.Task, error)
	ConvertToActivity(ctx context.Context, id, userID uuid.UUID, input domain.ConvertTaskInput) (domain.TaskActivity, error)
}
