package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type GroupRepository interface {
	Repository[domain.Group]
}

type CategoryRepository interface {
	Repository[domain.Category]
}

type ActivityRepository interface {
	Repository[domain.Activity]
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.Activity, error)
	// GetRunning returns domain.ErrNoActiveTimer when nothing is running.
	GetRunning(ctx context.Context, userID uuid.UUID) (domain.Activity, error)
}

type GroupService interface {
	ListGroups(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)
	GetGroup(ctx context.Context, id, userID uuid.UUID) (domain.Group, error)
	CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error)
	UpdateGroup(ctx context.Context, id, userID uuid.UUID, patch domain.GroupPatch) (domain.Group, error)
	DeleteGroup(ctx context.Context, id, userID uuid.UUID) error
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	GetCategory(ctx context.Context, id, userID uuid.UUID) (domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, id, userID uuid.UUID, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}

type ActivityService interface {
	ListActivities(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error)
	ListActivitiesByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id, userID uuid.UUID) (domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, id, userID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id, userID uuid.UUID) error
}

type TimerService interface {
	StartTimer(ctx context.Context, userID, categoryID uuid.UUID) (domain.Activity, error)
	StopTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error)
	StopTimerAt(ctx context.Context, userID uuid.UUID, end domain.TimeOfDay) (domain.Activity, error)
	ActiveTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error)
}
