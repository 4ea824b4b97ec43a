package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/period"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

// ActivityService owns activities and the timer, which is an activity
// without an end time.
type ActivityService struct {
	activities ports.ActivityRepository
	categories ports.CategoryRepository
	links      ports.TaskActivityRepository
	clock      ports.Clock
}

func NewActivityService(activities ports.ActivityRepository, categories ports.CategoryRepository, links ports.TaskActivityRepository, clock ports.Clock) *ActivityService {
	return &ActivityService{activities: activities, categories: categories, links: links, clock: clock}
}

var (
	_ ports.ActivityService = (*ActivityService)(nil)
	_ ports.TimerService    = (*ActivityService)(nil)
)

func (s *ActivityService) ListActivities(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withTaskInfo(ctx, activities)
}

func (s *ActivityService) ListActivitiesByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	activities, err := s.activities.ListByDate(ctx, userID, period.Date(date))
	if err != nil {
		return nil, err
	}
	return s.withTaskInfo(ctx, activities)
}

func (s *ActivityService) GetActivity(ctx context.Context, id, userID uuid.UUID) (domain.Activity, error) {
	activity, err := s.activities.Get(ctx, id, userID)
	if err != nil {
		return domain.Activity{}, err
	}
	enriched, err := s.withTaskInfo(ctx, []domain.Activity{activity})
	if err != nil {
		return domain.Activity{}, err
	}
	return enriched[0], nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := domain.ValidateTimes(activity.StartTime, activity.EndTime); err != nil {
		return domain.Activity{}, err
	}
	if _, err := s.categories.Get(ctx, activity.CategoryID, activity.UserID); err != nil {
		return domain.Activity{}, err
	}
	activity.Date = period.Date(activity.Date)
	if err := s.activities.Create(ctx, &activity); err != nil {
		return domain.Activity{}, err
	}
	zap.L().Info("activity created", zap.String("activity_id", activity.ID.String()))
	return activity, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, id, userID uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error) {
	activity, err := s.activities.Get(ctx, id, userID)
	if err != nil {
		return domain.Activity{}, err
	}
	if patch.CategoryID != nil {
		if _, err := s.categories.Get(ctx, *patch.CategoryID, userID); err != nil {
			return domain.Activity{}, err
		}
		activity.CategoryID = *patch.CategoryID
	}
	if patch.Date != nil {
		activity.Date = period.Date(*patch.Date)
	}
	if patch.StartTime != nil {
		activity.StartTime = *patch.StartTime
	}
	if patch.EndTimeSet {
		activity.EndTime = patch.EndTime
	}
	if patch.NotesSet {
		activity.Notes = patch.Notes
	}
	if err := domain.ValidateTimes(activity.StartTime, activity.EndTime); err != nil {
		return domain.Activity{}, err
	}
	if err := s.activities.Update(ctx, &activity); err != nil {
		return domain.Activity{}, err
	}
	return s.GetActivity(ctx, id, userID)
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id, userID uuid.UUID) error {
	return s.activities.Delete(ctx, id, userID)
}

// StartTimer opens an activity with no end time. The store allows a single
// running activity per user, so a concurrent start loses with a conflict.
func (s *ActivityService) StartTimer(ctx context.Context, userID, categoryID uuid.UUID) (domain.Activity, error) {
	if _, err := s.activities.GetRunning(ctx, userID); err == nil {
		zap.L().Warn("timer already running", zap.String("user_id", userID.String()))
		return domain.Activity{}, domain.ErrTimerAlreadyRunning
	} else if !errors.Is(err, domain.ErrNoActiveTimer) {
		return domain.Activity{}, err
	}

	if _, err := s.categories.Get(ctx, categoryID, userID); err != nil {
		return domain.Activity{}, err
	}

	now := s.clock.Now()
	activity := domain.Activity{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       period.Date(now),
		StartTime:  domain.TimeOfDayFrom(now),
	}
	if err := s.activities.Create(ctx, &activity); err != nil {
		return domain.Activity{}, err
	}
	zap.L().Info("timer started",
		zap.String("user_id", userID.String()),
		zap.String("category_id", categoryID.String()),
	)
	return activity, nil
}

func (s *ActivityService) StopTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error) {
	return s.StopTimerAt(ctx, userID, domain.TimeOfDayFrom(s.clock.Now()))
}

func (s *ActivityService) StopTimerAt(ctx context.Context, userID uuid.UUID, end domain.TimeOfDay) (domain.Activity, error) {
	activity, err := s.activities.GetRunning(ctx, userID)
	if err != nil {
		return domain.Activity{}, err
	}
	if err := domain.ValidateTimes(activity.StartTime, &end); err != nil {
		return domain.Activity{}, err
	}
	activity.EndTime = &end
	if err := s.activities.Update(ctx, &activity); err != nil {
		return domain.Activity{}, err
	}
	zap.L().Info("timer stopped",
		zap.String("user_id", userID.String()),
		zap.String("activity_id", activity.ID.String()),
		zap.String("end_time", end.String()),
	)
	return activity, nil
}

func (s *ActivityService) ActiveTimer(ctx context.Context, userID uuid.UUID) (domain.Activity, error) {
	return s.activities.GetRunning(ctx, userID)
}

func (s *ActivityService) withTaskInfo(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	if len(activities) == 0 {
		return activities, nil
	}
	ids := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	infos, err := s.links.TaskInfoByActivity(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if info, ok := infos[activities[i].ID]; ok {
			info := info
			activities[i].Task = &info
		}
	}
	return activities, nil
}
