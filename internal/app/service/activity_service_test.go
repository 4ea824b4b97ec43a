package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func newActivityFixture(now time.Time) (*ActivityService, *memoryActivities, *memoryLinks, uuid.UUID, uuid.UUID) {
	userID, categoryID := uuid.New(), uuid.New()
	activities := &memoryActivities{}
	links := &memoryLinks{info: map[uuid.UUID]domain.ActivityTaskInfo{}}
	categories := &memoryCategories{items: map[uuid.UUID]domain.Category{
		categoryID: {ID: categoryID, UserID: userID, Name: "Reading"},
	}}
	svc := NewActivityService(activities, categories, links, fixedClock{now: now})
	return svc, activities, links, userID, categoryID
}

func TestTimer_StartStop(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 15, 42, 0, time.UTC)
	svc, activities, _, userID, categoryID := newActivityFixture(now)

	started, err := svc.StartTimer(context.Background(), userID, categoryID)
	require.NoError(t, err)
	require.True(t, started.Running())
	require.Equal(t, "09:15", started.StartTime.String())
	require.Equal(t, day(2026, 3, 4), started.Date)

	active, err := svc.ActiveTimer(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, started.ID, active.ID)

	stopped, err := svc.StopTimerAt(context.Background(), userID, domain.TimeOfDay(10*60))
	require.NoError(t, err)
	require.False(t, stopped.Running())
	require.Equal(t, 45, stopped.DurationMinutes())
	require.False(t, activities.items[0].Running())

	_, err = svc.ActiveTimer(context.Background(), userID)
	require.ErrorIs(t, err, domain.ErrNoActiveTimer)
}

func TestTimer_SecondStartConflicts(t *testing.T) {
	svc, _, _, userID, categoryID := newActivityFixture(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))

	_, err := svc.StartTimer(context.Background(), userID, categoryID)
	require.NoError(t, err)

	_, err = svc.StartTimer(context.Background(), userID, categoryID)
	require.ErrorIs(t, err, domain.ErrTimerAlreadyRunning)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestTimer_StopValidation(t *testing.T) {
	svc, _, _, userID, categoryID := newActivityFixture(time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC))

	_, err := svc.StopTimer(context.Background(), userID)
	require.ErrorIs(t, err, domain.ErrNoActiveTimer)

	_, err = svc.StartTimer(context.Background(), userID, categoryID)
	require.NoError(t, err)

	_, err = svc.StopTimerAt(context.Background(), userID, domain.TimeOfDay(9*60))
	require.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestTimer_UnknownCategory(t *testing.T) {
	svc, _, _, userID, _ := newActivityFixture(time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC))

	_, err := svc.StartTimer(context.Background(), userID, uuid.New())

	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestActivityService_ListByDateAddsTaskInfo(t *testing.T) {
	svc, activities, links, userID, categoryID := newActivityFixture(time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC))
	end := domain.TimeOfDay(11 * 60)
	created, err := svc.CreateActivity(context.Background(), domain.Activity{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC),
		StartTime:  domain.TimeOfDay(10 * 60),
		EndTime:    &end,
	})
	require.NoError(t, err)
	require.Len(t, activities.items, 1)

	color := "#123456"
	taskID := uuid.New()
	links.info[created.ID] = domain.ActivityTaskInfo{TaskID: taskID, TaskName: "Chapter 3", TaskListColor: &color}

	got, err := svc.ListActivitiesByDate(context.Background(), userID, day(2026, 3, 4))

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Task)
	require.Equal(t, taskID, got[0].Task.TaskID)
	require.Equal(t, "Chapter 3", got[0].Task.TaskName)
}

func TestActivityService_CreateRejectsInvertedTimes(t *testing.T) {
	svc, activities, _, userID, categoryID := newActivityFixture(time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC))
	end := domain.TimeOfDay(9 * 60)

	_, err := svc.CreateActivity(context.Background(), domain.Activity{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       day(2026, 3, 4),
		StartTime:  domain.TimeOfDay(10 * 60),
		EndTime:    &end,
	})

	require.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	require.Empty(t, activities.items)
}
