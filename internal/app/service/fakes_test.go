package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// inlineTx runs fn directly and counts how often a transaction was opened.
type inlineTx struct {
	calls int
}

func (t *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type memoryTasks struct {
	items     []domain.Task
	createErr func(domain.Task) error
}

func (r *memoryTasks) Get(_ context.Context, id, userID uuid.UUID) (domain.Task, error) {
	for _, t := range r.items {
		if t.ID == id && t.UserID == userID {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *memoryTasks) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	return r.List(ctx, userID, domain.TaskFilter{})
}

func (r *memoryTasks) List(_ context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.items {
		if t.UserID != userID {
			continue
		}
		if filter.ListID != nil && t.TaskListID != *filter.ListID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memoryTasks) Create(_ context.Context, t *domain.Task) error {
	if r.createErr != nil {
		if err := r.createErr(*t); err != nil {
			return err
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.items = append(r.items, *t)
	return nil
}

func (r *memoryTasks) Update(_ context.Context, t *domain.Task) error {
	for i := range r.items {
		if r.items[i].ID == t.ID {
			r.items[i] = *t
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *memoryTasks) Delete(_ context.Context, id, _ uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// occurrencesOf returns the scheduled dates of the materialized siblings of template.
func (r *memoryTasks) occurrencesOf(template domain.Task) []string {
	var out []string
	for _, t := range r.items {
		if t.IsOccurrenceOf(template) && t.ScheduledDate != nil {
			out = append(out, t.ScheduledDate.Format(domain.DateLayout))
		}
	}
	return out
}

type memoryLists struct {
	items map[uuid.UUID]domain.TaskList
}

func (r *memoryLists) Get(_ context.Context, id, userID uuid.UUID) (domain.TaskList, error) {
	l, ok := r.items[id]
	if !ok || l.UserID != userID {
		return domain.TaskList{}, domain.ErrTaskListNotFound
	}
	return l, nil
}

func (r *memoryLists) ListByUser(context.Context, uuid.UUID) ([]domain.TaskList, error) {
	return nil, nil
}

func (r *memoryLists) Create(_ context.Context, l *domain.TaskList) error {
	r.items[l.ID] = *l
	return nil
}

func (r *memoryLists) Update(_ context.Context, l *domain.TaskList) error {
	r.items[l.ID] = *l
	return nil
}

func (r *memoryLists) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type memoryCategories struct {
	items map[uuid.UUID]domain.Category
}

func (r *memoryCategories) Get(_ context.Context, id, userID uuid.UUID) (domain.Category, error) {
	c, ok := r.items[id]
	if !ok || c.UserID != userID {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *memoryCategories) ListByUser(context.Context, uuid.UUID) ([]domain.Category, error) {
	return nil, nil
}

func (r *memoryCategories) Create(_ context.Context, c *domain.Category) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryCategories) Update(_ context.Context, c *domain.Category) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryCategories) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type memoryActivities struct {
	items     []domain.Activity
	createErr error
}

func (r *memoryActivities) Get(_ context.Context, id, userID uuid.UUID) (domain.Activity, error) {
	for _, a := range r.items {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return domain.Activity{}, domain.ErrActivityNotFound
}

func (r *memoryActivities) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range r.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryActivities) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	all, _ := r.ListByUser(ctx, userID)
	var out []domain.Activity
	for _, a := range all {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryActivities) GetRunning(_ context.Context, userID uuid.UUID) (domain.Activity, error) {
	for _, a := range r.items {
		if a.UserID == userID && a.Running() {
			return a, nil
		}
	}
	return domain.Activity{}, domain.ErrNoActiveTimer
}

func (r *memoryActivities) Create(_ context.Context, a *domain.Activity) error {
	if r.createErr != nil {
		return r.createErr
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *memoryActivities) Update(_ context.Context, a *domain.Activity) error {
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = *a
			return nil
		}
	}
	return domain.ErrActivityNotFound
}

func (r *memoryActivities) Delete(_ context.Context, id, _ uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrActivityNotFound
}

type memoryLinks struct {
	items []domain.TaskActivity
	info  map[uuid.UUID]domain.ActivityTaskInfo
}

func (r *memoryLinks) Create(_ context.Context, link *domain.TaskActivity) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	r.items = append(r.items, *link)
	return nil
}

func (r *memoryLinks) ActivityIDsByTask(_ context.Context, taskIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	wanted := make(map[uuid.UUID]bool, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = true
	}
	out := make(map[uuid.UUID][]uuid.UUID)
	for _, l := range r.items {
		if wanted[l.TaskID] {
			out[l.TaskID] = append(out[l.TaskID], l.ActivityID)
		}
	}
	return out, nil
}

func (r *memoryLinks) TaskInfoByActivity(_ context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]domain.ActivityTaskInfo, error) {
	out := make(map[uuid.UUID]domain.ActivityTaskInfo)
	for _, id := range activityIDs {
		if info, ok := r.info[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}
