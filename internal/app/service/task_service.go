package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/period"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const (
	DefaultOccurrenceCount = 10
	MaxOccurrenceCount     = 52
)

type TaskConfig struct {
	// RollingHorizonDays bounds the look-ahead window of rolling generation.
	RollingHorizonDays int
	// RollingBuffer is the number of upcoming occurrences kept per template.
	RollingBuffer int
	// MaxRuleScan caps how many candidate dates one expansion may inspect.
	MaxRuleScan int
}

func DefaultTaskConfig() TaskConfig {
	return TaskConfig{RollingHorizonDays: 14, RollingBuffer: 3, MaxRuleScan: 1000}
}

type TaskRepositories struct {
	Tasks      ports.TaskRepository
	Lists      ports.TaskListRepository
	Links      ports.TaskActivityRepository
	Activities ports.ActivityRepository
	Categories ports.CategoryRepository
}

type TaskService struct {
	repos TaskRepositories
	rules ports.RecurrenceParser
	tx    ports.Transactor
	clock ports.Clock
	cfg   TaskConfig
}

func NewTaskService(repos TaskRepositories, rules ports.RecurrenceParser, tx ports.Transactor, clock ports.Clock, cfg TaskConfig) *TaskService {
	return &TaskService{repos: repos, rules: rules, tx: tx, clock: clock, cfg: cfg}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.repos.Tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if err := s.attachActivityIDs(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id, userID uuid.UUID) (domain.Task, error) {
	task, err := s.repos.Tasks.Get(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}
	tasks := []domain.Task{task}
	if err := s.attachActivityIDs(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (s *TaskService) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := s.checkReferences(ctx, task); err != nil {
		return domain.Task{}, err
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if err := s.repos.Tasks.Create(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	zap.L().Info("task created", zap.String("task_id", task.ID.String()), zap.String("user_id", task.UserID.String()))
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id, userID uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	task, err := s.repos.Tasks.Get(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}
	applyTaskPatch(&task, patch)
	if err := s.checkReferences(ctx, task); err != nil {
		return domain.Task{}, err
	}
	if err := s.repos.Tasks.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return s.GetTask(ctx, id, userID)
}

func (s *TaskService) DeleteTask(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Tasks.Delete(ctx, id, userID)
}

// GenerateOccurrences materializes up to count new occurrences of a
// recurring task, inside a single transaction.
func (s *TaskService) GenerateOccurrences(ctx context.Context, id, userID uuid.UUID, count int) ([]domain.Task, error) {
	if count < 1 || count > MaxOccurrenceCount {
		return nil, domain.ErrInvalidOccurrenceCount
	}
	zap.L().Info("generating occurrences",
		zap.String("task_id", id.String()),
		zap.String("user_id", userID.String()),
		zap.Int("count", count),
	)

	template, err := s.repos.Tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repos.Tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.expandInTx(ctx, template, existing, count)
}

// GenerateRollingOccurrences tops up every recurring task so that at least
// RollingBuffer todo occurrences fall within the horizon. A failing template
// is recorded and does not stop the others.
func (s *TaskService) GenerateRollingOccurrences(ctx context.Context, userID uuid.UUID) (domain.RollingResult, error) {
	tasks, err := s.repos.Tasks.ListByUser(ctx, userID)
	if err != nil {
		return domain.RollingResult{}, err
	}

	start := today(s.clock)
	horizon := start.AddDate(0, 0, s.cfg.RollingHorizonDays)

	var templates []domain.Task
	for _, t := range tasks {
		if t.IsRecurring() {
			templates = append(templates, t)
		}
	}

	result := domain.RollingResult{RecurringTasksChecked: len(templates)}
	for _, template := range templates {
		upcoming := countUpcoming(tasks, template, start, horizon)
		if upcoming >= s.cfg.RollingBuffer {
			continue
		}

		created, err := s.expandInTx(ctx, template, tasks, s.cfg.RollingBuffer-upcoming)
		if err != nil {
			zap.L().Warn("rolling generation failed for task",
				zap.String("task_id", template.ID.String()),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, domain.RollingFailure{
				TaskID: template.ID,
				Title:  template.Title,
				Err:    err,
			})
			continue
		}
		result.CreatedCount += len(created)
		tasks = append(tasks, created...)
	}

	zap.L().Info("rolling generation complete",
		zap.String("user_id", userID.String()),
		zap.Int("created_count", result.CreatedCount),
		zap.Int("recurring_tasks_checked", result.RecurringTasksChecked),
		zap.Int("failures", len(result.Failures)),
	)
	return result, nil
}

func countUpcoming(tasks []domain.Task, template domain.Task, from, to time.Time) int {
	n := 0
	for _, t := range tasks {
		if !t.IsOccurrenceOf(template) || t.Status != domain.TaskStatusTodo || t.ScheduledDate == nil {
			continue
		}
		d := period.Date(*t.ScheduledDate)
		if !d.Before(from) && !d.After(to) {
			n++
		}
	}
	return n
}

func (s *TaskService) expandInTx(ctx context.Context, template domain.Task, existing []domain.Task, count int) ([]domain.Task, error) {
	var created []domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.expand(ctx, template, existing, count)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("occurrences generated",
		zap.String("task_id", template.ID.String()),
		zap.Int("created", len(created)),
	)
	return created, nil
}

// expand walks the template's rule strictly after its start date and
// creates a task for each date not already excluded or materialized.
func (s *TaskService) expand(ctx context.Context, template domain.Task, existing []domain.Task, count int) ([]domain.Task, error) {
	if !template.IsRecurring() {
		return nil, domain.ErrMissingRecurrenceRule
	}

	start := today(s.clock)
	if template.ScheduledDate != nil {
		start = period.Date(*template.ScheduledDate)
	}

	seq, err := s.rules.Parse(*template.RecurrenceRule, start)
	if err != nil {
		zap.L().Warn("invalid recurrence rule",
			zap.String("task_id", template.ID.String()),
			zap.String("rule", *template.RecurrenceRule),
			zap.Error(err),
		)
		if errors.Is(err, domain.ErrBadRequest) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecurrenceRule, err)
	}

	skip := make(map[string]struct{}, len(template.ExceptionDates))
	for _, d := range template.ExceptionDates {
		skip[d] = struct{}{}
	}
	for _, t := range existing {
		if t.IsOccurrenceOf(template) && t.ScheduledDate != nil {
			skip[t.ScheduledDate.Format(domain.DateLayout)] = struct{}{}
		}
	}

	created := make([]domain.Task, 0, count)
	occurrence := seq.After(start, true)
	for scanned := 0; !occurrence.IsZero() && len(created) < count; scanned++ {
		if scanned >= s.cfg.MaxRuleScan {
			zap.L().Warn("recurrence scan limit reached",
				zap.String("task_id", template.ID.String()),
				zap.Int("created", len(created)),
			)
			break
		}

		day := period.Date(occurrence)
		key := day.Format(domain.DateLayout)
		_, skipped := skip[key]
		if day.After(start) && !skipped {
			task := newOccurrence(template, day)
			if err := s.repos.Tasks.Create(ctx, &task); err != nil {
				return nil, fmt.Errorf("create occurrence %s: %w", key, err)
			}
			created = append(created, task)
			skip[key] = struct{}{}
		}
		occurrence = seq.After(occurrence, false)
	}
	return created, nil
}

func newOccurrence(template domain.Task, day time.Time) domain.Task {
	scheduled := day
	return domain.Task{
		UserID:                   template.UserID,
		TaskListID:               template.TaskListID,
		CategoryID:               template.CategoryID,
		Title:                    template.Title,
		Description:              template.Description,
		Status:                   domain.TaskStatusTodo,
		Priority:                 template.Priority,
		ScheduledDate:            &scheduled,
		ScheduledStartTime:       template.ScheduledStartTime,
		ScheduledEndTime:         template.ScheduledEndTime,
		EstimatedDurationMinutes: template.EstimatedDurationMinutes,
		Position:                 template.Position,
	}
}

// CompleteTask marks the task done. With AddToTracker it also logs an
// activity and links it to the task, all in one transaction.
func (s *TaskService) CompleteTask(ctx context.Context, id, userID uuid.UUID, input domain.CompleteTaskInput) (domain.Task, error) {
	task, err := s.repos.Tasks.Get(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}

	if !input.AddToTracker {
		task.Status = domain.TaskStatusDone
		if err := s.repos.Tasks.Update(ctx, &task); err != nil {
			return domain.Task{}, err
		}
		zap.L().Info("task completed", zap.String("task_id", id.String()))
		return s.GetTask(ctx, id, userID)
	}

	categoryID := input.CategoryID
	if categoryID == nil {
		categoryID = task.CategoryID
	}
	if categoryID == nil {
		return domain.Task{}, domain.ErrTrackerCategoryRequired
	}

	date, start, end := input.Date, input.StartTime, input.EndTime
	if date == nil {
		date = task.ScheduledDate
	}
	if start == nil {
		start = task.ScheduledStartTime
	}
	if end == nil {
		end = task.ScheduledEndTime
	}
	if date == nil || start == nil || end == nil {
		return domain.Task{}, domain.ErrTrackerScheduleRequired
	}

	notes := input.Notes
	if notes == nil {
		notes = task.Description
	}
	activity := domain.Activity{
		UserID:     userID,
		CategoryID: *categoryID,
		Date:       period.Date(*date),
		StartTime:  *start,
		EndTime:    end,
		Notes:      notes,
	}

	_, err = s.logTaskActivity(ctx, &task, activity)
	if err != nil {
		return domain.Task{}, err
	}
	zap.L().Info("task completed and tracked", zap.String("task_id", id.String()))
	return s.GetTask(ctx, id, userID)
}

func (s *TaskService) ConvertToActivity(ctx context.Context, id, userID uuid.UUID, input domain.ConvertTaskInput) (domain.TaskActivity, error) {
	task, err := s.repos.Tasks.Get(ctx, id, userID)
	if err != nil {
		return domain.TaskActivity{}, err
	}

	categoryID := input.CategoryID
	if categoryID == nil {
		categoryID = task.CategoryID
	}
	if categoryID == nil {
		return domain.TaskActivity{}, domain.ErrTrackerCategoryRequired
	}

	notes := input.Notes
	if notes == nil {
		notes = task.Description
	}
	end := input.EndTime
	activity := domain.Activity{
		UserID:     userID,
		CategoryID: *categoryID,
		Date:       period.Date(input.Date),
		StartTime:  input.StartTime,
		EndTime:    &end,
		Notes:      notes,
	}

	link, err := s.logTaskActivity(ctx, &task, activity)
	if err != nil {
		return domain.TaskActivity{}, err
	}
	zap.L().Info("task converted to activity",
		zap.String("task_id", id.String()),
		zap.String("activity_id", link.ActivityID.String()),
	)
	return link, nil
}

// logTaskActivity creates the activity, the task link and the done status
// update atomically.
func (s *TaskService) logTaskActivity(ctx context.Context, task *domain.Task, activity domain.Activity) (domain.TaskActivity, error) {
	if err := domain.ValidateTimes(activity.StartTime, activity.EndTime); err != nil {
		return domain.TaskActivity{}, err
	}
	if _, err := s.repos.Categories.Get(ctx, activity.CategoryID, activity.UserID); err != nil {
		return domain.TaskActivity{}, err
	}

	var link domain.TaskActivity
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repos.Activities.Create(ctx, &activity); err != nil {
			return err
		}
		link = domain.TaskActivity{TaskID: task.ID, ActivityID: activity.ID}
		if err := s.repos.Links.Create(ctx, &link); err != nil {
			return err
		}
		if task.Status == domain.TaskStatusDone {
			return nil
		}
		task.Status = domain.TaskStatusDone
		return s.repos.Tasks.Update(ctx, task)
	})
	return link, err
}

func (s *TaskService) checkReferences(ctx context.Context, task domain.Task) error {
	if _, err := s.repos.Lists.Get(ctx, task.TaskListID, task.UserID); err != nil {
		return err
	}
	if task.CategoryID != nil {
		if _, err := s.repos.Categories.Get(ctx, *task.CategoryID, task.UserID); err != nil {
			return err
		}
	}
	return nil
}

func (s *TaskService) attachActivityIDs(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	byTask, err := s.repos.Links.ActivityIDsByTask(ctx, ids)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].ActivityIDs = byTask[tasks[i].ID]
	}
	return nil
}

func applyTaskPatch(task *domain.Task, patch domain.TaskPatch) {
	if patch.TaskListID != nil {
		task.TaskListID = *patch.TaskListID
	}
	if patch.CategoryIDSet {
		task.CategoryID = patch.CategoryID
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.DescriptionSet {
		task.Description = patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.ScheduledDateSet {
		task.ScheduledDate = patch.ScheduledDate
	}
	if patch.ScheduledStartTimeSet {
		task.ScheduledStartTime = patch.ScheduledStartTime
	}
	if patch.ScheduledEndTimeSet {
		task.ScheduledEndTime = patch.ScheduledEndTime
	}
	if patch.EstimatedDurationMinutesSet {
		task.EstimatedDurationMinutes = patch.EstimatedDurationMinutes
	}
	if patch.RecurrenceRuleSet {
		task.RecurrenceRule = patch.RecurrenceRule
	}
	if patch.ExceptionDatesSet {
		task.ExceptionDates = patch.ExceptionDates
	}
	if patch.Position != nil {
		task.Position = *patch.Position
	}
}
