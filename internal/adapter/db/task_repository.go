package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const (
	taskColumns = `id, user_id, task_list_id, category_id, title, description, status, priority,
  due_date, scheduled_date, scheduled_start_time, scheduled_end_time,
  estimated_duration_minutes, recurrence_rule, exception_dates, position, created_at, updated_at`

	getTaskQuery    = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	listTasksQuery  = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	taskOrderBy     = ` ORDER BY position, created_at`
	insertTaskQuery = `
INSERT INTO tasks (
  id, user_id, task_list_id, category_id, title, description, status, priority,
  due_date, scheduled_date, scheduled_start_time, scheduled_end_time,
  estimated_duration_minutes, recurrence_rule, exception_dates, position
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15::jsonb, $16)
RETURNING created_at, updated_at`
	updateTaskQuery = `
UPDATE tasks SET
  task_list_id = $3, category_id = $4, title = $5, description = $6, status = $7, priority = $8,
  due_date = $9, scheduled_date = $10, scheduled_start_time = $11, scheduled_end_time = $12,
  estimated_duration_minutes = $13, recurrence_rule = $14, exception_dates = $15::jsonb,
  position = $16, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                       uuid.UUID      `db:"id"`
	UserID                   uuid.UUID      `db:"user_id"`
	TaskListID               uuid.UUID      `db:"task_list_id"`
	CategoryID               uuid.NullUUID  `db:"category_id"`
	Title                    string         `db:"title"`
	Description              sql.NullString `db:"description"`
	Status                   string         `db:"status"`
	Priority                 string         `db:"priority"`
	DueDate                  sql.NullTime   `db:"due_date"`
	ScheduledDate            sql.NullTime   `db:"scheduled_date"`
	ScheduledStartTime       sql.NullString `db:"scheduled_start_time"`
	ScheduledEndTime         sql.NullString `db:"scheduled_end_time"`
	EstimatedDurationMinutes sql.NullInt64  `db:"estimated_duration_minutes"`
	RecurrenceRule           sql.NullString `db:"recurrence_rule"`
	ExceptionDates           []byte         `db:"exception_dates"`
	Position                 int            `db:"position"`
	CreatedAt                time.Time      `db:"created_at"`
	UpdatedAt                time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Get(ctx context.Context, id, userID uuid.UUID) (domain.Task, error) {
	var row taskRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getTaskQuery, id, userID); err != nil {
		return domain.Task{}, mapError(err, domain.ErrTaskNotFound)
	}
	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	return r.List(ctx, userID, domain.TaskFilter{})
}

func (r *TaskRepository) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	var sb strings.Builder
	sb.WriteString(listTasksQuery)
	args := []interface{}{userID}
	if filter.ListID != nil {
		args = append(args, *filter.ListID)
		fmt.Fprintf(&sb, " AND task_list_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	sb.WriteString(taskOrderBy)

	var rows []taskRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	newID(&t.ID)
	args, err := taskArgs(t)
	if err != nil {
		return err
	}
	var stamps timestamps
	if err := conn(ctx, r.db).GetContext(ctx, &stamps, insertTaskQuery, args...); err != nil {
		return mapError(err, nil)
	}
	t.CreatedAt, t.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	args, err := taskArgs(t)
	if err != nil {
		return err
	}
	err = conn(ctx, r.db).GetContext(ctx, &t.UpdatedAt, updateTaskQuery, args...)
	return mapError(err, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteTaskQuery, id, userID)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(res, domain.ErrTaskNotFound)
}

// taskArgs lists the bind parameters shared by insert and update, in column order.
func taskArgs(t *domain.Task) ([]interface{}, error) {
	exceptions := t.ExceptionDates
	if exceptions == nil {
		exceptions = []string{}
	}
	encoded, err := json.Marshal(exceptions)
	if err != nil {
		return nil, fmt.Errorf("encode exception dates: %w", err)
	}
	return []interface{}{
		t.ID, t.UserID, t.TaskListID, nullUUID(t.CategoryID), t.Title, nullString(t.Description),
		string(t.Status), string(t.Priority),
		nullDate(t.DueDate), nullDate(t.ScheduledDate),
		nullTimeOfDay(t.ScheduledStartTime), nullTimeOfDay(t.ScheduledEndTime),
		nullInt(t.EstimatedDurationMinutes), nullString(t.RecurrenceRule),
		string(encoded), t.Position,
	}, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:                       row.ID,
		UserID:                   row.UserID,
		TaskListID:               row.TaskListID,
		CategoryID:               uuidPtr(row.CategoryID),
		Title:                    row.Title,
		Description:              stringPtr(row.Description),
		Status:                   domain.TaskStatus(row.Status),
		Priority:                 domain.TaskPriority(row.Priority),
		DueDate:                  timePtr(row.DueDate),
		ScheduledDate:            timePtr(row.ScheduledDate),
		EstimatedDurationMinutes: intPtr(row.EstimatedDurationMinutes),
		RecurrenceRule:           stringPtr(row.RecurrenceRule),
		ExceptionDates:           []string{},
		Position:                 row.Position,
		CreatedAt:                row.CreatedAt,
		UpdatedAt:                row.UpdatedAt,
	}

	var err error
	if task.ScheduledStartTime, err = timeOfDayPtr(row.ScheduledStartTime); err != nil {
		return domain.Task{}, err
	}
	if task.ScheduledEndTime, err = timeOfDayPtr(row.ScheduledEndTime); err != nil {
		return domain.Task{}, err
	}
	if len(row.ExceptionDates) > 0 {
		if err := json.Unmarshal(row.ExceptionDates, &task.ExceptionDates); err != nil {
			return domain.Task{}, fmt.Errorf("decode exception dates: %w", err)
		}
	}

	return task, nil
}
