package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const (
	taskListColumns = `id, user_id, name, color, icon, position, created_at, updated_at`

	getTaskListQuery    = `SELECT ` + taskListColumns + ` FROM task_lists WHERE id = $1 AND user_id = $2`
	listTaskListsQuery  = `SELECT ` + taskListColumns + ` FROM task_lists WHERE user_id = $1 ORDER BY position, name`
	insertTaskListQuery = `
INSERT INTO task_lists (id, user_id, name, color, icon, position)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at, updated_at`
	updateTaskListQuery = `
UPDATE task_lists SET name = $3, color = $4, icon = $5, position = $6, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`
	deleteTaskListQuery = `DELETE FROM task_lists WHERE id = $1 AND user_id = $2`
)

type TaskListRepository struct {
	db *sqlx.DB
}

type taskListRow struct {
	ID        uuid.UUID      `db:"id"`
	UserID    uuid.UUID      `db:"user_id"`
	Name      string         `db:"name"`
	Color     sql.NullString `db:"color"`
	Icon      sql.NullString `db:"icon"`
	Position  int            `db:"position"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.TaskListRepository = (*TaskListRepository)(nil)

func NewTaskListRepository(db *sqlx.DB) *TaskListRepository {
	return &TaskListRepository{db: db}
}

func (r *TaskListRepository) Get(ctx context.Context, id, userID uuid.UUID) (domain.TaskList, error) {
	var row taskListRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getTaskListQuery, id, userID); err != nil {
		return domain.TaskList{}, mapError(err, domain.ErrTaskListNotFound)
	}
	return mapTaskListRowToDomain(row), nil
}

func (r *TaskListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TaskList, error) {
	var rows []taskListRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, listTaskListsQuery, userID); err != nil {
		return nil, err
	}
	lists := make([]domain.TaskList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, mapTaskListRowToDomain(row))
	}
	return lists, nil
}

func (r *TaskListRepository) Create(ctx context.Context, l *domain.TaskList) error {
	newID(&l.ID)
	var stamps timestamps
	err := conn(ctx, r.db).GetContext(ctx, &stamps, insertTaskListQuery,
		l.ID, l.UserID, l.Name, nullString(l.Color), nullString(l.Icon), l.Position,
	)
	if err != nil {
		return mapError(err, nil)
	}
	l.CreatedAt, l.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *TaskListRepository) Update(ctx context.Context, l *domain.TaskList) error {
	err := conn(ctx, r.db).GetContext(ctx, &l.UpdatedAt, updateTaskListQuery,
		l.ID, l.UserID, l.Name, nullString(l.Color), nullString(l.Icon), l.Position,
	)
	return mapError(err, domain.ErrTaskListNotFound)
}

func (r *TaskListRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteTaskListQuery, id, userID)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(res, domain.ErrTaskListNotFound)
}

func mapTaskListRowToDomain(row taskListRow) domain.TaskList {
	return domain.TaskList{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Color:     stringPtr(row.Color),
		Icon:      stringPtr(row.Icon),
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
