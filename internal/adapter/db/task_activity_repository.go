package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const (
	insertTaskActivityQuery = `
INSERT INTO task_activities (id, task_id, activity_id)
VALUES ($1, $2, $3)
RETURNING created_at`
	activityIDsByTaskQuery = `
SELECT task_id, activity_id
FROM task_activities
WHERE task_id = ANY($1::uuid[])
ORDER BY created_at`
	taskInfoByActivityQuery = `
SELECT ta.activity_id, t.id AS task_id, t.title, tl.color
FROM task_activities ta
JOIN tasks t ON t.id = ta.task_id
JOIN task_lists tl ON tl.id = t.task_list_id
WHERE ta.activity_id = ANY($1::uuid[])`
)

type TaskActivityRepository struct {
	db *sqlx.DB
}

type taskActivityLinkRow struct {
	TaskID     uuid.UUID `db:"task_id"`
	ActivityID uuid.UUID `db:"activity_id"`
}

type activityTaskInfoRow struct {
	ActivityID uuid.UUID `db:"activity_id"`
	TaskID     uuid.UUID `db:"task_id"`
	Title      string    `db:"title"`
	Color      *string   `db:"color"`
}

var _ ports.TaskActivityRepository = (*TaskActivityRepository)(nil)

func NewTaskActivityRepository(db *sqlx.DB) *TaskActivityRepository {
	return &TaskActivityRepository{db: db}
}

func (r *TaskActivityRepository) Create(ctx context.Context, link *domain.TaskActivity) error {
	newID(&link.ID)
	err := conn(ctx, r.db).GetContext(ctx, &link.CreatedAt, insertTaskActivityQuery,
		link.ID, link.TaskID, link.ActivityID,
	)
	return mapError(err, nil)
}

func (r *TaskActivityRepository) ActivityIDsByTask(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	result := make(map[uuid.UUID][]uuid.UUID, len(taskIDs))
	if len(taskIDs) == 0 {
		return result, nil
	}

	var rows []taskActivityLinkRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, activityIDsByTaskQuery, pq.Array(uuidStrings(taskIDs))); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.TaskID] = append(result[row.TaskID], row.ActivityID)
	}
	return result, nil
}

func (r *TaskActivityRepository) TaskInfoByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]domain.ActivityTaskInfo, error) {
	result := make(map[uuid.UUID]domain.ActivityTaskInfo, len(activityIDs))
	if len(activityIDs) == 0 {
		return result, nil
	}

	var rows []activityTaskInfoRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, taskInfoByActivityQuery, pq.Array(uuidStrings(activityIDs))); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ActivityID] = domain.ActivityTaskInfo{
			TaskID:        row.TaskID,
			TaskName:      row.Title,
			TaskListColor: row.Color,
		}
	}
	return result, nil
}

// lib/pq has no native uuid[] encoder, so ids travel as text and postgres casts them.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
