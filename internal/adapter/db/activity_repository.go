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
	activityColumns = `id, user_id, category_id, date, start_time, end_time, notes, created_at, updated_at`

	getActivityQuery          = `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND user_id = $2`
	listActivitiesQuery       = `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY date DESC, start_time DESC`
	listActivitiesByDateQuery = `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 AND date = $2 ORDER BY start_time`
	getRunningActivityQuery   = `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 AND end_time IS NULL`
	insertActivityQuery       = `
INSERT INTO activities (id, user_id, category_id, date, start_time, end_time, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`
	updateActivityQuery = `
UPDATE activities SET category_id = $3, date = $4, start_time = $5, end_time = $6, notes = $7, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`
	deleteActivityQuery = `DELETE FROM activities WHERE id = $1 AND user_id = $2`
)

type ActivityRepository struct {
	db *sqlx.DB
}

type activityRow struct {
	ID         uuid.UUID      `db:"id"`
	UserID     uuid.UUID      `db:"user_id"`
	CategoryID uuid.UUID      `db:"category_id"`
	Date       time.Time      `db:"date"`
	StartTime  string         `db:"start_time"`
	EndTime    sql.NullString `db:"end_time"`
	Notes      sql.NullString `db:"notes"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Get(ctx context.Context, id, userID uuid.UUID) (domain.Activity, error) {
	return r.getOne(ctx, domain.ErrActivityNotFound, getActivityQuery, id, userID)
}

func (r *ActivityRepository) GetRunning(ctx context.Context, userID uuid.UUID) (domain.Activity, error) {
	return r.getOne(ctx, domain.ErrNoActiveTimer, getRunningActivityQuery, userID)
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error) {
	return r.list(ctx, listActivitiesQuery, userID)
}

func (r *ActivityRepository) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	return r.list(ctx, listActivitiesByDateQuery, userID, date.Format(domain.DateLayout))
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	newID(&a.ID)
	var stamps timestamps
	err := conn(ctx, r.db).GetContext(ctx, &stamps, insertActivityQuery,
		a.ID, a.UserID, a.CategoryID, a.Date.Format(domain.DateLayout),
		a.StartTime.SQL(), nullTimeOfDay(a.EndTime), nullString(a.Notes),
	)
	if err != nil {
		return mapError(err, nil)
	}
	a.CreatedAt, a.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	err := conn(ctx, r.db).GetContext(ctx, &a.UpdatedAt, updateActivityQuery,
		a.ID, a.UserID, a.CategoryID, a.Date.Format(domain.DateLayout),
		a.StartTime.SQL(), nullTimeOfDay(a.EndTime), nullString(a.Notes),
	)
	return mapError(err, domain.ErrActivityNotFound)
}

func (r *ActivityRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteActivityQuery, id, userID)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(res, domain.ErrActivityNotFound)
}

func (r *ActivityRepository) getOne(ctx context.Context, notFound error, query string, args ...interface{}) (domain.Activity, error) {
	var row activityRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		return domain.Activity{}, mapError(err, notFound)
	}
	return mapActivityRowToDomain(row)
}

func (r *ActivityRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Activity, error) {
	var rows []activityRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activity, err := mapActivityRowToDomain(row)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

func mapActivityRowToDomain(row activityRow) (domain.Activity, error) {
	start, err := domain.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return domain.Activity{}, err
	}
	end, err := timeOfDayPtr(row.EndTime)
	if err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Date:       row.Date,
		StartTime:  start,
		EndTime:    end,
		Notes:      stringPtr(row.Notes),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
