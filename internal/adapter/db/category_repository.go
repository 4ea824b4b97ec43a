package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const (
	categoryColumns = `id, user_id, group_id, name, priority, min_weekly_hours, target_weekly_hours,
  max_weekly_hours, unit, mandatory, created_at, updated_at`

	getCategoryQuery    = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND user_id = $2`
	listCategoriesQuery = `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY priority, name`
	insertCategoryQuery = `
INSERT INTO categories (id, user_id, group_id, name, priority, min_weekly_hours, target_weekly_hours,
  max_weekly_hours, unit, mandatory)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING created_at, updated_at`
	updateCategoryQuery = `
UPDATE categories SET group_id = $3, name = $4, priority = $5, min_weekly_hours = $6,
  target_weekly_hours = $7, max_weekly_hours = $8, unit = $9, mandatory = $10, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
)

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	GroupID           uuid.UUID `db:"group_id"`
	Name              string    `db:"name"`
	Priority          int       `db:"priority"`
	MinWeeklyHours    float64   `db:"min_weekly_hours"`
	TargetWeeklyHours float64   `db:"target_weekly_hours"`
	MaxWeeklyHours    float64   `db:"max_weekly_hours"`
	Unit              string    `db:"unit"`
	Mandatory         bool      `db:"mandatory"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Get(ctx context.Context, id, userID uuid.UUID) (domain.Category, error) {
	var row categoryRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getCategoryQuery, id, userID); err != nil {
		return domain.Category{}, mapError(err, domain.ErrCategoryNotFound)
	}
	return mapCategoryRowToDomain(row), nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	var rows []categoryRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, listCategoriesQuery, userID); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomain(row))
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	newID(&c.ID)
	var stamps timestamps
	err := conn(ctx, r.db).GetContext(ctx, &stamps, insertCategoryQuery,
		c.ID, c.UserID, c.GroupID, c.Name, c.Priority,
		c.MinWeeklyHours, c.TargetWeeklyHours, c.MaxWeeklyHours, string(c.Unit), c.Mandatory,
	)
	if err != nil {
		return mapError(err, nil)
	}
	c.CreatedAt, c.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	err := conn(ctx, r.db).GetContext(ctx, &c.UpdatedAt, updateCategoryQuery,
		c.ID, c.UserID, c.GroupID, c.Name, c.Priority,
		c.MinWeeklyHours, c.TargetWeeklyHours, c.MaxWeeklyHours, string(c.Unit), c.Mandatory,
	)
	return mapError(err, domain.ErrCategoryNotFound)
}

// Delete reports domain.ErrDependencyViolation while activities reference the category.
func (r *CategoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteCategoryQuery, id, userID)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(res, domain.ErrCategoryNotFound)
}

func mapCategoryRowToDomain(row categoryRow) domain.Category {
	return domain.Category{
		ID:                row.ID,
		UserID:            row.UserID,
		GroupID:           row.GroupID,
		Name:              row.Name,
		Priority:          row.Priority,
		MinWeeklyHours:    row.MinWeeklyHours,
		TargetWeeklyHours: row.TargetWeeklyHours,
		MaxWeeklyHours:    row.MaxWeeklyHours,
		Unit:              domain.CategoryUnit(row.Unit),
		Mandatory:         row.Mandatory,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
