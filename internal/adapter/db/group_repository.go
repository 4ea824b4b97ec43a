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
	groupColumns = `id, user_id, name, color, created_at, updated_at`

	getGroupQuery    = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1 AND user_id = $2`
	listGroupsQuery  = `SELECT ` + groupColumns + ` FROM groups WHERE user_id = $1 ORDER BY name`
	insertGroupQuery = `
INSERT INTO groups (id, user_id, name, color)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`
	updateGroupQuery = `
UPDATE groups SET name = $3, color = $4, updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`
	deleteGroupQuery = `DELETE FROM groups WHERE id = $1 AND user_id = $2`
)

type GroupRepository struct {
	db *sqlx.DB
}

type groupRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.GroupRepository = (*GroupRepository)(nil)

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Get(ctx context.Context, id, userID uuid.UUID) (domain.Group, error) {
	var row groupRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getGroupQuery, id, userID); err != nil {
		return domain.Group{}, mapError(err, domain.ErrGroupNotFound)
	}
	return mapGroupRowToDomain(row), nil
}

func (r *GroupRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	var rows []groupRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, listGroupsQuery, userID); err != nil {
		return nil, err
	}
	groups := make([]domain.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, mapGroupRowToDomain(row))
	}
	return groups, nil
}

func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) error {
	newID(&group.ID)
	var stamps timestamps
	err := conn(ctx, r.db).GetContext(ctx, &stamps, insertGroupQuery, group.ID, group.UserID, group.Name, group.Color)
	if err != nil {
		return mapError(err, nil)
	}
	group.CreatedAt, group.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *GroupRepository) Update(ctx context.Context, group *domain.Group) error {
	err := conn(ctx, r.db).GetContext(ctx, &group.UpdatedAt, updateGroupQuery, group.ID, group.UserID, group.Name, group.Color)
	return mapError(err, domain.ErrGroupNotFound)
}

func (r *GroupRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteGroupQuery, id, userID)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(res, domain.ErrGroupNotFound)
}

func mapGroupRowToDomain(row groupRow) domain.Group {
	return domain.Group{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
