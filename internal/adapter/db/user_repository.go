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
	userColumns = `id, email, full_name, is_active, is_superuser, created_at, updated_at`

	getUserByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	insertUserQuery     = `
INSERT INTO users (id, email, full_name, is_active, is_superuser)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`
	updateUserQuery = `
UPDATE users SET email = $2, full_name = $3, is_active = $4, is_superuser = $5, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID          uuid.UUID      `db:"id"`
	Email       string         `db:"email"`
	FullName    sql.NullString `db:"full_name"`
	IsActive    bool           `db:"is_active"`
	IsSuperuser bool           `db:"is_superuser"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getOne(ctx, getUserByIDQuery, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, getUserByEmailQuery, email)
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	newID(&u.ID)
	var stamps timestamps
	err := conn(ctx, r.db).GetContext(ctx, &stamps, insertUserQuery,
		u.ID, u.Email, nullString(u.FullName), u.IsActive, u.IsSuperuser,
	)
	if err != nil {
		return mapError(err, nil)
	}
	u.CreatedAt, u.UpdatedAt = stamps.CreatedAt, stamps.UpdatedAt
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	err := conn(ctx, r.db).GetContext(ctx, &u.UpdatedAt, updateUserQuery,
		u.ID, u.Email, nullString(u.FullName), u.IsActive, u.IsSuperuser,
	)
	return mapError(err, domain.ErrUserNotFound)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (domain.User, error) {
	var row userRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, arg); err != nil {
		return domain.User{}, mapError(err, domain.ErrUserNotFound)
	}
	return domain.User{
		ID:          row.ID,
		Email:       row.Email,
		FullName:    stringPtr(row.FullName),
		IsActive:    row.IsActive,
		IsSuperuser: row.IsSuperuser,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
