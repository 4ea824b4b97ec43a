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
	refreshTokenColumns = `id, user_id, token_hash, expires_at, revoked, created_at`

	insertRefreshTokenQuery = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	getRefreshTokenByHashQuery = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`
	revokeRefreshTokenQuery    = `UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1`
	revokeUserTokensQuery      = `UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`
	listActiveTokensQuery      = `
SELECT ` + refreshTokenColumns + `
FROM refresh_tokens
WHERE user_id = $1 AND revoked = FALSE AND expires_at > $2
ORDER BY created_at DESC`
	deleteDeadTokensQuery = `DELETE FROM refresh_tokens WHERE revoked = TRUE OR expires_at <= $1`
)

type RefreshTokenRepository struct {
	db *sqlx.DB
}

type refreshTokenRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Revoked   bool      `db:"revoked"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.RefreshTokenRepository = (*RefreshTokenRepository)(nil)

func NewRefreshTokenRepository(db *sqlx.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	newID(&t.ID)
	err := conn(ctx, r.db).GetContext(ctx, &t.CreatedAt, insertRefreshTokenQuery,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.Revoked,
	)
	return mapError(err, nil)
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	var row refreshTokenRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getRefreshTokenByHashQuery, hash); err != nil {
		return domain.RefreshToken{}, mapError(err, domain.ErrRefreshTokenNotFound)
	}
	return mapRefreshTokenRowToDomain(row), nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, revokeRefreshTokenQuery, id)
	if err != nil {
		return err
	}
	return expectAffected(res, domain.ErrRefreshTokenNotFound)
}

func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(ctx, revokeUserTokensQuery, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *RefreshTokenRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.RefreshToken, error) {
	var rows []refreshTokenRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, listActiveTokensQuery, userID, now); err != nil {
		return nil, err
	}
	tokens := make([]domain.RefreshToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, mapRefreshTokenRowToDomain(row))
	}
	return tokens, nil
}

func (r *RefreshTokenRepository) DeleteExpiredOrRevoked(ctx context.Context, now time.Time) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(ctx, deleteDeadTokensQuery, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mapRefreshTokenRowToDomain(row refreshTokenRow) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		Revoked:   row.Revoked,
		CreatedAt: row.CreatedAt,
	}
}
