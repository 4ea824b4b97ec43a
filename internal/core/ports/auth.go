package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (domain.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.RefreshToken, error)
	DeleteExpiredOrRevoked(ctx context.Context, now time.Time) (int64, error)
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (domain.GoogleIdentity, error)
}

type AccessTokenManager interface {
	Issue(userID uuid.UUID, now time.Time) (token string, expiresAt time.Time, err error)
	Parse(token string) (uuid.UUID, error)
}

type AuthService interface {
	LoginWithGoogle(ctx context.Context, idToken string) (domain.AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (domain.AuthSession, error)
	Authenticate(ctx context.Context, accessToken string) (domain.User, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error)
	Sessions(ctx context.Context, userID uuid.UUID) ([]domain.RefreshToken, error)
	CleanupTokens(ctx context.Context) (int64, error)
}
