package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const refreshTokenBytes = 64

type AuthConfig struct {
	RefreshTokenTTL time.Duration
}

type AuthService struct {
	users  ports.UserRepository
	tokens ports.RefreshTokenRepository
	google ports.GoogleVerifier
	access ports.AccessTokenManager
	clock  ports.Clock
	cfg    AuthConfig
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
	google ports.GoogleVerifier,
	access ports.AccessTokenManager,
	clock ports.Clock,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, google: google, access: access, clock: clock, cfg: cfg}
}

var _ ports.AuthService = (*AuthService)(nil)

// LoginWithGoogle verifies a Google ID token, creates the user on first
// login and opens a new session.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (domain.AuthSession, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		zap.L().Warn("google token rejected", zap.Error(err))
		return domain.AuthSession{}, domain.ErrInvalidCredentials
	}
	if identity.Email == "" {
		return domain.AuthSession{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user = domain.User{Email: identity.Email, IsActive: true}
		if identity.Name != "" {
			name := identity.Name
			user.FullName = &name
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return domain.AuthSession{}, fmt.Errorf("create user: %w", err)
		}
		zap.L().Info("user created", zap.String("user_id", user.ID.String()))
	case err != nil:
		return domain.AuthSession{}, err
	}
	if !user.IsActive {
		return domain.AuthSession{}, domain.ErrInactiveUser
	}

	now := s.clock.Now()
	session, err := s.issueAccess(user, now)
	if err != nil {
		return domain.AuthSession{}, err
	}

	raw, err := newRefreshToken()
	if err != nil {
		return domain.AuthSession{}, err
	}
	stored := domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, &stored); err != nil {
		return domain.AuthSession{}, fmt.Errorf("store refresh token: %w", err)
	}
	session.RefreshToken = raw
	session.RefreshExpiresAt = stored.ExpiresAt

	zap.L().Info("login succeeded", zap.String("user_id", user.ID.String()))
	return session, nil
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token itself is left untouched.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.AuthSession, error) {
	if refreshToken == "" {
		return domain.AuthSession{}, domain.ErrInvalidToken
	}
	stored, err := s.tokens.GetByHash(ctx, HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthSession{}, domain.ErrInvalidToken
		}
		return domain.AuthSession{}, err
	}
	now := s.clock.Now()
	if !stored.Usable(now) {
		return domain.AuthSession{}, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return domain.AuthSession{}, err
	}
	if !user.IsActive {
		return domain.AuthSession{}, domain.ErrInactiveUser
	}
	return s.issueAccess(user, now)
}

func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	userID, err := s.access.Parse(accessToken)
	if err != nil {
		return domain.User{}, domain.ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidToken
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrInactiveUser
	}
	return user, nil
}

// Logout revokes one refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	stored, err := s.tokens.GetByHash(ctx, HashRefreshToken(refreshToken))
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.tokens.Revoke(ctx, stored.ID)
}

func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.tokens.RevokeAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	zap.L().Info("revoked all sessions", zap.String("user_id", userID.String()), zap.Int64("count", n))
	return n, nil
}

func (s *AuthService) Sessions(ctx context.Context, userID uuid.UUID) ([]domain.RefreshToken, error) {
	return s.tokens.ListActiveByUser(ctx, userID, s.clock.Now())
}

// CleanupTokens deletes refresh tokens that are expired or revoked.
func (s *AuthService) CleanupTokens(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteExpiredOrRevoked(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	zap.L().Info("refresh tokens cleaned up", zap.Int64("deleted", n))
	return n, nil
}

func (s *AuthService) issueAccess(user domain.User, now time.Time) (domain.AuthSession, error) {
	token, expiresAt, err := s.access.Issue(user.ID, now)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("issue access token: %w", err)
	}
	return domain.AuthSession{User: user, AccessToken: token, AccessExpiresAt: expiresAt}, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashRefreshToken is the form refresh tokens are stored and looked up in.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
