package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/adapter/auth"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type googleVerifierMock struct {
	mock.Mock
}

func (m *googleVerifierMock) Verify(ctx context.Context, idToken string) (domain.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(domain.GoogleIdentity), args.Error(1)
}

type memoryUsers struct {
	byID map[uuid.UUID]domain.User
}

func (r *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *memoryUsers) Create(_ context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *memoryUsers) Update(_ context.Context, u *domain.User) error {
	r.byID[u.ID] = *u
	return nil
}

type memoryRefreshTokens struct {
	items []domain.RefreshToken
}

func (r *memoryRefreshTokens) Create(_ context.Context, t *domain.RefreshToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.items = append(r.items, *t)
	return nil
}

func (r *memoryRefreshTokens) GetByHash(_ context.Context, hash string) (domain.RefreshToken, error) {
	for _, t := range r.items {
		if t.TokenHash == hash {
			return t, nil
		}
	}
	return domain.RefreshToken{}, domain.ErrRefreshTokenNotFound
}

func (r *memoryRefreshTokens) Revoke(_ context.Context, id uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Revoked = true
			return nil
		}
	}
	return domain.ErrRefreshTokenNotFound
}

func (r *memoryRefreshTokens) RevokeAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.items {
		if r.items[i].UserID == userID && !r.items[i].Revoked {
			r.items[i].Revoked = true
			n++
		}
	}
	return n, nil
}

func (r *memoryRefreshTokens) ListActiveByUser(_ context.Context, userID uuid.UUID, now time.Time) ([]domain.RefreshToken, error) {
	var out []domain.RefreshToken
	for _, t := range r.items {
		if t.UserID == userID && t.Usable(now) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryRefreshTokens) DeleteExpiredOrRevoked(_ context.Context, now time.Time) (int64, error) {
	var kept []domain.RefreshToken
	for _, t := range r.items {
		if t.Usable(now) {
			kept = append(kept, t)
		}
	}
	n := int64(len(r.items) - len(kept))
	r.items = kept
	return n, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *googleVerifierMock, *memoryUsers, *memoryRefreshTokens) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager("test-secret", 30*time.Minute)
	require.NoError(t, err)

	google := new(googleVerifierMock)
	users := &memoryUsers{byID: map[uuid.UUID]domain.User{}}
	tokens := &memoryRefreshTokens{}
	svc := NewAuthService(users, tokens, google, jwtManager, fixedClock{now: time.Now()}, AuthConfig{RefreshTokenTTL: 7 * 24 * time.Hour})
	return svc, google, users, tokens
}

func TestAuthService_LoginCreatesUserAndSession(t *testing.T) {
	svc, google, users, tokens := newAuthFixture(t)
	google.On("Verify", mock.Anything, "id-token").
		Return(domain.GoogleIdentity{Email: "ada@example.com", Name: "Ada"}, nil).Once()

	session, err := svc.LoginWithGoogle(context.Background(), "id-token")

	require.NoError(t, err)
	require.Len(t, users.byID, 1)
	require.Equal(t, "ada@example.com", session.User.Email)
	require.Equal(t, "Ada", *session.User.FullName)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.Len(t, tokens.items, 1)
	require.Equal(t, HashRefreshToken(session.RefreshToken), tokens.items[0].TokenHash)
	require.NotEqual(t, session.RefreshToken, tokens.items[0].TokenHash)

	user, err := svc.Authenticate(context.Background(), session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, user.ID)
	google.AssertExpectations(t)
}

func TestAuthService_LoginRejectsBadGoogleToken(t *testing.T) {
	svc, google, users, _ := newAuthFixture(t)
	google.On("Verify", mock.Anything, "forged").
		Return(domain.GoogleIdentity{}, errors.New("bad signature")).Once()

	_, err := svc.LoginWithGoogle(context.Background(), "forged")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Empty(t, users.byID)
}

func TestAuthService_LoginRejectsInactiveUser(t *testing.T) {
	svc, google, users, _ := newAuthFixture(t)
	id := uuid.New()
	users.byID[id] = domain.User{ID: id, Email: "gone@example.com", IsActive: false}
	google.On("Verify", mock.Anything, "id-token").
		Return(domain.GoogleIdentity{Email: "gone@example.com"}, nil).Once()

	_, err := svc.LoginWithGoogle(context.Background(), "id-token")

	require.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, google, _, _ := newAuthFixture(t)
	google.On("Verify", mock.Anything, "id-token").
		Return(domain.GoogleIdentity{Email: "ada@example.com"}, nil).Once()
	session, err := svc.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.Empty(t, refreshed.RefreshToken)

	require.NoError(t, svc.Logout(context.Background(), session.RefreshToken))

	_, err = svc.Refresh(context.Background(), session.RefreshToken)
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	require.NoError(t, svc.Logout(context.Background(), "never-issued"))
}

func TestAuthService_RefreshUnknownToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), "unknown")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_LogoutAllAndCleanup(t *testing.T) {
	svc, google, _, tokens := newAuthFixture(t)
	google.On("Verify", mock.Anything, "id-token").
		Return(domain.GoogleIdentity{Email: "ada@example.com"}, nil).Twice()

	first, err := svc.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)
	_, err = svc.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)

	sessions, err := svc.Sessions(context.Background(), first.User.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	n, err := svc.LogoutAll(context.Background(), first.User.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	deleted, err := svc.CleanupTokens(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
	require.Empty(t, tokens.items)
}

func TestAuthService_AuthenticateRejectsGarbage(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")

	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
