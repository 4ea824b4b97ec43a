package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

type cleanupMock struct {
	mock.Mock
}

func (m *cleanupMock) LoginWithGoogle(context.Context, string) (domain.AuthSession, error) {
	panic("not used")
}

func (m *cleanupMock) Refresh(context.Context, string) (domain.AuthSession, error) {
	panic("not used")
}

func (m *cleanupMock) Authenticate(context.Context, string) (domain.User, error) {
	panic("not used")
}

func (m *cleanupMock) Logout(context.Context, string) error { panic("not used") }

func (m *cleanupMock) LogoutAll(context.Context, uuid.UUID) (int64, error) { panic("not used") }

func (m *cleanupMock) Sessions(context.Context, uuid.UUID) ([]domain.RefreshToken, error) {
	panic("not used")
}

func (m *cleanupMock) CleanupTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestTokenCleanup_CallsService(t *testing.T) {
	auth := new(cleanupMock)
	auth.On("CleanupTokens", mock.Anything).Return(int64(3), nil).Once()

	require.NoError(t, TokenCleanup(auth)(context.Background()))
	auth.AssertExpectations(t)
}

func TestTokenCleanup_PropagatesError(t *testing.T) {
	auth := new(cleanupMock)
	auth.On("CleanupTokens", mock.Anything).Return(int64(0), errors.New("db down")).Once()

	require.Error(t, TokenCleanup(auth)(context.Background()))
}

func TestScheduler_Schedule(t *testing.T) {
	s := NewScheduler(nil)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Schedule("disabled", "", noop))
	require.Equal(t, 0, s.Len())

	require.NoError(t, s.Schedule("nightly", "0 3 * * *", noop))
	require.Equal(t, 1, s.Len())

	require.Error(t, s.Schedule("broken", "every night", noop))

	s.Start()
	s.Stop()
}
