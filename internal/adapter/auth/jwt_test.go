package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager, err := NewJWTManager("secret", 15*time.Minute)
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := manager.Issue(userID, time.Now())
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	got, err := manager.Parse(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager, err := NewJWTManager("secret", time.Minute)
	require.NoError(t, err)

	token, _, err := manager.Issue(uuid.New(), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTManager("one", time.Minute)
	require.NoError(t, err)
	verifier, err := NewJWTManager("two", time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Minute)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestGoogleVerifier_ExtractsIdentity(t *testing.T) {
	v := &GoogleVerifier{
		clientID: "client",
		validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			require.Equal(t, "id-token", token)
			require.Equal(t, "client", audience)
			return &idtoken.Payload{Claims: map[string]interface{}{"email": "ada@example.com", "name": "Ada"}}, nil
		},
	}

	got, err := v.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", got.Email)
	require.Equal(t, "Ada", got.Name)
}

func TestGoogleVerifier_PropagatesValidationError(t *testing.T) {
	v := &GoogleVerifier{
		clientID: "client",
		validate: func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("bad audience")
		},
	}

	_, err := v.Verify(context.Background(), "id-token")
	require.Error(t, err)
}
