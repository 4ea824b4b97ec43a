package auth

import (
	"context"

	"google.golang.org/api/idtoken"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

// GoogleVerifier checks Google-issued ID tokens against our OAuth client id.
type GoogleVerifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, validate: idtoken.Validate}
}

var _ ports.GoogleVerifier = (*GoogleVerifier)(nil)

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (domain.GoogleIdentity, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return domain.GoogleIdentity{}, err
	}
	return identityFromClaims(payload.Claims), nil
}

func identityFromClaims(claims map[string]interface{}) domain.GoogleIdentity {
	var identity domain.GoogleIdentity
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity
}
