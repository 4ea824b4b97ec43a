package jobs

import (
	"context"

	"github.com/Chikimuras/ezlife/internal/core/ports"
)

const TokenCleanupJob = "refresh-token-cleanup"

// TokenCleanup deletes expired or revoked refresh tokens.
func TokenCleanup(auth ports.AuthService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := auth.CleanupTokens(ctx)
		return err
	}
}
