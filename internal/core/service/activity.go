package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

// recordActivity appends to the audit trail. Failures are logged and never
// surface to the caller.
func recordActivity(ctx context.Context, repo ports.ActivityRepository, log zerolog.Logger, a *domain.Activity) {
	if repo == nil {
		return
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	if err := repo.Insert(ctx, a); err != nil {
		log.Warn().Err(err).
			Int64("user_id", a.UserID).
			Str("type", string(a.Type)).
			Msg("failed to record activity")
	}
}
