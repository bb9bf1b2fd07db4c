package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore tracks live refresh-token IDs (JTIs) so logout and
// rotation can revoke them before they expire.
// Implementations: Redis (production) or in-memory (local dev / tests).
type RefreshTokenStore interface {
	Save(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error
	// UserID returns the owner of a live JTI, or uuid.Nil when the token is
	// unknown, revoked, or expired.
	UserID(ctx context.Context, jti string) (uuid.UUID, error)
	Revoke(ctx context.Context, jti string) error
}
