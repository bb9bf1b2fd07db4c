package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
)

type BurnerProfileRepository interface {
	Create(ctx context.Context, profile *model.BurnerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BurnerProfile, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.BurnerProfile, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	// AddPostCount bumps post_count by delta and refreshes last_post_at in
	// one statement.
	AddPostCount(ctx context.Context, id uuid.UUID, delta int, at time.Time) error
}
