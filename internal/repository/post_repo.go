package repository

import (
	"context"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
)

// PostFilter narrows the feed. ShowAIOnly nil means no AI filtering;
// true/false filter on the owning profile's is_ai flag.
type PostFilter struct {
	ShowAIOnly *bool
	BurnerID   *uuid.UUID
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context, filter PostFilter) ([]model.Post, error)
}
