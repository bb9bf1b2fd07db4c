package repository

import (
	"context"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
)

type IdentityGuessRepository interface {
	Create(ctx context.Context, guess *model.IdentityGuess) error
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]model.IdentityGuess, error)
	GetByGuesserAndPost(ctx context.Context, guesserID, postID uuid.UUID) (*model.IdentityGuess, error)
}
