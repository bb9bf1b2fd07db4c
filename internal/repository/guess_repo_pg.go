package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
)

type pgIdentityGuessRepository struct {
	db *gorm.DB
}

func NewPGIdentityGuessRepository(db *gorm.DB) IdentityGuessRepository {
	return &pgIdentityGuessRepository{db: db}
}

func (r *pgIdentityGuessRepository) Create(ctx context.Context, guess *model.IdentityGuess) error {
	return r.db.WithContext(ctx).Create(guess).Error
}

func (r *pgIdentityGuessRepository) ListByPostID(ctx context.Context, postID uuid.UUID) ([]model.IdentityGuess, error) {
	var guesses []model.IdentityGuess
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&guesses).Error
	return guesses, err
}

func (r *pgIdentityGuessRepository) GetByGuesserAndPost(ctx context.Context, guesserID, postID uuid.UUID) (*model.IdentityGuess, error) {
	var guess model.IdentityGuess
	err := r.db.WithContext(ctx).
		Where("guesser_id = ? AND post_id = ?", guesserID, postID).
		First(&guess).Error
	if err != nil {
		return nil, err
	}
	return &guess, nil
}
