package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
)

type GuessService interface {
	// Create records a guess naming guessedUsername as the real author of a
	// post. Correctness is computed once here; the returned model withholds
	// it from JSON so callers cannot probe identities by retrying.
	Create(ctx context.Context, guesserID, postID uuid.UUID, guessedUsername string) (*model.IdentityGuess, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.IdentityGuess, error)
}

type guessService struct {
	guessRepo  repository.IdentityGuessRepository
	postRepo   repository.PostRepository
	burnerRepo repository.BurnerProfileRepository
	userRepo   repository.UserRepository
}

func NewGuessService(
	guessRepo repository.IdentityGuessRepository,
	postRepo repository.PostRepository,
	burnerRepo repository.BurnerProfileRepository,
	userRepo repository.UserRepository,
) GuessService {
	return &guessService{
		guessRepo:  guessRepo,
		postRepo:   postRepo,
		burnerRepo: burnerRepo,
		userRepo:   userRepo,
	}
}

func (s *guessService) Create(ctx context.Context, guesserID, postID uuid.UUID, guessedUsername string) (*model.IdentityGuess, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup post: %w", err)
	}

	guessed, err := s.userRepo.GetByUsername(ctx, guessedUsername)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup guessed user: %w", err)
	}

	ownerID := post.BurnerProfile.UserID
	if ownerID == uuid.Nil {
		burner, err := s.burnerRepo.GetByID(ctx, post.BurnerID)
		if err != nil {
			return nil, fmt.Errorf("lookup post owner: %w", err)
		}
		ownerID = burner.UserID
	}

	guess := &model.IdentityGuess{
		GuesserID:     guesserID,
		PostID:        postID,
		GuessedUserID: guessed.ID,
		IsCorrect:     ownerID == guessed.ID,
	}
	if err := s.guessRepo.Create(ctx, guess); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateGuess
		}
		return nil, fmt.Errorf("create guess: %w", err)
	}
	return guess, nil
}

func (s *guessService) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.IdentityGuess, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("lookup post: %w", err)
	}
	return s.guessRepo.ListByPostID(ctx, postID)
}

var _ GuessService = (*guessService)(nil)
