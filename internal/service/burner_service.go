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

type CreateBurnerInput struct {
	Codename    string
	Personality string
	Avatar      string
	Background  string
}

type BurnerService interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateBurnerInput) (*model.BurnerProfile, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BurnerProfile, error)
	// Deactivate soft-disables a profile; only the owner may do it.
	Deactivate(ctx context.Context, userID, burnerID uuid.UUID) error
}

type burnerService struct {
	burnerRepo repository.BurnerProfileRepository
}

func NewBurnerService(burnerRepo repository.BurnerProfileRepository) BurnerService {
	return &burnerService{burnerRepo: burnerRepo}
}

func (s *burnerService) Create(ctx context.Context, userID uuid.UUID, in CreateBurnerInput) (*model.BurnerProfile, error) {
	profile := &model.BurnerProfile{
		UserID:      userID,
		Codename:    in.Codename,
		Personality: in.Personality,
		Avatar:      in.Avatar,
		Background:  in.Background,
		IsActive:    true,
	}
	if err := s.burnerRepo.Create(ctx, profile); err != nil {
		// Case-insensitive uniqueness is enforced by the partial index, so a
		// concurrent duplicate surfaces here rather than via a pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodenameTaken
		}
		return nil, fmt.Errorf("create burner profile: %w", err)
	}
	return profile, nil
}

func (s *burnerService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BurnerProfile, error) {
	return s.burnerRepo.ListByUserID(ctx, userID)
}

func (s *burnerService) Deactivate(ctx context.Context, userID, burnerID uuid.UUID) error {
	profile, err := s.burnerRepo.GetByID(ctx, burnerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBurnerNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup burner profile: %w", err)
	}
	if profile.UserID != userID {
		return ErrBurnerNotOwned
	}
	return s.burnerRepo.Deactivate(ctx, burnerID)
}

var _ BurnerService = (*burnerService)(nil)
