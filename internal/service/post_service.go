package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
)

type PostService interface {
	// Create validates ownership, rewrites the text into the burner's voice
	// and persists both versions.
	Create(ctx context.Context, userID, burnerID uuid.UUID, originalContent string) (*model.Post, error)
	List(ctx context.Context, filter repository.PostFilter) ([]model.Post, error)
}

type postService struct {
	postRepo      repository.PostRepository
	burnerRepo    repository.BurnerProfileRepository
	userRepo      repository.UserRepository
	transformer   Transformer
	requireAccess bool
	logger        *zap.Logger
}

// NewPostService builds the posting flow. requireAccess gates posting behind
// the invite-granted has_post_access flag.
func NewPostService(
	postRepo repository.PostRepository,
	burnerRepo repository.BurnerProfileRepository,
	userRepo repository.UserRepository,
	transformer Transformer,
	requireAccess bool,
	logger *zap.Logger,
) PostService {
	return &postService{
		postRepo:      postRepo,
		burnerRepo:    burnerRepo,
		userRepo:      userRepo,
		transformer:   transformer,
		requireAccess: requireAccess,
		logger:        logger,
	}
}

func (s *postService) Create(ctx context.Context, userID, burnerID uuid.UUID, originalContent string) (*model.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if s.requireAccess && !user.HasPostAccess {
		return nil, ErrNoPostAccess
	}

	burner, err := s.burnerRepo.GetByID(ctx, burnerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBurnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup burner profile: %w", err)
	}
	if burner.UserID != userID {
		return nil, ErrBurnerNotOwned
	}
	if !burner.IsActive {
		return nil, ErrBurnerInactive
	}

	transformed := s.transformer.Transform(ctx, originalContent, burner)

	post := &model.Post{
		BurnerID:           burnerID,
		OriginalContent:    originalContent,
		TransformedContent: transformed,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// Counter bump is deliberately outside the insert; a lost update here
	// only skews the profile's display counter.
	if err := s.burnerRepo.AddPostCount(ctx, burnerID, 1, time.Now()); err != nil {
		s.logger.Warn("failed to bump post counter",
			zap.String("burner_id", burnerID.String()), zap.Error(err))
	}

	post.BurnerProfile = *burner
	return post, nil
}

func (s *postService) List(ctx context.Context, filter repository.PostFilter) ([]model.Post, error) {
	return s.postRepo.List(ctx, filter)
}

var _ PostService = (*postService)(nil)
