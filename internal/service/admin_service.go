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

type AdminService interface {
	Stats(ctx context.Context) (*repository.AdminStats, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	SetAdminRole(ctx context.Context, id uuid.UUID, isAdmin bool) (*model.User, error)
}

type adminService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
}

func NewAdminService(userRepo repository.UserRepository, statsRepo repository.StatsRepository) AdminService {
	return &adminService{userRepo: userRepo, statsRepo: statsRepo}
}

func (s *adminService) Stats(ctx context.Context) (*repository.AdminStats, error) {
	return s.statsRepo.Collect(ctx)
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *adminService) SetAdminRole(ctx context.Context, id uuid.UUID, isAdmin bool) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return user, nil
}
