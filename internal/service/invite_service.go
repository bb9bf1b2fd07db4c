package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
	"shadownet/burnerhub/pkg/crypto"
)

type InviteService interface {
	CreateInviteCode(ctx context.Context, createdBy uuid.UUID) (*model.InviteCode, error)
	ListInviteCodes(ctx context.Context) ([]model.InviteCode, error)
}

type inviteService struct {
	inviteRepo repository.InviteCodeRepository
}

func NewInviteService(inviteRepo repository.InviteCodeRepository) InviteService {
	return &inviteService{inviteRepo: inviteRepo}
}

func (s *inviteService) CreateInviteCode(ctx context.Context, createdBy uuid.UUID) (*model.InviteCode, error) {
	code, err := crypto.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("generate invite code: %w", err)
	}

	inviteCode := &model.InviteCode{
		Code:        code,
		CreatedByID: createdBy,
	}
	if err := s.inviteRepo.Create(ctx, inviteCode); err != nil {
		return nil, fmt.Errorf("create invite code: %w", err)
	}
	return inviteCode, nil
}

func (s *inviteService) ListInviteCodes(ctx context.Context) ([]model.InviteCode, error) {
	return s.inviteRepo.List(ctx)
}
