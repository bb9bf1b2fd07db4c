package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
	"shadownet/burnerhub/pkg/crypto"
	jwtpkg "shadownet/burnerhub/pkg/jwt"
)

// TokenSet represents a set of tokens returned after authentication.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthService interface {
	// Register creates a user. A valid unused invite code grants elevated
	// post access and is consumed; a missing or used one fails the whole
	// registration.
	Register(ctx context.Context, username, password, inviteCode string) (*model.User, *TokenSet, error)
	Login(ctx context.Context, username, password string) (*model.User, *TokenSet, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenSet, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	// UpgradeAccess grants post access to an existing user by consuming an
	// invite code.
	UpgradeAccess(ctx context.Context, userID uuid.UUID, inviteCode string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	inviteRepo repository.InviteCodeRepository
	tokenStore repository.RefreshTokenStore
	jwtManager *jwtpkg.Manager
}

func NewAuthService(
	userRepo repository.UserRepository,
	inviteRepo repository.InviteCodeRepository,
	tokenStore repository.RefreshTokenStore,
	jwtManager *jwtpkg.Manager,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		inviteRepo: inviteRepo,
		tokenStore: tokenStore,
		jwtManager: jwtManager,
	}
}

func (s *authService) Register(ctx context.Context, username, password, inviteCode string) (*model.User, *TokenSet, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("lookup username: %w", err)
	}

	hasPostAccess := false
	if inviteCode != "" {
		code, err := s.inviteRepo.GetByCode(ctx, inviteCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInviteCodeInvalid
		}
		if err != nil {
			return nil, nil, fmt.Errorf("lookup invite code: %w", err)
		}
		if code.IsUsed() {
			return nil, nil, ErrInviteCodeInvalid
		}
		hasPostAccess = true
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:      username,
		PasswordHash:  hash,
		HasPostAccess: hasPostAccess,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	if inviteCode != "" {
		// The conditional update loses to a concurrent redemption, in which
		// case the user keeps the access already granted above but the code
		// stays single-use for everyone else.
		if err := s.inviteRepo.MarkUsed(ctx, inviteCode, user.ID); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("consume invite code: %w", err)
		}
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, *TokenSet, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, fmt.Errorf("lookup username: %w", err)
	}

	if !crypto.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*TokenSet, error) {
	claims, err := s.jwtManager.Validate(refreshToken)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return nil, ErrRefreshTokenInvalid
	}

	ownerID, err := s.tokenStore.UserID(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check refresh token: %w", err)
	}
	if ownerID == uuid.Nil || ownerID.String() != claims.Subject {
		return nil, ErrRefreshTokenInvalid
	}

	// Rotate: the old token is dead as soon as a new pair is minted.
	if err := s.tokenStore.Revoke(ctx, claims.ID); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}
	return s.issueTokens(ctx, ownerID)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.Validate(refreshToken)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return ErrRefreshTokenInvalid
	}
	return s.tokenStore.Revoke(ctx, claims.ID)
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *authService) UpgradeAccess(ctx context.Context, userID uuid.UUID, inviteCode string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	code, err := s.inviteRepo.GetByCode(ctx, inviteCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInviteCodeInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("lookup invite code: %w", err)
	}
	if code.IsUsed() {
		return nil, ErrInviteCodeInvalid
	}

	if err := s.inviteRepo.MarkUsed(ctx, inviteCode, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteCodeInvalid
		}
		return nil, fmt.Errorf("consume invite code: %w", err)
	}

	user.HasPostAccess = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *authService) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenSet, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, claims, err := s.jwtManager.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.Save(ctx, claims.ID, userID, s.jwtManager.RefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return &TokenSet{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

var _ AuthService = (*authService)(nil)
