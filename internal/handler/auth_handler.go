package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=32"`
	Password   string `json:"password" binding:"required,min=8"`
	InviteCode string `json:"invite_code"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpgradeRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

type sessionResponse struct {
	User   *model.User       `json:"user"`
	Tokens *service.TokenSet `json:"tokens"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrInviteCodeInvalid):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "registration failed")
		}
		return
	}

	response.Created(c, sessionResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
		} else {
			response.InternalError(c, "login failed")
		}
		return
	}

	response.Success(c, sessionResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalid) {
			response.Unauthorized(c, "invalid refresh token")
		} else {
			response.InternalError(c, "token refresh failed")
		}
		return
	}

	response.Success(c, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalid) {
			response.Unauthorized(c, "invalid refresh token")
		} else {
			response.InternalError(c, "logout failed")
		}
		return
	}

	response.Success(c, nil)
}

// CurrentUser returns the authenticated user, or null for anonymous callers.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Success(c, nil)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Success(c, nil)
		} else {
			response.InternalError(c, "failed to load user")
		}
		return
	}

	response.Success(c, user)
}

// Upgrade grants post access to an existing account via an invite code.
func (h *AuthHandler) Upgrade(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.UpgradeAccess(c.Request.Context(), userID, req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteCodeInvalid):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, "upgrade failed")
		}
		return
	}

	response.Success(c, user)
}
