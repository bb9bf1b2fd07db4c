package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type AdminHandler struct {
	inviteService service.InviteService
	adminService  service.AdminService
}

func NewAdminHandler(inviteService service.InviteService, adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		inviteService: inviteService,
		adminService:  adminService,
	}
}

// CreateInviteCode mints a new single-use registration code.
func (h *AdminHandler) CreateInviteCode(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	code, err := h.inviteService.CreateInviteCode(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to create invite code")
		return
	}

	response.Created(c, code)
}

// ListInviteCodes returns all invite codes, newest first.
func (h *AdminHandler) ListInviteCodes(c *gin.Context) {
	codes, err := h.inviteService.ListInviteCodes(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list invite codes")
		return
	}

	response.Success(c, codes)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to collect stats")
		return
	}
	response.Success(c, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}
	response.Success(c, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalError(c, "failed to load user")
		}
		return
	}
	response.Success(c, user)
}

type SetRoleRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.adminService.SetAdminRole(c.Request.Context(), id, *req.IsAdmin)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalError(c, "failed to update role")
		}
		return
	}
	response.Success(c, user)
}
