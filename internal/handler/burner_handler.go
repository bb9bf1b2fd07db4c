package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type BurnerHandler struct {
	burnerService service.BurnerService
}

func NewBurnerHandler(burnerService service.BurnerService) *BurnerHandler {
	return &BurnerHandler{burnerService: burnerService}
}

type CreateBurnerRequest struct {
	Codename    string `json:"codename" binding:"required,min=2,max=64"`
	Personality string `json:"personality" binding:"required"`
	Avatar      string `json:"avatar" binding:"required"`
	Background  string `json:"background" binding:"required"`
}

func (h *BurnerHandler) List(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	profiles, err := h.burnerService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to list burner profiles")
		return
	}
	response.Success(c, profiles)
}

func (h *BurnerHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreateBurnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	profile, err := h.burnerService.Create(c.Request.Context(), userID, service.CreateBurnerInput{
		Codename:    req.Codename,
		Personality: req.Personality,
		Avatar:      req.Avatar,
		Background:  req.Background,
	})
	if err != nil {
		if errors.Is(err, service.ErrCodenameTaken) {
			response.Conflict(c, err.Error())
		} else {
			response.InternalError(c, "failed to create burner profile")
		}
		return
	}

	response.Created(c, profile)
}

func (h *BurnerHandler) Deactivate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	burnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid burner profile id")
		return
	}

	if err := h.burnerService.Deactivate(c.Request.Context(), userID, burnerID); err != nil {
		switch {
		case errors.Is(err, service.ErrBurnerNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrBurnerNotOwned):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c, "failed to deactivate burner profile")
		}
		return
	}

	response.Success(c, nil)
}
