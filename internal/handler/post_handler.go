package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shadownet/burnerhub/internal/repository"
	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type CreatePostRequest struct {
	BurnerID        uuid.UUID `json:"burner_id" binding:"required"`
	OriginalContent string    `json:"original_content" binding:"required,max=4096"`
}

func (h *PostHandler) List(c *gin.Context) {
	filter := repository.PostFilter{}
	if raw, ok := c.GetQuery("showAIOnly"); ok {
		showAIOnly := raw == "true"
		filter.ShowAIOnly = &showAIOnly
	}

	posts, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "failed to list posts")
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, req.BurnerID, req.OriginalContent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBurnerNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrBurnerNotOwned),
			errors.Is(err, service.ErrNoPostAccess),
			errors.Is(err, service.ErrBurnerInactive):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c, "failed to create post")
		}
		return
	}

	response.Created(c, post)
}
