package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type GuessHandler struct {
	guessService service.GuessService
}

func NewGuessHandler(guessService service.GuessService) *GuessHandler {
	return &GuessHandler{guessService: guessService}
}

// CreateGuessRequest names a username, not a user id: players only ever see
// usernames, and the single contract keeps call sites consistent.
type CreateGuessRequest struct {
	PostID          uuid.UUID `json:"post_id" binding:"required"`
	GuessedUsername string    `json:"guessed_username" binding:"required"`
}

func (h *GuessHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreateGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	guess, err := h.guessService.Create(c.Request.Context(), userID, req.PostID, req.GuessedUsername)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrDuplicateGuess):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to record guess")
		}
		return
	}

	// IsCorrect is json:"-" on the model; the guesser learns nothing here.
	response.Created(c, guess)
}

func (h *GuessHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	guesses, err := h.guessService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalError(c, "failed to list guesses")
		}
		return
	}

	response.Success(c, guesses)
}
