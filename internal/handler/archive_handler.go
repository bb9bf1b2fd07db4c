package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shadownet/burnerhub/internal/service"
	"shadownet/burnerhub/pkg/response"
)

type ArchiveHandler struct {
	archiveService service.ArchiveService
}

func NewArchiveHandler(archiveService service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveService: archiveService}
}

// Preview resolves a handle and returns its first page of archived messages.
func (h *ArchiveHandler) Preview(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, "username required")
		return
	}

	preview, err := h.archiveService.Preview(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrArchiveAccountNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.BadGateway(c, "archive store unavailable: "+err.Error())
		}
		return
	}
	response.Success(c, preview)
}

type PreviewRequest struct {
	Username string `json:"username" binding:"required"`
}

// PreviewBody is the POST form of Preview.
func (h *ArchiveHandler) PreviewBody(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	preview, err := h.archiveService.Preview(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrArchiveAccountNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.BadGateway(c, "archive store unavailable: "+err.Error())
		}
		return
	}
	response.Success(c, preview)
}

type CreateArchiveBurnerRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Username string    `json:"username" binding:"required"`
}

func (h *ArchiveHandler) CreateBurner(c *gin.Context) {
	var req CreateArchiveBurnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	profile, err := h.archiveService.CreateBurnerFromArchive(c.Request.Context(), req.UserID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveAccountNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrCodenameTaken):
			response.Conflict(c, err.Error())
		default:
			response.BadGateway(c, "archive burner creation failed: "+err.Error())
		}
		return
	}
	response.Created(c, profile)
}

type ImportMessagesRequest struct {
	BurnerID uuid.UUID `json:"burner_id" binding:"required"`
}

func (h *ArchiveHandler) Import(c *gin.Context) {
	var req ImportMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	count, err := h.archiveService.ImportMessages(c.Request.Context(), req.BurnerID)
	if err != nil {
		if errors.Is(err, service.ErrImportNotFound) {
			response.NotFound(c, err.Error())
		} else {
			// Partial progress is checkpointed; the caller can retry and
			// resume from the recorded offset.
			response.BadGateway(c, "archive import failed: "+err.Error())
		}
		return
	}
	response.Success(c, gin.H{"imported_count": count})
}

type IngestRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Username string    `json:"username" binding:"required"`
}

// Ingest runs resolve, burner creation and import in one request.
func (h *ArchiveHandler) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.archiveService.Ingest(c.Request.Context(), req.UserID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveAccountNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrCodenameTaken):
			response.Conflict(c, err.Error())
		default:
			// The partial result names the burner to resume the import with.
			response.BadGatewayWithData(c, "archive ingest failed: "+err.Error(), result)
		}
		return
	}
	response.Created(c, result)
}
