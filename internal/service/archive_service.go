package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/archive"
	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
)

// ArchivePreview is a sample of an external account's history, shown to an
// admin before committing to an import.
type ArchivePreview struct {
	AccountID string            `json:"account_id"`
	Username  string            `json:"username"`
	Messages  []archive.Message `json:"messages"`
}

// IngestResult is the outcome of the one-shot resolve/create/import pipeline.
type IngestResult struct {
	BurnerProfile *model.BurnerProfile `json:"burner_profile"`
	ImportedCount int                  `json:"imported_count"`
}

type ArchiveService interface {
	// Preview resolves a handle and returns its first page of messages.
	Preview(ctx context.Context, username string) (*ArchivePreview, error)
	// CreateBurnerFromArchive makes a burner profile for an external handle
	// and records the import checkpoint. Repeated calls for the same handle
	// create independent profiles.
	CreateBurnerFromArchive(ctx context.Context, userID uuid.UUID, username string) (*model.BurnerProfile, error)
	// ImportMessages replays the external account's history as posts,
	// resuming from the checkpointed offset. Archived text is stored
	// verbatim: original and transformed content are identical.
	ImportMessages(ctx context.Context, burnerID uuid.UUID) (int, error)
	// Ingest runs the whole pipeline for a handle in one call. When the
	// import step fails it still returns the created profile and partial
	// count alongside the error, so the caller can resume.
	Ingest(ctx context.Context, userID uuid.UUID, username string) (*IngestResult, error)
}

type archiveService struct {
	client     archive.Client
	burnerRepo repository.BurnerProfileRepository
	postRepo   repository.PostRepository
	importRepo repository.ArchiveImportRepository
	pageSize   int
	logger     *zap.Logger
}

func NewArchiveService(
	client archive.Client,
	burnerRepo repository.BurnerProfileRepository,
	postRepo repository.PostRepository,
	importRepo repository.ArchiveImportRepository,
	pageSize int,
	logger *zap.Logger,
) ArchiveService {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &archiveService{
		client:     client,
		burnerRepo: burnerRepo,
		postRepo:   postRepo,
		importRepo: importRepo,
		pageSize:   pageSize,
		logger:     logger,
	}
}

func (s *archiveService) Preview(ctx context.Context, username string) (*ArchivePreview, error) {
	accountID, err := s.client.AccountID(ctx, username)
	if errors.Is(err, archive.ErrNotFound) {
		return nil, ErrArchiveAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve archive account: %w", err)
	}

	messages, err := s.client.MessagesPage(ctx, accountID, 0, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch archive preview: %w", err)
	}
	return &ArchivePreview{
		AccountID: accountID,
		Username:  strings.ToLower(username),
		Messages:  messages,
	}, nil
}

func (s *archiveService) CreateBurnerFromArchive(ctx context.Context, userID uuid.UUID, username string) (*model.BurnerProfile, error) {
	profileInfo, err := s.client.Profile(ctx, username)
	if errors.Is(err, archive.ErrNotFound) {
		return nil, ErrArchiveAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch archive profile: %w", err)
	}

	accountID := profileInfo.AccountID
	if accountID == "" {
		if accountID, err = s.client.AccountID(ctx, username); err != nil {
			if errors.Is(err, archive.ErrNotFound) {
				return nil, ErrArchiveAccountNotFound
			}
			return nil, fmt.Errorf("resolve archive account: %w", err)
		}
	}

	avatar := profileInfo.AvatarURL
	if avatar == "" {
		avatar = "default_avatar.png"
	}

	base := "ARCHIVE_" + strings.ToUpper(username)
	burner := &model.BurnerProfile{
		UserID:      userID,
		Codename:    base,
		Personality: fmt.Sprintf("Archive of %s's posts", username),
		Avatar:      avatar,
		Background:  "Imported from the community archive",
		IsActive:    true,
		IsArchive:   true,
	}

	// Codenames are globally unique, so re-importing a handle gets a
	// numbered codename. The profiles stay independent on purpose.
	for attempt := 2; ; attempt++ {
		err := s.burnerRepo.Create(ctx, burner)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create archive burner: %w", err)
		}
		if attempt > 10 {
			return nil, ErrCodenameTaken
		}
		burner.Codename = fmt.Sprintf("%s_%d", base, attempt)
	}

	imp := &model.ArchiveImport{
		BurnerID:  burner.ID,
		AccountID: accountID,
		Handle:    strings.ToLower(username),
		Status:    model.ArchiveImportRunning,
	}
	if err := s.importRepo.Create(ctx, imp); err != nil {
		return nil, fmt.Errorf("record archive import: %w", err)
	}
	return burner, nil
}

func (s *archiveService) ImportMessages(ctx context.Context, burnerID uuid.UUID) (int, error) {
	imp, err := s.importRepo.GetByBurnerID(ctx, burnerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrImportNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup archive import: %w", err)
	}

	imported := 0
	offset := imp.LastOffset

	for {
		page, err := s.client.MessagesPage(ctx, imp.AccountID, offset, s.pageSize)
		if err != nil {
			s.fail(ctx, imp, err)
			return imported, fmt.Errorf("fetch archive page at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}

		created := 0
		for _, msg := range page {
			text := strings.TrimSpace(msg.Text)
			if text == "" {
				continue
			}
			post := &model.Post{
				BurnerID:           burnerID,
				OriginalContent:    text,
				TransformedContent: text,
			}
			if err := s.postRepo.Create(ctx, post); err != nil {
				s.fail(ctx, imp, err)
				return imported, fmt.Errorf("persist archived post: %w", err)
			}
			created++
		}

		// Checkpoint per page: a failure in the next page resumes here
		// instead of replaying the whole history.
		offset += len(page)
		imported += created
		imp.LastOffset = offset
		imp.ImportedCount += created
		if err := s.importRepo.Update(ctx, imp); err != nil {
			return imported, fmt.Errorf("checkpoint archive import: %w", err)
		}

		s.logger.Info("imported archive page",
			zap.String("burner_id", burnerID.String()),
			zap.Int("offset", offset),
			zap.Int("created", created))
	}

	if imported > 0 {
		if err := s.burnerRepo.AddPostCount(ctx, burnerID, imported, time.Now()); err != nil {
			s.logger.Warn("failed to bump post counter after import",
				zap.String("burner_id", burnerID.String()), zap.Error(err))
		}
	}

	imp.Status = model.ArchiveImportDone
	imp.LastError = ""
	if err := s.importRepo.Update(ctx, imp); err != nil {
		return imported, fmt.Errorf("finalize archive import: %w", err)
	}
	return imported, nil
}

func (s *archiveService) Ingest(ctx context.Context, userID uuid.UUID, username string) (*IngestResult, error) {
	burner, err := s.CreateBurnerFromArchive(ctx, userID, username)
	if err != nil {
		return nil, err
	}
	count, err := s.ImportMessages(ctx, burner.ID)
	result := &IngestResult{BurnerProfile: burner, ImportedCount: count}
	if err != nil {
		// The burner and its checkpoint survive; retrying the import with
		// the returned id picks up where this attempt stopped.
		return result, err
	}
	return result, nil
}

func (s *archiveService) fail(ctx context.Context, imp *model.ArchiveImport, cause error) {
	imp.Status = model.ArchiveImportFailed
	imp.LastError = cause.Error()
	if err := s.importRepo.Update(ctx, imp); err != nil {
		s.logger.Error("failed to record archive import failure",
			zap.String("burner_id", imp.BurnerID.String()), zap.Error(err))
	}
}

var _ ArchiveService = (*archiveService)(nil)
