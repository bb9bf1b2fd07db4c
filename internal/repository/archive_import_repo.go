package repository

import (
	"context"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
)

type ArchiveImportRepository interface {
	Create(ctx context.Context, imp *model.ArchiveImport) error
	GetByBurnerID(ctx context.Context, burnerID uuid.UUID) (*model.ArchiveImport, error)
	Update(ctx context.Context, imp *model.ArchiveImport) error
}
