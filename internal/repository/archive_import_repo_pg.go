package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
)

type pgArchiveImportRepository struct {
	db *gorm.DB
}

func NewPGArchiveImportRepository(db *gorm.DB) ArchiveImportRepository {
	return &pgArchiveImportRepository{db: db}
}

func (r *pgArchiveImportRepository) Create(ctx context.Context, imp *model.ArchiveImport) error {
	return r.db.WithContext(ctx).Create(imp).Error
}

func (r *pgArchiveImportRepository) GetByBurnerID(ctx context.Context, burnerID uuid.UUID) (*model.ArchiveImport, error) {
	var imp model.ArchiveImport
	if err := r.db.WithContext(ctx).First(&imp, "burner_id = ?", burnerID).Error; err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *pgArchiveImportRepository) Update(ctx context.Context, imp *model.ArchiveImport) error {
	return r.db.WithContext(ctx).Save(imp).Error
}
