package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
)

type pgBurnerProfileRepository struct {
	db *gorm.DB
}

func NewPGBurnerProfileRepository(db *gorm.DB) BurnerProfileRepository {
	return &pgBurnerProfileRepository{db: db}
}

func (r *pgBurnerProfileRepository) Create(ctx context.Context, profile *model.BurnerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *pgBurnerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BurnerProfile, error) {
	var profile model.BurnerProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *pgBurnerProfileRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.BurnerProfile, error) {
	var profiles []model.BurnerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *pgBurnerProfileRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.BurnerProfile{}).
		Where("id = ?", id).
		UpdateColumn("is_active", false).
		Error
}

func (r *pgBurnerProfileRepository) AddPostCount(ctx context.Context, id uuid.UUID, delta int, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.BurnerProfile{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"post_count":   gorm.Expr("post_count + ?", delta),
			"last_post_at": at,
		}).
		Error
}
