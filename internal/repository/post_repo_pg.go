package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
)

type pgPostRepository struct {
	db *gorm.DB
}

func NewPGPostRepository(db *gorm.DB) PostRepository {
	return &pgPostRepository{db: db}
}

func (r *pgPostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *pgPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("BurnerProfile").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *pgPostRepository) List(ctx context.Context, filter PostFilter) ([]model.Post, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Preload("BurnerProfile").
		Order("posts.created_at DESC")

	if filter.BurnerID != nil {
		q = q.Where("posts.burner_id = ?", *filter.BurnerID)
	}
	if filter.ShowAIOnly != nil {
		q = q.Joins("JOIN burner_profiles ON burner_profiles.id = posts.burner_id").
			Where("burner_profiles.is_ai = ?", *filter.ShowAIOnly)
	}

	var posts []model.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
