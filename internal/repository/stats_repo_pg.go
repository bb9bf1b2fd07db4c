package repository

import (
	"context"

	"gorm.io/gorm"

	"shadownet/burnerhub/internal/model"
)

type pgStatsRepository struct {
	db *gorm.DB
}

func NewPGStatsRepository(db *gorm.DB) StatsRepository {
	return &pgStatsRepository{db: db}
}

func (r *pgStatsRepository) Collect(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}
	db := r.db.WithContext(ctx)

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&model.User{})},
		{&stats.BurnerProfiles, db.Model(&model.BurnerProfile{})},
		{&stats.ActiveProfiles, db.Model(&model.BurnerProfile{}).Where("is_active = true")},
		{&stats.Posts, db.Model(&model.Post{})},
		{&stats.IdentityGuesses, db.Model(&model.IdentityGuess{})},
		{&stats.CorrectGuesses, db.Model(&model.IdentityGuess{}).Where("is_correct = true")},
		{&stats.InviteCodes, db.Model(&model.InviteCode{})},
		{&stats.UsedInviteCodes, db.Model(&model.InviteCode{}).Where("used_by_id IS NOT NULL")},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
