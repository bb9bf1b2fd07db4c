package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BurnerProfile is a pseudonymous persona a user posts under. Profiles are
// deactivated rather than deleted so existing posts keep a valid owner.
// UserID never serializes: the profile-to-account link is exactly what the
// guessing game protects, and profiles are embedded in public feed items.
type BurnerProfile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Codename    string         `gorm:"type:varchar(64);not null" json:"codename"`
	Personality string         `gorm:"type:text;not null" json:"personality"`
	Avatar      string         `gorm:"type:varchar(512);not null" json:"avatar"`
	Background  string         `gorm:"type:text;not null" json:"background"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	IsAI        bool           `gorm:"not null;default:false" json:"is_ai"`
	IsArchive   bool           `gorm:"not null;default:false" json:"is_archive"`
	PostCount   int            `gorm:"not null;default:0" json:"post_count"`
	LastPostAt  *time.Time     `json:"last_post_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (BurnerProfile) TableName() string { return "burner_profiles" }
