package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username      string         `gorm:"type:varchar(64);not null" json:"username"`
	PasswordHash  string         `gorm:"type:varchar(256);not null" json:"-"`
	IsAdmin       bool           `gorm:"not null;default:false" json:"is_admin"`
	HasPostAccess bool           `gorm:"not null;default:false" json:"has_post_access"`
	LastLoginAt   *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	BurnerProfiles []BurnerProfile `gorm:"foreignKey:UserID" json:"burner_profiles,omitempty"`
}

func (User) TableName() string { return "users" }
