package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteCode is a single-use registration token. It transitions exactly once
// from unused (UsedByID nil) to used and is never reissued.
type InviteCode struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code        string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	CreatedByID uuid.UUID      `gorm:"type:uuid;not null" json:"created_by_id"`
	UsedByID    *uuid.UUID     `gorm:"type:uuid" json:"used_by_id,omitempty"`
	UsedAt      *time.Time     `json:"used_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *InviteCode) IsUsed() bool { return c.UsedByID != nil }

func (InviteCode) TableName() string { return "invite_codes" }
