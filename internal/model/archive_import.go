package model

import (
	"time"

	"github.com/google/uuid"
)

type ArchiveImportStatus string

const (
	ArchiveImportRunning ArchiveImportStatus = "running"
	ArchiveImportFailed  ArchiveImportStatus = "failed"
	ArchiveImportDone    ArchiveImportStatus = "done"
)

// ArchiveImport is the checkpoint record for one burner's archive import.
// LastOffset is the first offset that has NOT been durably imported, so a
// retry after a mid-import failure resumes there instead of restarting.
type ArchiveImport struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BurnerID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"burner_id"`
	AccountID     string              `gorm:"type:varchar(128);not null" json:"account_id"`
	Handle        string              `gorm:"type:varchar(64);not null" json:"handle"`
	LastOffset    int                 `gorm:"not null;default:0" json:"last_offset"`
	ImportedCount int                 `gorm:"not null;default:0" json:"imported_count"`
	Status        ArchiveImportStatus `gorm:"type:varchar(16);not null;default:'running'" json:"status"`
	LastError     string              `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (ArchiveImport) TableName() string { return "archive_imports" }
