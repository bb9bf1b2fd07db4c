package model

import (
	"time"

	"github.com/google/uuid"
)

// Post stores both the author-submitted text and the persona-voiced rewrite.
// Rows are immutable once created.
type Post struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BurnerID           uuid.UUID `gorm:"type:uuid;not null;index" json:"burner_id"`
	OriginalContent    string    `gorm:"type:text;not null" json:"original_content"`
	TransformedContent string    `gorm:"type:text;not null" json:"transformed_content"`
	CreatedAt          time.Time `gorm:"index" json:"created_at"`

	BurnerProfile BurnerProfile `gorm:"foreignKey:BurnerID" json:"burner_profile,omitempty"`
}

func (Post) TableName() string { return "posts" }
