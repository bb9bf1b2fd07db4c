package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityGuess records one user's attempt to name the real account behind a
// post. IsCorrect is computed once at creation and never leaves the server:
// exposing it would let a guesser use repeated guesses as an identity oracle.
// GuessedUserID stays server-side too, so guess records never hand out a
// username-to-id mapping.
type IdentityGuess struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GuesserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_guesses_guesser_post,unique" json:"guesser_id"`
	PostID        uuid.UUID `gorm:"type:uuid;not null;index:idx_guesses_guesser_post,unique" json:"post_id"`
	GuessedUserID uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	IsCorrect     bool      `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

func (IdentityGuess) TableName() string { return "identity_guesses" }
