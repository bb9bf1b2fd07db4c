package repository

import "context"

// AdminStats is the aggregate read model behind the admin dashboard.
type AdminStats struct {
	Users           int64 `json:"users"`
	BurnerProfiles  int64 `json:"burner_profiles"`
	ActiveProfiles  int64 `json:"active_profiles"`
	Posts           int64 `json:"posts"`
	IdentityGuesses int64 `json:"identity_guesses"`
	CorrectGuesses  int64 `json:"correct_guesses"`
	InviteCodes     int64 `json:"invite_codes"`
	UsedInviteCodes int64 `json:"used_invite_codes"`
}

// StatsRepository isolates dashboard aggregation so the underlying store's
// SQL specifics stay out of the service layer.
type StatsRepository interface {
	Collect(ctx context.Context) (*AdminStats, error)
}
