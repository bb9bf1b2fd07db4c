package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&BurnerProfile{},
		&Post{},
		&IdentityGuess{},
		&InviteCode{},
		&ArchiveImport{},
	); err != nil {
		return err
	}

	// Case-insensitive unique username for non-soft-deleted users.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower " +
			"ON users ((lower(username))) WHERE deleted_at IS NULL",
	).Error; err != nil {
		return err
	}

	// Codenames are globally unique regardless of case; only enforced on
	// non-soft-deleted profiles so a retired codename can come back.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_burner_profiles_codename_lower " +
			"ON burner_profiles ((lower(codename))) WHERE deleted_at IS NULL",
	).Error
}
