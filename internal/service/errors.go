package service

import "errors"

var (
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInviteCodeInvalid   = errors.New("invite code invalid or already used")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or revoked")
	ErrUserNotFound        = errors.New("user not found")

	ErrCodenameTaken  = errors.New("codename already taken")
	ErrBurnerNotFound = errors.New("burner profile not found")
	ErrBurnerNotOwned = errors.New("burner profile does not belong to this user")
	ErrBurnerInactive = errors.New("burner profile is deactivated")
	ErrNoPostAccess   = errors.New("posting requires elevated access")

	ErrPostNotFound   = errors.New("post not found")
	ErrDuplicateGuess = errors.New("identity already guessed for this post")

	ErrArchiveAccountNotFound = errors.New("archive account not found")
	ErrImportNotFound         = errors.New("no archive import recorded for this burner profile")
)
