package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Invite codes use an unambiguous alphabet: no 0/O or 1/I so codes survive
// being read out loud or written down.
const inviteCodeAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const inviteCodeLength = 8

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// bcrypt's comparison is constant-time.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateInviteCode produces a random 8-character registration code. Bytes
// at or above the largest multiple of the alphabet size are rejected so every
// character is equally likely.
func GenerateInviteCode() (string, error) {
	const limit = 256 - 256%len(inviteCodeAlphabet)
	code := make([]byte, 0, inviteCodeLength)
	buf := make([]byte, 2*inviteCodeLength)
	for len(code) < inviteCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)])
			if len(code) == inviteCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
