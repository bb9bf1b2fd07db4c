package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword("correct horse battery", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("correct horse battery", "not-a-hash"))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("same input")
	require.NoError(t, err)
	b, err := HashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateInviteCode(t *testing.T) {
	code, err := GenerateInviteCode()
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(inviteCodeAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateInviteCodeCoversAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 500; i++ {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, c := range code {
			seen[c] = true
		}
	}
	for _, c := range inviteCodeAlphabet {
		assert.True(t, seen[c], "character %q never drawn", c)
	}
}
