package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Verify(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.NoError(t, VerifyPassword("correct-horse-battery", hash))
	assert.ErrorIs(t, VerifyPassword("wrong-horse-battery", hash), ErrPasswordMismatch)
}

func TestHashPassword_RandomSalt(t *testing.T) {
	first, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	second, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must produce different hashes")
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "wrong version", hash: "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad salt", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{name: "empty key", hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, VerifyPassword("password", tt.hash), ErrMalformedHash)
		})
	}
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)
}
