package auth

import (
	"encoding/hex"
	"testing"

	"pulse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests use a low iteration count so the suite stays fast; the derivation
// path is identical either way.
func newTestHasher() *pbkdf2Hasher {
	return NewPbkdf2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Pbkdf2Iterations: 1000,
			Pbkdf2KeyLength:  32,
			SaltLength:       16,
		},
	}).(*pbkdf2Hasher)
}

func TestPbkdf2Hasher_Hash_Deterministic(t *testing.T) {
	hasher := newTestHasher()

	first := hasher.Hash("nikolić", "a1b2c3d4")
	second := hasher.Hash("nikolić", "a1b2c3d4")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	raw, err := hex.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestPbkdf2Hasher_Hash_SaltChangesHash(t *testing.T) {
	hasher := newTestHasher()

	withFirstSalt := hasher.Hash("secret", "salt-one")
	withSecondSalt := hasher.Hash("secret", "salt-two")

	assert.NotEqual(t, withFirstSalt, withSecondSalt)
}

func TestPbkdf2Hasher_RandomSalt_Unique(t *testing.T) {
	hasher := newTestHasher()

	seen := make(map[string]bool)
	for range 32 {
		salt, err := hasher.RandomSalt()
		require.NoError(t, err)

		raw, err := hex.DecodeString(salt)
		require.NoError(t, err)
		assert.Len(t, raw, 16)

		assert.False(t, seen[salt], "salt collision: %s", salt)
		seen[salt] = true
	}
}

func TestPbkdf2Hasher_Verify(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.RandomSalt()
	require.NoError(t, err)
	stored := hasher.Hash("correct horse", salt)

	assert.True(t, hasher.Verify("correct horse", salt, stored))
	assert.False(t, hasher.Verify("wrong horse", salt, stored))
	assert.False(t, hasher.Verify("correct horse", "other-salt", stored))
	assert.False(t, hasher.Verify("correct horse", salt, "deadbeef"))
}

func TestNewPbkdf2Hasher_Defaults(t *testing.T) {
	hasher := NewPbkdf2Hasher(&config.Config{}).(*pbkdf2Hasher)

	assert.Equal(t, defaultIterations, hasher.iterations)
	assert.Equal(t, defaultKeyLength, hasher.keyLength)
	assert.Equal(t, defaultSaltLength, hasher.saltLength)
}
