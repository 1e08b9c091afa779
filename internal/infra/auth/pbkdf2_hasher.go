// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"pulse/config"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Defaults applied when the auth section is absent from config.
// The iteration count follows the current OWASP figure for PBKDF2-SHA256.
const (
	defaultIterations = 210000
	defaultKeyLength  = 32
	defaultSaltLength = 16
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA256 with an explicit per-user salt. The salt travels with
// the stored credential, so the same password re-hashed with the stored salt
// reproduces the stored hash exactly.
type pbkdf2Hasher struct {
	iterations int
	keyLength  int
	saltLength int
}

// NewPbkdf2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPbkdf2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &pbkdf2Hasher{
		iterations: defaultIterations,
		keyLength:  defaultKeyLength,
		saltLength: defaultSaltLength,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Pbkdf2Iterations > 0 {
			hasher.iterations = cfg.Auth.Pbkdf2Iterations
		}
		if cfg.Auth.Pbkdf2KeyLength > 0 {
			hasher.keyLength = cfg.Auth.Pbkdf2KeyLength
		}
		if cfg.Auth.SaltLength > 0 {
			hasher.saltLength = cfg.Auth.SaltLength
		}
	}

	return hasher
}

// RandomSalt generates a fresh hex-encoded salt from crypto/rand.
func (h *pbkdf2Hasher) RandomSalt() (string, error) {
	raw := make([]byte, h.saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate random salt")
	}

	return hex.EncodeToString(raw), nil
}

// Hash derives a hex-encoded PBKDF2-SHA256 key from the password and salt.
func (h *pbkdf2Hasher) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, h.keyLength, sha256.New)

	return hex.EncodeToString(key)
}

// Verify recomputes the hash with the stored salt and compares it to the
// expected hash in constant time.
func (h *pbkdf2Hasher) Verify(password, salt, expectedHash string) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
