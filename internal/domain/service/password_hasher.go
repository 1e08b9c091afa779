// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. The salt is explicit so that stored credentials can be
// re-verified: hashing the same password with the same salt must always
// yield the same hash, and no operation recovers the plaintext.
type PasswordHasher interface {
	// RandomSalt generates a fresh, high-entropy salt. Two calls must not
	// collide in any realistic run.
	RandomSalt() (string, error)

	// Hash derives an opaque hash from a plaintext password and a salt.
	// Deterministic for identical inputs.
	Hash(password, salt string) string

	// Verify recomputes the hash with the stored salt and compares it with
	// the expected hash. Plaintext passwords are never compared directly.
	Verify(password, salt, expectedHash string) bool
}
