// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// CheckDummy burns the same amount of work as a real Check against a
	// fixed throwaway hash and always reports false. Callers use it on the
	// failure paths where no stored hash is available, so a login attempt
	// against a missing account costs the same as one against a real account.
	CheckDummy(password string)

	// ValidHash reports whether the stored value looks like a hash this
	// hasher can verify. A malformed stored hash must never verify.
	ValidHash(hash string) bool
}
