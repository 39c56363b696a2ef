// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// Hash is salted per call: hashing the same plaintext twice yields two
// different artifacts. Check recomputes using the salt embedded in the stored
// artifact and compares in constant time. Both are pure, CPU-bound and safe
// for unlimited concurrent use.
type PasswordHasher interface {
	// Hash generates a salted hash artifact from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash artifact.
	// A mismatch is a normal false result, never an error.
	Check(password, hash string) bool
}
