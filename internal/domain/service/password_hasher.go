// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't belong to a single entity.
package service

// PasswordHasher hashes and verifies login passwords. The underlying
// algorithm (bcrypt in production) stays out of the domain layer.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
