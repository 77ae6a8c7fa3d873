// Package service defines interfaces for stateless domain logic that does not
// belong to a single entity, such as hashing, token issuance, and delivery.
package service

// PasswordHasher abstracts the password hashing algorithm (bcrypt in the
// current implementation) so the use cases stay free of crypto details.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
