package service

// PasswordHasher abstracts the one-way hashing of account passwords.
// The mock backend is its only consumer; the client never sees a hash.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}

// TokenService issues and validates the bearer tokens the mock backend
// hands out at login and signup.
type TokenService interface {
	// GenerateToken creates a signed token carrying the user id.
	GenerateToken(userID string) (string, error)
	// ValidateToken verifies the token and returns the user id it
	// carries.
	ValidateToken(tokenString string) (string, error)
}
