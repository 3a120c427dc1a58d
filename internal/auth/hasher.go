package auth

import "golang.org/x/crypto/bcrypt" // Password hashing

// PasswordVerifier compares a submitted password with a stored hash
type PasswordVerifier interface {
	Verify(password, hash string) bool
}

// BcryptVerifier verifies bcrypt hashes ($2a$, $2b$ and $2y$ prefixes)
type BcryptVerifier struct{}

// Verify returns true when password matches hash
func (BcryptVerifier) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil // Compare hashed password
}

// HashPassword hashes password with the default bcrypt cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash the password
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
