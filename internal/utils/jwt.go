package utils

import (
	"errors" // Error values

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for tokens that fail signature or claim validation
var ErrInvalidToken = errors.New("invalid token")

// SignClaims signs claims with HS256 and the given secret
func SignClaims(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseClaims parses and validates a token string into dest
func ParseClaims(tokenStr, secret string, dest jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, dest, func(token *jwt.Token) (any, error) {
		// Only accept the HMAC family we sign with
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	// Reject tokens that parsed but did not validate
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
