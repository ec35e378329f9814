package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

var secretKey []byte

// SetJWTSecret installs the HMAC key used to sign and verify tokens.
func SetJWTSecret(secret string) {
	secretKey = []byte(secret)
}

// JWTConfigured reports whether a signing key has been installed.
func JWTConfigured() bool {
	return len(secretKey) > 0
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	if !JWTConfigured() {
		return nil, errors.New("jwt secret is not configured")
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractIDFromToken extracts the subject from a valid JWT token string.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
