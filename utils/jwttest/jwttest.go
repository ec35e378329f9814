// Package jwttest mints HS256 bearer tokens for middleware and handler tests.
// Production tokens are issued by the identity provider, never by this service.
package jwttest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

// Sign returns a token for subject signed with secret, expiring after ttl.
// A negative ttl yields an already expired token.
func Sign(t testing.TB, secret, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("jwttest: sign token: %v", err)
	}
	return signed
}
