package utils

import (
	"testing"
	"time"

	"glowbook/utils/jwttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	sub, err := ExtractIDFromToken(jwttest.Sign(t, "test-secret", "user-1", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err := ExtractIDFromToken(jwttest.Sign(t, "test-secret", "user-1", -time.Minute))
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	SetJWTSecret("second")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err := ExtractIDFromToken(jwttest.Sign(t, "first", "user-1", time.Hour))
	assert.Error(t, err)
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err := ExtractIDFromToken(jwttest.Sign(t, "test-secret", "", time.Hour))
	assert.Error(t, err)
}

func TestUnconfiguredSecret(t *testing.T) {
	SetJWTSecret("")
	assert.False(t, JWTConfigured())

	_, err := ExtractIDFromToken(jwttest.Sign(t, "anything", "user-1", time.Hour))
	assert.Error(t, err)
}
