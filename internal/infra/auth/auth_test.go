package auth

import (
	"testing"
	"time"

	"agriproxy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("password123", "not-a-hash"))
}

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{
		MockAPI: &config.MockAPIConfig{
			SecretKey: "test-secret",
			TokenTTL:  ttl,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.GenerateToken("u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.GenerateToken("u1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, time.Hour)
	verifier := &jwtService{secret: "other-secret", ttl: time.Hour}

	token, err := issuer.GenerateToken("u1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{MockAPI: &config.MockAPIConfig{}})
	assert.Error(t, err)
}
