package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

const testSecret = "test-secret-key-for-jwt-signing"

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(config.AuthConfig{JWTSecret: secret, ExpirationHours: 24})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	s := newTestJWTService(testSecret)

	token, err := s.GenerateToken("cli")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cli", claims.Subject)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_EmptySubject(t *testing.T) {
	_, err := newTestJWTService(testSecret).GenerateToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestJWTService(testSecret).GenerateToken("cli")
	require.NoError(t, err)

	_, err = newTestJWTService("another-secret-of-enough-length").ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token signature")
}

func TestJWTService_Expired(t *testing.T) {
	s := newTestJWTService(testSecret)
	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := s.GenerateToken("cli")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_Malformed(t *testing.T) {
	s := newTestJWTService(testSecret)

	_, err := s.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed token")

	_, err = s.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "cli",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestJWTService(testSecret).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: Issuer, Subject: "cli"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWTService(testSecret).ValidateToken(token)
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	s := newTestJWTService(testSecret)
	token, err := s.GenerateToken("cli")
	require.NoError(t, err)

	claims, err := s.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "cli", subject)
}
