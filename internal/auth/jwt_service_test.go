package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "hostelms/internal/errors"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, userID, claims.Identity().UserID)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	// Negative lifetime produces an already-expired token.
	svc := NewJWTService("test-secret", -time.Second)

	token, err := svc.Generate(uuid.New(), "user")
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindAuth, appErr.Kind)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Generate(uuid.New(), "user")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindAuth, appErr.Kind)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.Error(t, err)
		appErr, ok := apperrors.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.KindAuth, appErr.Kind)
	}
}

func TestJWTService_DefaultExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, err := svc.Generate(uuid.New(), "user")
	assert.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, DefaultTokenExpiry-time.Minute)
}
