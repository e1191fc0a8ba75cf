package auth

import (
	"testing"
	"time"

	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		TokenExpiration: expiration,
		Issuer:          "bizdesk-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID, "Ada Lovelace", identity.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.Validate(token.Value)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "bizdesk-test", claims.Issuer)

	caller, err := claims.Caller()
	require.NoError(t, err)
	assert.Equal(t, userID, caller.UserID)
	assert.Equal(t, identity.RoleManager, caller.Role)
	assert.Equal(t, "Ada Lovelace", caller.Name)
}

func TestJWTService_Validate_Errors(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestJWTService(-time.Minute)
		token, err := expired.Generate(uuid.New(), "Old Timer", identity.RoleUser)
		require.NoError(t, err)

		// NotBefore is also in the past, only expiry should trip
		_, err = svc.Validate(token.Value)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:          "a-completely-different-secret-key",
			TokenExpiration: time.Hour,
			Issuer:          "bizdesk-test",
		})
		token, err := other.Generate(uuid.New(), "Intruder", identity.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.Validate(token.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_Caller_InvalidUserID(t *testing.T) {
	claims := &Claims{UserID: "not-a-uuid", Role: "admin"}

	_, err := claims.Caller()
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestJWTService_Expiration(t *testing.T) {
	svc := newTestJWTService(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, svc.Expiration())
}
