package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user and normalizes email", func(t *testing.T) {
		u, err := NewUser(" Jane.Smith@Example.COM ", "hash", "Jane", "Smith", RoleStaff)

		require.NoError(t, err)
		assert.Equal(t, "jane.smith@example.com", u.Email)
		assert.Equal(t, "Jane Smith", u.FullName())
		assert.Equal(t, RoleStaff, u.Role)
		assert.True(t, u.IsActive())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "hash", "Jane", "Smith", RoleUser)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "hash", "Jane", "Smith", Role("owner"))
		assert.Error(t, err)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "hash", " ", "Smith", RoleUser)
		assert.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleManager.IsAdmin())
	assert.True(t, RoleManager.IsValid())
	assert.False(t, Role("root").IsValid())
}

func TestUser_AsCaller(t *testing.T) {
	u, err := NewUser("jane@example.com", "hash", "Jane", "Smith", RoleAdmin)
	require.NoError(t, err)

	caller := u.AsCaller()

	assert.Equal(t, u.ID, caller.UserID)
	assert.True(t, caller.IsAdmin())
	assert.Equal(t, "Jane Smith", caller.Name)
}
