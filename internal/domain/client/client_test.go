package client

import (
	"testing"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() Address {
	return Address{
		Building: "Unit 4",
		Street:   "12 High Street",
		City:     "London",
		State:    "Greater London",
		PinCode:  "SW1A 1AA",
		Country:  "United Kingdom",
	}
}

func TestNewClient(t *testing.T) {
	creator := uuid.New()

	t.Run("creates client successfully", func(t *testing.T) {
		c, err := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")

		require.NoError(t, err)
		assert.Equal(t, "CL-000001", c.Code)
		assert.Equal(t, "Acme Ltd", c.BusinessName)
		assert.Equal(t, BusinessTypeLimited, c.BusinessType)
		assert.Equal(t, shared.DeletionStateActive, c.DeletionState)
		assert.Equal(t, creator, c.CreatedBy)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("fails with empty business name", func(t *testing.T) {
		c, err := NewClient("CL-000001", "  ", BusinessTypeLimited, testAddress(), creator, "Jane Smith")

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid business type", func(t *testing.T) {
		c, err := NewClient("CL-000001", "Acme Ltd", BusinessType("plc"), testAddress(), creator, "Jane Smith")

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewClient("", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")

		assert.Error(t, err)
	})

	t.Run("fails with nil creator", func(t *testing.T) {
		_, err := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), uuid.Nil, "")

		assert.Error(t, err)
	})
}

func TestBusinessType_IsValid(t *testing.T) {
	valid := []BusinessType{
		BusinessTypeIndividual,
		BusinessTypeLimited,
		BusinessTypeLLP,
		BusinessTypePartnership,
		BusinessTypeLimitedPartnership,
	}
	for _, bt := range valid {
		assert.True(t, bt.IsValid(), string(bt))
	}
	assert.False(t, BusinessType("sole_trader").IsValid())
	assert.False(t, BusinessType("").IsValid())
}

func TestClient_Update(t *testing.T) {
	creator := uuid.New()
	actor := uuid.New()

	t.Run("updates mutable fields", func(t *testing.T) {
		c, err := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")
		require.NoError(t, err)
		c.ClearDomainEvents()

		addr := testAddress()
		addr.City = "Manchester"
		err = c.Update("Acme Holdings Ltd", BusinessTypeLLP, addr, actor)

		require.NoError(t, err)
		assert.Equal(t, "Acme Holdings Ltd", c.BusinessName)
		assert.Equal(t, BusinessTypeLLP, c.BusinessType)
		assert.Equal(t, "Manchester", c.Address.City)
		assert.Equal(t, 2, c.GetVersion())
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("keeps code immutable", func(t *testing.T) {
		c, err := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")
		require.NoError(t, err)

		err = c.Update("Acme Holdings Ltd", BusinessTypeLimited, testAddress(), actor)

		require.NoError(t, err)
		assert.Equal(t, "CL-000001", c.Code)
	})
}

func TestClient_ArchiveRestore(t *testing.T) {
	creator := uuid.New()

	t.Run("archive flips state without deleting", func(t *testing.T) {
		c, err := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")
		require.NoError(t, err)

		err = c.Archive(creator)

		require.NoError(t, err)
		assert.Equal(t, shared.DeletionStateInactive, c.DeletionState)
		assert.False(t, c.IsActive())
	})

	t.Run("archive twice fails", func(t *testing.T) {
		c, _ := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")
		require.NoError(t, c.Archive(creator))

		assert.Error(t, c.Archive(creator))
	})

	t.Run("restore round-trip", func(t *testing.T) {
		c, _ := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")
		require.NoError(t, c.Archive(creator))
		require.NoError(t, c.Restore(creator))

		assert.True(t, c.IsActive())
	})

	t.Run("restore on active client fails", func(t *testing.T) {
		c, _ := NewClient("CL-000001", "Acme Ltd", BusinessTypeLimited, testAddress(), creator, "Jane Smith")

		assert.Error(t, c.Restore(creator))
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("accepts empty optional fields", func(t *testing.T) {
		assert.NoError(t, Address{}.Validate())
	})

	t.Run("rejects malformed pin code", func(t *testing.T) {
		a := testAddress()
		a.PinCode = "SW1!@#"
		assert.Error(t, a.Validate())
	})
}

func TestNewHistory(t *testing.T) {
	t.Run("creates history record", func(t *testing.T) {
		clientID := uuid.New()
		userID := uuid.New()

		h, err := NewHistory(clientID, userID, HistoryTypeCreated)

		require.NoError(t, err)
		assert.Equal(t, clientID, h.ClientID)
		assert.Equal(t, userID, h.UserID)
		assert.Equal(t, "created", h.Type)
	})

	t.Run("fails without client", func(t *testing.T) {
		_, err := NewHistory(uuid.Nil, uuid.New(), HistoryTypeCreated)
		assert.Error(t, err)
	})

	t.Run("fails without type", func(t *testing.T) {
		_, err := NewHistory(uuid.New(), uuid.New(), "")
		assert.Error(t, err)
	})
}
