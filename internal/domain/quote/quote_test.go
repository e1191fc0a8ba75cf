package quote

import (
	"testing"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuote(t *testing.T) *Quote {
	t.Helper()
	creator := uuid.New()
	items := []LineItem{
		mustItem(t, "Company formation", 100),
		mustItem(t, "Registered office", 50),
	}
	q, err := NewQuote(
		"QT-000001",
		BusinessRef{ClientID: uuid.New(), Name: "Acme Ltd"},
		Handler{UserID: creator, Name: "Jane Smith"},
		time.Now(),
		items,
		decimal.NewFromInt(20),
		creator,
		"Jane Smith",
	)
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("creates drafted quote with computed totals", func(t *testing.T) {
		q := newTestQuote(t)

		assert.Equal(t, StatusDrafted, q.Status)
		assert.Equal(t, shared.DeletionStateActive, q.DeletionState)
		assert.True(t, q.AmountBeforeVAT.Equal(decimal.NewFromInt(150)))
		assert.True(t, q.VATAmount.Equal(decimal.NewFromInt(30)))
		assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(180)))
		assert.Equal(t, 2, q.ItemCount())
		assert.Len(t, q.GetDomainEvents(), 1)
	})

	t.Run("assigns item positions and back-references", func(t *testing.T) {
		q := newTestQuote(t)

		for i, item := range q.LineItems {
			assert.Equal(t, i, item.Position)
			assert.Equal(t, q.ID, item.QuoteID)
		}
	})

	t.Run("rejects empty line items", func(t *testing.T) {
		_, err := NewQuote(
			"QT-000001",
			BusinessRef{ClientID: uuid.New(), Name: "Acme Ltd"},
			Handler{UserID: uuid.New(), Name: "Jane Smith"},
			time.Now(),
			nil,
			decimal.NewFromInt(20),
			uuid.New(),
			"Jane Smith",
		)

		assert.Error(t, err)
	})

	t.Run("rejects missing client reference", func(t *testing.T) {
		_, err := NewQuote(
			"QT-000001",
			BusinessRef{Name: "Acme Ltd"},
			Handler{UserID: uuid.New(), Name: "Jane Smith"},
			time.Now(),
			[]LineItem{mustItem(t, "A", 10)},
			decimal.NewFromInt(20),
			uuid.New(),
			"Jane Smith",
		)

		assert.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusDrafted.CanTransitionTo(StatusAccepted))
	assert.True(t, StatusDrafted.CanTransitionTo(StatusRejected))

	// Terminal states allow no way out, in either direction
	assert.False(t, StatusAccepted.CanTransitionTo(StatusDrafted))
	assert.False(t, StatusAccepted.CanTransitionTo(StatusRejected))
	assert.False(t, StatusRejected.CanTransitionTo(StatusDrafted))
	assert.False(t, StatusRejected.CanTransitionTo(StatusAccepted))
}

func TestQuote_ChangeStatus(t *testing.T) {
	actor := uuid.New()

	t.Run("drafted to accepted", func(t *testing.T) {
		q := newTestQuote(t)

		err := q.ChangeStatus(StatusAccepted, actor)

		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, q.Status)
	})

	t.Run("drafted to rejected", func(t *testing.T) {
		q := newTestQuote(t)

		require.NoError(t, q.ChangeStatus(StatusRejected, actor))
		assert.Equal(t, StatusRejected, q.Status)
	})

	t.Run("accepted cannot revert to drafted", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(StatusAccepted, actor))

		err := q.ChangeStatus(StatusDrafted, actor)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.Equal(t, StatusAccepted, q.Status)
	})

	t.Run("rejected cannot become accepted", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(StatusRejected, actor))

		assert.Error(t, q.ChangeStatus(StatusAccepted, actor))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		q := newTestQuote(t)
		before := q.GetVersion()

		require.NoError(t, q.ChangeStatus(StatusDrafted, actor))
		assert.Equal(t, before, q.GetVersion())
	})

	t.Run("monetary fields unchanged by status change", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(StatusAccepted, actor))

		assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(180)))
		assert.True(t, q.VATAmount.Equal(decimal.NewFromInt(30)))
	})
}

func TestQuote_Revise(t *testing.T) {
	actor := uuid.New()

	t.Run("recomputes totals", func(t *testing.T) {
		q := newTestQuote(t)

		err := q.Revise([]LineItem{mustItem(t, "Annual accounts", 200)}, decimal.Zero, actor)

		require.NoError(t, err)
		assert.Equal(t, 1, q.ItemCount())
		assert.True(t, q.AmountBeforeVAT.Equal(decimal.NewFromInt(200)))
		assert.True(t, q.VATAmount.IsZero())
		assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(200)))
	})

	t.Run("terminal quote cannot be revised", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(StatusAccepted, actor))

		err := q.Revise([]LineItem{mustItem(t, "A", 10)}, decimal.Zero, actor)

		assert.Error(t, err)
	})

	t.Run("rejects emptying the line items", func(t *testing.T) {
		q := newTestQuote(t)

		assert.Error(t, q.Revise(nil, decimal.Zero, actor))
	})
}

func TestQuote_Archive(t *testing.T) {
	actor := uuid.New()

	t.Run("flips deletion state", func(t *testing.T) {
		q := newTestQuote(t)

		require.NoError(t, q.Archive(actor))
		assert.False(t, q.IsActive())
	})

	t.Run("archive twice fails", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.Archive(actor))

		assert.Error(t, q.Archive(actor))
	})
}
