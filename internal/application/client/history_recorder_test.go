package client

import (
	"context"
	"testing"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/bizdesk/backend/internal/domain/quote"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHistoryRecorder_Handle(t *testing.T) {
	t.Run("records one row per lifecycle event", func(t *testing.T) {
		repo := new(MockHistoryRepository)
		recorder := NewHistoryRecorder(repo, zap.NewNop())
		actorID := uuid.New()

		c, err := client.NewClient("CL-000001", "Acme Plumbing", client.BusinessTypeLimited, client.Address{}, actorID, "Creator")
		assert.NoError(t, err)

		repo.On("Save", mock.Anything, mock.MatchedBy(func(h *client.History) bool {
			return h.ClientID == c.ID && h.UserID == actorID && h.Type == client.HistoryTypeCreated
		})).Return(nil)

		for _, event := range c.GetDomainEvents() {
			assert.NoError(t, recorder.Handle(context.Background(), event))
		}

		repo.AssertExpectations(t)
	})

	t.Run("maps archive and restore to their action tags", func(t *testing.T) {
		repo := new(MockHistoryRepository)
		recorder := NewHistoryRecorder(repo, zap.NewNop())
		actorID := uuid.New()

		c, err := client.NewClient("CL-000002", "Acme Plumbing", client.BusinessTypeLimited, client.Address{}, actorID, "Creator")
		assert.NoError(t, err)
		c.ClearDomainEvents()
		assert.NoError(t, c.Archive(actorID))
		assert.NoError(t, c.Restore(actorID))

		var actions []string
		repo.On("Save", mock.Anything, mock.AnythingOfType("*client.History")).
			Run(func(args mock.Arguments) {
				actions = append(actions, args.Get(1).(*client.History).Type)
			}).Return(nil)

		for _, event := range c.GetDomainEvents() {
			assert.NoError(t, recorder.Handle(context.Background(), event))
		}

		assert.Equal(t, []string{client.HistoryTypeArchived, client.HistoryTypeRestored}, actions)
	})

	t.Run("ignores events from other aggregates", func(t *testing.T) {
		repo := new(MockHistoryRepository)
		recorder := NewHistoryRecorder(repo, zap.NewNop())

		event := quote.NewQuoteArchivedEvent(&quote.Quote{}, uuid.New())

		assert.NoError(t, recorder.Handle(context.Background(), event))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
