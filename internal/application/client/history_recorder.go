package client

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/client"
	"github.com/bizdesk/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// HistoryRecorder appends an audit row whenever a client lifecycle event
// is published. It subscribes to the in-process event bus, so history is
// written close to, but not inside, the originating transaction.
type HistoryRecorder struct {
	historyRepo client.HistoryRepository
	logger      *zap.Logger
}

// NewHistoryRecorder creates a new history recorder
func NewHistoryRecorder(historyRepo client.HistoryRepository, logger *zap.Logger) *HistoryRecorder {
	return &HistoryRecorder{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// EventTypes returns the client lifecycle events the recorder listens for
func (r *HistoryRecorder) EventTypes() []string {
	return []string{
		client.EventTypeClientCreated,
		client.EventTypeClientUpdated,
		client.EventTypeClientArchived,
		client.EventTypeClientRestored,
	}
}

// Handle appends one history row per lifecycle event
func (r *HistoryRecorder) Handle(ctx context.Context, event shared.DomainEvent) error {
	var action string
	switch event.EventType() {
	case client.EventTypeClientCreated:
		action = client.HistoryTypeCreated
	case client.EventTypeClientUpdated:
		action = client.HistoryTypeUpdated
	case client.EventTypeClientArchived:
		action = client.HistoryTypeArchived
	case client.EventTypeClientRestored:
		action = client.HistoryTypeRestored
	default:
		return nil
	}

	h, err := client.NewHistory(event.AggregateID(), event.ActorID(), action)
	if err != nil {
		return err
	}

	if err := r.historyRepo.Save(ctx, h); err != nil {
		r.logger.Error("Failed to record client history",
			zap.String("client_id", event.AggregateID().String()),
			zap.String("action", action),
			zap.Error(err))
		return err
	}

	return nil
}

var _ shared.EventHandler = (*HistoryRecorder)(nil)
