package chat

import (
	"context"
	"time"
)

// Repository persists conversation turns.
type Repository interface {
	// Create stores turn and fills in storage assigned fields.
	Create(ctx context.Context, turn *Turn) error
	// ListByConversation returns the turns of a conversation in creation order.
	ListByConversation(ctx context.Context, conversationID string) ([]Turn, error)
	// DeleteOlderThan removes turns created before cutoff and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
