package repository

import (
	"context"

	"fitlife-assistant/internal/domain"
)

// Store is an append-only, ordered log of messages per conversation.
// Implementations must serialize appends to the same conversation.
type Store interface {
	Append(ctx context.Context, conversationID string, msg domain.Message) error
	History(ctx context.Context, conversationID string, limit int) ([]domain.Message, error)
}
