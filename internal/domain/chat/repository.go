package chat

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetOrCreate returns the conversation for (ideaID, userID), creating an
	// empty one on first use.
	GetOrCreate(ctx context.Context, ideaID, userID uuid.UUID) (Conversation, error)

	// AppendMessages appends msgs in order and bumps last_active.
	AppendMessages(ctx context.Context, conversationID uuid.UUID, msgs []Message) error
}
