package chat

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID        uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}

// Conversation is the stored brainstorming transcript for one (idea, user)
// pair.
type Conversation struct {
	ID         uuid.UUID
	IdeaID     uuid.UUID
	UserID     uuid.UUID
	Messages   []Message
	LastActive time.Time
	CreatedAt  time.Time
}
