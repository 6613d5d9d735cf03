package dto

import (
	"time"

	"campus-start/internal/domain/chat"

	"github.com/google/uuid"
)

type AssistantReplyResponse struct {
	Reply string `json:"reply"`
}

type ConversationResponse struct {
	ID         uuid.UUID             `json:"id"`
	IdeaID     uuid.UUID             `json:"idea_id"`
	Messages   []ChatMessageResponse `json:"messages"`
	LastActive time.Time             `json:"last_active"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewConversationResponse(conv chat.Conversation) ConversationResponse {
	msgs := make([]ChatMessageResponse, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		msgs = append(msgs, ChatMessageResponse{Role: m.Role, Content: m.Content, CreatedAt: m.CreatedAt})
	}
	return ConversationResponse{
		ID:         conv.ID,
		IdeaID:     conv.IdeaID,
		Messages:   msgs,
		LastActive: conv.LastActive,
	}
}
