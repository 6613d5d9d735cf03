package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campus-start/internal/domain/chat"
	"campus-start/internal/domain/idea"
	"campus-start/internal/infrastructure/assistant"

	"github.com/google/uuid"
)

type AssistantUsecase interface {
	// Ask sends query to the idea assistant in the context of the caller's
	// conversation for ideaID and returns the reply. Both turns are persisted
	// only after the model answers.
	Ask(ctx context.Context, ideaID, userID uuid.UUID, query string) (string, error)
	History(ctx context.Context, ideaID, userID uuid.UUID) (chat.Conversation, error)
}

type IdeaAssistant struct {
	ideas     idea.Repository
	convs     chat.Repository
	assistant assistant.Assistant
	logger    *log.Logger
}

func NewAssistantUsecase(ideas idea.Repository, convs chat.Repository, a assistant.Assistant, logger *log.Logger) *IdeaAssistant {
	return &IdeaAssistant{ideas: ideas, convs: convs, assistant: a, logger: logger}
}

func (u *IdeaAssistant) Ask(ctx context.Context, ideaID, userID uuid.UUID, query string) (string, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthorized
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrInvalidInput
	}
	if u.assistant == nil {
		return "", ErrAssistantUnavailable
	}

	i, err := u.ideas.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, idea.ErrNotFound) {
			return "", ErrIdeaNotFound
		}
		return "", ErrInternal
	}

	conv, err := u.convs.GetOrCreate(ctx, ideaID, userID)
	if err != nil {
		return "", ErrInternal
	}

	reply, err := u.assistant.Ask(ctx, i, conv.Messages, query)
	if err != nil {
		u.logf("ask failed idea=%s err=%v", ideaID, err)
		return "", ErrAssistantUnavailable
	}

	msgs := []chat.Message{
		{ID: uuid.New(), Role: chat.RoleUser, Content: query},
		{ID: uuid.New(), Role: chat.RoleAssistant, Content: reply},
	}
	if err := u.convs.AppendMessages(ctx, conv.ID, msgs); err != nil {
		// the caller still gets the reply; only the transcript is stale
		u.logf("append failed conversation=%s err=%v", conv.ID, err)
	}
	return reply, nil
}

func (u *IdeaAssistant) History(ctx context.Context, ideaID, userID uuid.UUID) (chat.Conversation, error) {
	if userID == uuid.Nil {
		return chat.Conversation{}, ErrUnauthorized
	}
	if _, err := u.ideas.GetByID(ctx, ideaID); err != nil {
		if errors.Is(err, idea.ErrNotFound) {
			return chat.Conversation{}, ErrIdeaNotFound
		}
		return chat.Conversation{}, ErrInternal
	}
	conv, err := u.convs.GetOrCreate(ctx, ideaID, userID)
	if err != nil {
		return chat.Conversation{}, ErrInternal
	}
	return conv, nil
}

func (u *IdeaAssistant) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Assistant] "+format, args...)
	}
}
