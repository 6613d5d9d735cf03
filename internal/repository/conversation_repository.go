package repository

import (
	"context"
	"errors"

	"campus-start/internal/database"
	"campus-start/internal/domain/chat"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresConversationRepository struct {
	db database.DB
}

func NewPostgresConversationRepository(db database.DB) *PostgresConversationRepository {
	return &PostgresConversationRepository{db: db}
}

func (r *PostgresConversationRepository) GetOrCreate(ctx context.Context, ideaID, userID uuid.UUID) (chat.Conversation, error) {
	c, err := r.getByIdeaAndUser(ctx, ideaID, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return chat.Conversation{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO conversations (id, idea_id, user_id) VALUES ($1, $2, $3)
		 ON CONFLICT (idea_id, user_id) DO NOTHING`,
		uuid.New(), ideaID, userID,
	)
	if err != nil {
		return chat.Conversation{}, err
	}

	return r.getByIdeaAndUser(ctx, ideaID, userID)
}

func (r *PostgresConversationRepository) AppendMessages(ctx context.Context, conversationID uuid.UUID, msgs []chat.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, m := range msgs {
		id := m.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO conversation_messages (id, conversation_id, role, content)
			 VALUES ($1, $2, $3, $4)`,
			id, conversationID, m.Role, m.Content,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE conversations SET last_active = now() WHERE id = $1`, conversationID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresConversationRepository) getByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (chat.Conversation, error) {
	var c chat.Conversation
	err := r.db.QueryRow(ctx,
		`SELECT id, idea_id, user_id, last_active, created_at
		 FROM conversations WHERE idea_id = $1 AND user_id = $2`,
		ideaID, userID,
	).Scan(&c.ID, &c.IdeaID, &c.UserID, &c.LastActive, &c.CreatedAt)
	if err != nil {
		return chat.Conversation{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, role, content, created_at
		 FROM conversation_messages
		 WHERE conversation_id = $1
		 ORDER BY created_at ASC`, c.ID)
	if err != nil {
		return chat.Conversation{}, err
	}
	defer rows.Close()

	c.Messages = make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return chat.Conversation{}, err
		}
		c.Messages = append(c.Messages, m)
	}
	return c, rows.Err()
}

var _ chat.Repository = (*PostgresConversationRepository)(nil)
