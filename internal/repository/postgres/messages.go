package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
)

type chatMessageRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *sql.DB, logger *zap.Logger) *chatMessageRepository {
	return &chatMessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *chatMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	// No existence check against conversations: the insert succeeds even for
	// an unknown conversation id, matching the original behavior.
	query := `
		INSERT INTO chat_messages (conversation_id, sender_id, sender_role, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	err := r.db.QueryRowContext(ctx, query,
		message.ConversationID,
		message.SenderID,
		message.SenderRole,
		message.Message,
		message.IsRead,
		message.CreatedAt,
	).Scan(&message.ID)

	if err != nil {
		r.logger.Error("Failed to create chat message", zap.Error(err))
		return err
	}

	return nil
}

func (r *chatMessageRepository) ListByConversationID(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, conversation_id, sender_id, sender_role, message, is_read, created_at
		FROM chat_messages
		WHERE conversation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.logger.Error("Failed to list chat messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var message domain.ChatMessage

		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.SenderRole,
			&message.Message,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan chat message", zap.Error(err))
			return nil, err
		}

		messages = append(messages, &message)
	}

	return messages, rows.Err()
}

func (r *chatMessageRepository) MarkAllRead(ctx context.Context, conversationID int64) error {
	query := `
		UPDATE chat_messages
		SET is_read = true
		WHERE conversation_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, conversationID)
	if err != nil {
		r.logger.Error("Failed to mark messages read", zap.Error(err))
		return err
	}

	return nil
}
