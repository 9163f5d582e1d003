package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type conversationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *sql.DB, logger *zap.Logger) *conversationRepository {
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	query := `
		INSERT INTO conversations (user_id, support_agent_id, subject, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = now
	}
	if conversation.UpdatedAt.IsZero() {
		conversation.UpdatedAt = now
	}
	if conversation.Status == "" {
		conversation.Status = domain.ConversationStatusOpen
	}

	err := r.db.QueryRowContext(ctx, query,
		conversation.UserID,
		conversation.SupportAgentID,
		conversation.Subject,
		conversation.Status,
		conversation.CreatedAt,
		conversation.UpdatedAt,
	).Scan(&conversation.ID)

	if err != nil {
		r.logger.Error("Failed to create conversation", zap.Error(err))
		return err
	}

	return nil
}

func (r *conversationRepository) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	query := `
		SELECT id, user_id, support_agent_id, subject, status, created_at, updated_at
		FROM conversations
		WHERE id = $1
	`

	var conversation domain.Conversation
	var supportAgentID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&conversation.ID,
		&conversation.UserID,
		&supportAgentID,
		&conversation.Subject,
		&conversation.Status,
		&conversation.CreatedAt,
		&conversation.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "conversation", ID: formatID(id)}
	}
	if err != nil {
		r.logger.Error("Failed to get conversation by ID", zap.Error(err))
		return nil, err
	}

	if supportAgentID.Valid {
		conversation.SupportAgentID = &supportAgentID.Int64
	}

	return &conversation, nil
}

func (r *conversationRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
	query := `
		SELECT id, user_id, support_agent_id, subject, status, created_at, updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list conversations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var conversations []*domain.Conversation
	for rows.Next() {
		var conversation domain.Conversation
		var supportAgentID sql.NullInt64

		err := rows.Scan(
			&conversation.ID,
			&conversation.UserID,
			&supportAgentID,
			&conversation.Subject,
			&conversation.Status,
			&conversation.CreatedAt,
			&conversation.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan conversation", zap.Error(err))
			return nil, err
		}

		if supportAgentID.Valid {
			conversation.SupportAgentID = &supportAgentID.Int64
		}

		conversations = append(conversations, &conversation)
	}

	return conversations, rows.Err()
}

func (r *conversationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ConversationStatus) error {
	query := `
		UPDATE conversations
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		r.logger.Error("Failed to update conversation status", zap.Error(err))
		return err
	}

	return nil
}
