package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type chatService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(repos *repository.Repositories, logger *zap.Logger) *chatService {
	return &chatService{
		repos:  repos,
		logger: logger,
	}
}

// StartConversation opens a conversation owned by the caller and returns it
// with an empty message list
func (s *chatService) StartConversation(ctx context.Context, userID int64, subject string) (*domain.Conversation, error) {
	if subject == "" {
		return nil, &errors.ErrValidation{Field: "subject", Message: "must not be empty"}
	}

	conversation := &domain.Conversation{
		UserID:  userID,
		Subject: subject,
		Status:  domain.ConversationStatusOpen,
	}

	if err := s.repos.Conversation.Create(ctx, conversation); err != nil {
		return nil, err
	}

	conversation.Messages = []*domain.ChatMessage{}
	return conversation, nil
}

// ListConversations returns the caller's conversations with their messages
// attached. Messages are fetched with one query per conversation.
func (s *chatService) ListConversations(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
	conversations, err := s.repos.Conversation.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, conversation := range conversations {
		messages, err := s.repos.ChatMessage.ListByConversationID(ctx, conversation.ID)
		if err != nil {
			return nil, err
		}
		if messages == nil {
			messages = []*domain.ChatMessage{}
		}
		conversation.Messages = messages
	}

	return conversations, nil
}

// SendMessage inserts an unread customer message attributed to the caller.
// The conversation id is not checked for existence or ownership.
func (s *chatService) SendMessage(ctx context.Context, userID, conversationID int64, text string) (*domain.ChatMessage, error) {
	if text == "" {
		return nil, &errors.ErrValidation{Field: "message", Message: "must not be empty"}
	}

	message := &domain.ChatMessage{
		ConversationID: conversationID,
		SenderID:       userID,
		SenderRole:     domain.SenderRoleCustomer,
		Message:        text,
		IsRead:         false,
	}

	if err := s.repos.ChatMessage.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// CloseConversation sets the conversation status to closed unconditionally
func (s *chatService) CloseConversation(ctx context.Context, conversationID int64) error {
	return s.repos.Conversation.UpdateStatus(ctx, conversationID, domain.ConversationStatusClosed)
}

// MarkAsRead flags every message in the conversation as read
func (s *chatService) MarkAsRead(ctx context.Context, conversationID int64) error {
	return s.repos.ChatMessage.MarkAllRead(ctx, conversationID)
}
