package chatclient

import (
	"context"

	"go.uber.org/zap"
)

// Container is the client-side cache of conversations, synchronized with the
// backend through Client. Only server-confirmed objects enter the local
// state; a failed call leaves the cache untouched and records the error.
// It is intended for single-goroutine, event-driven use.
type Container struct {
	client        *Client
	conversations []*Conversation
	current       *Conversation
	loading       bool
	lastError     string
	logger        *zap.Logger
}

// NewContainer creates an empty chat state container
func NewContainer(client *Client, logger *zap.Logger) *Container {
	return &Container{
		client: client,
		logger: logger,
	}
}

// StartConversation creates a conversation server-side, appends it to the
// collection and makes it the active conversation. The loading flag is set
// for the duration and always cleared, whatever the outcome.
func (s *Container) StartConversation(ctx context.Context, subject string) error {
	s.loading = true
	defer func() { s.loading = false }()

	conversation, err := s.client.StartConversation(ctx, subject)
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.conversations = append(s.conversations, conversation)
	s.current = conversation
	return nil
}

// Refresh replaces the collection with the backend's view
func (s *Container) Refresh(ctx context.Context) error {
	conversations, err := s.client.GetConversations(ctx)
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.conversations = conversations
	s.current = nil
	return nil
}

// SelectConversation is a pure local lookup. An unknown id is a no-op and
// the previous selection is retained.
func (s *Container) SelectConversation(conversationID int64) {
	for _, conversation := range s.conversations {
		if conversation.ID == conversationID {
			s.current = conversation
			return
		}
	}
}

// SendMessage posts the message and appends the server-confirmed object to
// the matching conversation. The active conversation shares the same object,
// so it observes the append as well.
func (s *Container) SendMessage(ctx context.Context, conversationID int64, text string) error {
	message, err := s.client.SendMessage(ctx, conversationID, text)
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	for _, conversation := range s.conversations {
		if conversation.ID == conversationID {
			conversation.Messages = append(conversation.Messages, message)
			break
		}
	}

	return nil
}

// CloseConversation requests the status update and mirrors it locally only
// after the backend confirms
func (s *Container) CloseConversation(ctx context.Context, conversationID int64) error {
	if err := s.client.CloseConversation(ctx, conversationID); err != nil {
		s.lastError = err.Error()
		return err
	}

	for _, conversation := range s.conversations {
		if conversation.ID == conversationID {
			conversation.Status = "closed"
			break
		}
	}

	return nil
}

// MarkAsRead requests the mark-read and, on success, flags every message in
// the local copy as read
func (s *Container) MarkAsRead(ctx context.Context, conversationID int64) error {
	if err := s.client.MarkAsRead(ctx, conversationID); err != nil {
		s.lastError = err.Error()
		return err
	}

	for _, conversation := range s.conversations {
		if conversation.ID == conversationID {
			for _, message := range conversation.Messages {
				message.IsRead = true
			}
			break
		}
	}

	return nil
}

// UnreadCount is derived from the cached conversations on every call
func (s *Container) UnreadCount() int {
	var count int
	for _, conversation := range s.conversations {
		for _, message := range conversation.Messages {
			if !message.IsRead {
				count++
			}
		}
	}
	return count
}

// Conversations returns the cached collection
func (s *Container) Conversations() []*Conversation {
	return s.conversations
}

// Current returns the active conversation, nil when none is selected
func (s *Container) Current() *Conversation {
	return s.current
}

// IsLoading reports whether a conversation creation is in flight
func (s *Container) IsLoading() bool {
	return s.loading
}

// LastError returns the most recent failure message, empty when none
func (s *Container) LastError() string {
	return s.lastError
}
