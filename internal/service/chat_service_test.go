package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

func TestStartConversation(t *testing.T) {
	var created *domain.Conversation
	repos := reposWith(func(r *repository.Repositories) {
		r.Conversation = &mockConversationRepo{
			createFn: func(ctx context.Context, conversation *domain.Conversation) error {
				conversation.ID = 42
				created = conversation
				return nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	conversation, err := svc.StartConversation(context.Background(), 7, "AC deep clean question")
	require.NoError(t, err)

	assert.Equal(t, int64(42), conversation.ID)
	assert.Equal(t, int64(7), conversation.UserID)
	assert.Equal(t, domain.ConversationStatusOpen, created.Status)
	require.NotNil(t, conversation.Messages)
	assert.Empty(t, conversation.Messages)
}

func TestStartConversationEmptySubject(t *testing.T) {
	svc := NewChatService(&repository.Repositories{}, zap.NewNop())

	_, err := svc.StartConversation(context.Background(), 7, "")
	require.Error(t, err)
	_, ok := err.(*pkgerrors.ErrValidation)
	assert.True(t, ok)
}

func TestListConversationsAttachesMessages(t *testing.T) {
	messagesByConv := map[int64][]*domain.ChatMessage{
		1: {{ID: 10, ConversationID: 1, Message: "hello"}},
		2: nil,
	}

	var listCalls []int64
	repos := reposWith(func(r *repository.Repositories) {
		r.Conversation = &mockConversationRepo{
			listByUserFn: func(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
				return []*domain.Conversation{{ID: 1, UserID: userID}, {ID: 2, UserID: userID}}, nil
			},
		}
		r.ChatMessage = &mockChatMessageRepo{
			listByConvFn: func(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error) {
				listCalls = append(listCalls, conversationID)
				return messagesByConv[conversationID], nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	conversations, err := svc.ListConversations(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// One message query per conversation
	assert.Equal(t, []int64{1, 2}, listCalls)

	assert.Len(t, conversations[0].Messages, 1)
	require.NotNil(t, conversations[1].Messages)
	assert.Empty(t, conversations[1].Messages)
}

func TestSendMessage(t *testing.T) {
	repos := reposWith(func(r *repository.Repositories) {
		r.ChatMessage = &mockChatMessageRepo{
			createFn: func(ctx context.Context, message *domain.ChatMessage) error {
				message.ID = 99
				return nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	message, err := svc.SendMessage(context.Background(), 7, 3, "when will the technician arrive?")
	require.NoError(t, err)

	assert.Equal(t, int64(99), message.ID)
	assert.Equal(t, int64(3), message.ConversationID)
	assert.Equal(t, int64(7), message.SenderID)
	assert.Equal(t, domain.SenderRoleCustomer, message.SenderRole)
	assert.False(t, message.IsRead)
}

func TestSendMessageDoesNotCheckConversation(t *testing.T) {
	// The insert is attempted without any conversation lookup, so an id that
	// does not exist still reaches the message repository.
	var inserted bool
	repos := reposWith(func(r *repository.Repositories) {
		r.ChatMessage = &mockChatMessageRepo{
			createFn: func(ctx context.Context, message *domain.ChatMessage) error {
				inserted = true
				return nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	_, err := svc.SendMessage(context.Background(), 7, 123456, "hello?")
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestSendMessageEmptyText(t *testing.T) {
	svc := NewChatService(&repository.Repositories{}, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), 7, 3, "")
	require.Error(t, err)
	_, ok := err.(*pkgerrors.ErrValidation)
	assert.True(t, ok)
}

func TestCloseConversation(t *testing.T) {
	var gotID int64
	var gotStatus domain.ConversationStatus
	repos := reposWith(func(r *repository.Repositories) {
		r.Conversation = &mockConversationRepo{
			updateStatusFn: func(ctx context.Context, id int64, status domain.ConversationStatus) error {
				gotID = id
				gotStatus = status
				return nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	require.NoError(t, svc.CloseConversation(context.Background(), 3))
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, domain.ConversationStatusClosed, gotStatus)
}

func TestMarkAsRead(t *testing.T) {
	var gotID int64
	repos := reposWith(func(r *repository.Repositories) {
		r.ChatMessage = &mockChatMessageRepo{
			markAllReadFn: func(ctx context.Context, conversationID int64) error {
				gotID = conversationID
				return nil
			},
		}
	})

	svc := NewChatService(repos, zap.NewNop())
	require.NoError(t, svc.MarkAsRead(context.Background(), 5))
	assert.Equal(t, int64(5), gotID)
}
