package chatclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend serves the chat endpoints against an in-memory conversation
// list, enough to drive the container through its full lifecycle.
type fakeBackend struct {
	conversations []*Conversation
	nextID        int64
	nextMessageID int64
	failAll       atomic.Bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1, nextMessageID: 100}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/chat/conversations", func(w http.ResponseWriter, r *http.Request) {
		if b.failAll.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
			return
		}

		switch r.Method {
		case http.MethodPost:
			var req struct {
				Subject string `json:"subject"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			conversation := &Conversation{
				ID:       b.nextID,
				UserID:   7,
				Subject:  req.Subject,
				Status:   "open",
				Messages: []*Message{},
			}
			b.nextID++
			b.conversations = append(b.conversations, conversation)
			json.NewEncoder(w).Encode(conversation)
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{"conversations": b.conversations})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/v1/chat/conversations/", func(w http.ResponseWriter, r *http.Request) {
		if b.failAll.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
			return
		}

		path := r.URL.Path
		switch {
		case len(path) > 9 && path[len(path)-9:] == "/messages":
			var req struct {
				Message string `json:"message"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			message := &Message{
				ID:         b.nextMessageID,
				SenderID:   7,
				SenderRole: "customer",
				Message:    req.Message,
			}
			b.nextMessageID++
			json.NewEncoder(w).Encode(message)
		case len(path) > 6 && path[len(path)-6:] == "/close":
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		case len(path) > 10 && path[len(path)-10:] == "/mark-read":
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return mux
}

func newTestContainer(t *testing.T) (*Container, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-token", zap.NewNop())
	return NewContainer(client, zap.NewNop()), backend
}

func TestStartConversationAddsAndSelects(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "AC maintenance"))

	require.Len(t, container.Conversations(), 1)
	require.NotNil(t, container.Current())
	assert.Equal(t, "AC maintenance", container.Current().Subject)
	assert.False(t, container.IsLoading())
	assert.Empty(t, container.LastError())
}

func TestStartConversationFailureLeavesStateUntouched(t *testing.T) {
	container, backend := newTestContainer(t)
	ctx := context.Background()

	backend.failAll.Store(true)
	err := container.StartConversation(ctx, "will fail")
	require.Error(t, err)

	assert.Empty(t, container.Conversations())
	assert.Nil(t, container.Current())
	assert.False(t, container.IsLoading())
	assert.NotEmpty(t, container.LastError())
}

func TestRefreshReplacesCollection(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "first"))
	require.NoError(t, container.StartConversation(ctx, "second"))

	require.NoError(t, container.Refresh(ctx))
	assert.Len(t, container.Conversations(), 2)
	assert.Nil(t, container.Current())
}

func TestSelectConversation(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "first"))
	require.NoError(t, container.StartConversation(ctx, "second"))
	firstID := container.Conversations()[0].ID

	container.SelectConversation(firstID)
	require.NotNil(t, container.Current())
	assert.Equal(t, "first", container.Current().Subject)
}

func TestSelectConversationUnknownIDKeepsSelection(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "only one"))
	previous := container.Current()

	container.SelectConversation(99999)
	assert.Same(t, previous, container.Current())
}

func TestSendMessageAppendsConfirmedObject(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "quote request"))
	conversationID := container.Current().ID

	require.NoError(t, container.SendMessage(ctx, conversationID, "how much for villas?"))

	// The collection entry and the active conversation share the object
	require.Len(t, container.Conversations()[0].Messages, 1)
	require.Len(t, container.Current().Messages, 1)
	assert.Equal(t, "how much for villas?", container.Current().Messages[0].Message)
	assert.NotZero(t, container.Current().Messages[0].ID)
}

func TestSendMessageFailureLeavesMessagesUntouched(t *testing.T) {
	container, backend := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "quote request"))
	conversationID := container.Current().ID

	backend.failAll.Store(true)
	err := container.SendMessage(ctx, conversationID, "lost message")
	require.Error(t, err)

	assert.Empty(t, container.Current().Messages)
	assert.NotEmpty(t, container.LastError())
}

func TestCloseConversationMirrorsStatus(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "done deal"))
	conversationID := container.Current().ID

	require.NoError(t, container.CloseConversation(ctx, conversationID))
	assert.Equal(t, "closed", container.Current().Status)
}

func TestCloseConversationFailureKeepsStatus(t *testing.T) {
	container, backend := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "still open"))
	conversationID := container.Current().ID

	backend.failAll.Store(true)
	require.Error(t, container.CloseConversation(ctx, conversationID))
	assert.Equal(t, "open", container.Current().Status)
}

func TestMarkAsReadAndUnreadCount(t *testing.T) {
	container, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, container.StartConversation(ctx, "support"))
	conversationID := container.Current().ID

	// Unread messages arrive through a refresh of the cached copy
	container.Current().Messages = []*Message{
		{ID: 1, Message: "hi", IsRead: false},
		{ID: 2, Message: "any update?", IsRead: false},
		{ID: 3, Message: "read already", IsRead: true},
	}
	assert.Equal(t, 2, container.UnreadCount())

	require.NoError(t, container.MarkAsRead(ctx, conversationID))
	assert.Zero(t, container.UnreadCount())
}
