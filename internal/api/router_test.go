package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/config"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/notify"
	"github.com/nasayimclean/webapi/internal/repository"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	if r.user != nil && token == "valid-token" {
		return r.user, nil
	}
	return nil, &pkgerrors.ErrUnauthorized{Message: "invalid API token"}
}

func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, &pkgerrors.ErrNotFound{Resource: "user", ID: strconv.FormatInt(id, 10)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (r *stubUserRepo) UpdateLastSignedIn(ctx context.Context, id int64) error { return nil }

// recordingConversationRepo counts every call so tests can assert storage was
// never touched on rejected requests.
type recordingConversationRepo struct {
	calls     int
	createErr error
}

func (r *recordingConversationRepo) Create(ctx context.Context, conversation *domain.Conversation) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	conversation.ID = 1
	return nil
}

func (r *recordingConversationRepo) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	r.calls++
	return nil, &pkgerrors.ErrNotFound{Resource: "conversation", ID: strconv.FormatInt(id, 10)}
}

func (r *recordingConversationRepo) ListByUserID(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
	r.calls++
	return nil, nil
}

func (r *recordingConversationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ConversationStatus) error {
	r.calls++
	return nil
}

type recordingMessageRepo struct {
	calls int
}

func (r *recordingMessageRepo) Create(ctx context.Context, message *domain.ChatMessage) error {
	r.calls++
	message.ID = 1
	return nil
}

func (r *recordingMessageRepo) ListByConversationID(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error) {
	r.calls++
	return nil, nil
}

func (r *recordingMessageRepo) MarkAllRead(ctx context.Context, conversationID int64) error {
	r.calls++
	return nil
}

type stubPlanRepo struct{}

func (r *stubPlanRepo) ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	return []*domain.SubscriptionPlan{{ID: 1, Name: "Home Essentials", MonthlyPrice: 299, ServicesIncluded: 4, IsActive: true}}, nil
}

func (r *stubPlanRepo) GetByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	return nil, &pkgerrors.ErrNotFound{Resource: "subscription plan", ID: strconv.FormatInt(id, 10)}
}

func newTestRouter() (*httptest.Server, *recordingConversationRepo, *recordingMessageRepo) {
	conversations := &recordingConversationRepo{}
	messages := &recordingMessageRepo{}
	repos := &repository.Repositories{
		User:             &stubUserRepo{user: &domain.User{ID: 7, Name: "Test User", IsActive: true}},
		Conversation:     conversations,
		ChatMessage:      messages,
		SubscriptionPlan: &stubPlanRepo{},
	}

	logger := zap.NewNop()
	cfg := &config.Config{Environment: "test"}
	router := NewRouter(cfg, repos, notify.NewSenders(logger), logger)
	return httptest.NewServer(router), conversations, messages
}

func TestHealthEndpoint(t *testing.T) {
	server, _, _ := newTestRouter()
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChatMutationsRejectedWithoutToken(t *testing.T) {
	server, conversations, messages := newTestRouter()
	defer server.Close()

	paths := []string{
		"/v1/chat/conversations",
		"/v1/chat/conversations/1/messages",
		"/v1/chat/conversations/1/close",
		"/v1/chat/conversations/1/mark-read",
	}

	for _, path := range paths {
		req, err := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(`{"subject":"x","message":"x"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	// Rejected before any storage access
	assert.Zero(t, conversations.calls)
	assert.Zero(t, messages.calls)
}

func TestChatMutationsRejectedWithBadToken(t *testing.T) {
	server, conversations, _ := newTestRouter()
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/chat/conversations", strings.NewReader(`{"subject":"x"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, conversations.calls)
}

func TestStartConversationAuthenticated(t *testing.T) {
	server, conversations, _ := newTestRouter()
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/chat/conversations", strings.NewReader(`{"subject":"pest control quote"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, conversations.calls)
}

func TestStartConversationMissingSubjectRejected(t *testing.T) {
	server, conversations, _ := newTestRouter()
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/chat/conversations", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, conversations.calls)
}

func TestStartConversationValidationErrorReturns400(t *testing.T) {
	server, conversations, _ := newTestRouter()
	defer server.Close()

	conversations.createErr = &pkgerrors.ErrValidation{Field: "subject", Message: "must not be empty"}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/chat/conversations", strings.NewReader(`{"subject":"pest control quote"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanCatalogIsPublic(t *testing.T) {
	server, _, _ := newTestRouter()
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/subscriptions/plans")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
