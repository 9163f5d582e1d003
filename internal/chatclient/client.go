package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Message is a chat message as returned by the backend
type Message struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversation_id"`
	SenderID       int64  `json:"sender_id"`
	SenderRole     string `json:"sender_role"`
	Message        string `json:"message"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

// Conversation is a support thread as returned by the backend
type Conversation struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	SupportAgentID *int64     `json:"support_agent_id,omitempty"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	Messages       []*Message `json:"messages"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// Client issues chat requests against the backend RPC surface
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a chat API client
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat API error: status %d, body: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// StartConversation creates a conversation on the backend
func (c *Client) StartConversation(ctx context.Context, subject string) (*Conversation, error) {
	var conversation Conversation
	err := c.do(ctx, http.MethodPost, "/v1/chat/conversations", map[string]string{"subject": subject}, &conversation)
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetConversations fetches the caller's conversations with messages
func (c *Client) GetConversations(ctx context.Context) ([]*Conversation, error) {
	var response struct {
		Conversations []*Conversation `json:"conversations"`
	}
	err := c.do(ctx, http.MethodGet, "/v1/chat/conversations", nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Conversations, nil
}

// SendMessage posts a message and returns the server-confirmed object
func (c *Client) SendMessage(ctx context.Context, conversationID int64, text string) (*Message, error) {
	var message Message
	path := fmt.Sprintf("/v1/chat/conversations/%d/messages", conversationID)
	err := c.do(ctx, http.MethodPost, path, map[string]string{"message": text}, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// CloseConversation requests a status update to closed
func (c *Client) CloseConversation(ctx context.Context, conversationID int64) error {
	path := fmt.Sprintf("/v1/chat/conversations/%d/close", conversationID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// MarkAsRead flags every message in the conversation as read
func (c *Client) MarkAsRead(ctx context.Context, conversationID int64) error {
	path := fmt.Sprintf("/v1/chat/conversations/%d/mark-read", conversationID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}
