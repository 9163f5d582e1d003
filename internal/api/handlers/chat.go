package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/internal/service"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

// StartConversationRequest represents the conversation creation payload
type StartConversationRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// SendMessageRequest represents the message payload
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse represents a message in API responses
type ChatMessageResponse struct {
	ID             int64             `json:"id"`
	ConversationID int64             `json:"conversation_id"`
	SenderID       int64             `json:"sender_id"`
	SenderRole     domain.SenderRole `json:"sender_role"`
	Message        string            `json:"message"`
	IsRead         bool              `json:"is_read"`
	CreatedAt      string            `json:"created_at"`
}

// ConversationResponse represents a conversation in API responses
type ConversationResponse struct {
	ID             int64                     `json:"id"`
	UserID         int64                     `json:"user_id"`
	SupportAgentID *int64                    `json:"support_agent_id,omitempty"`
	Subject        string                    `json:"subject"`
	Status         domain.ConversationStatus `json:"status"`
	Messages       []ChatMessageResponse     `json:"messages"`
	CreatedAt      string                    `json:"created_at"`
	UpdatedAt      string                    `json:"updated_at"`
}

func buildMessageResponse(message *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		SenderRole:     message.SenderRole,
		Message:        message.Message,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func buildConversationResponse(conversation *domain.Conversation) ConversationResponse {
	messages := make([]ChatMessageResponse, len(conversation.Messages))
	for i, message := range conversation.Messages {
		messages[i] = buildMessageResponse(message)
	}

	return ConversationResponse{
		ID:             conversation.ID,
		UserID:         conversation.UserID,
		SupportAgentID: conversation.SupportAgentID,
		Subject:        conversation.Subject,
		Status:         conversation.Status,
		Messages:       messages,
		CreatedAt:      conversation.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      conversation.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// HandleStartConversation handles POST /v1/chat/conversations
func HandleStartConversation(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req StartConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		chatService := service.NewChatService(repos, logger)
		conversation, err := chatService.StartConversation(c.Request.Context(), user.ID, req.Subject)
		if err != nil {
			if _, ok := err.(*pkgerrors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to start conversation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, buildConversationResponse(conversation))
	}
}

// HandleGetConversations handles GET /v1/chat/conversations
func HandleGetConversations(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		chatService := service.NewChatService(repos, logger)
		conversations, err := chatService.ListConversations(c.Request.Context(), user.ID)
		if err != nil {
			logger.Error("Failed to list conversations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]ConversationResponse, len(conversations))
		for i, conversation := range conversations {
			responses[i] = buildConversationResponse(conversation)
		}

		c.JSON(http.StatusOK, gin.H{"conversations": responses})
	}
}

// HandleSendMessage handles POST /v1/chat/conversations/:id/messages
func HandleSendMessage(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
			return
		}

		var req SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		chatService := service.NewChatService(repos, logger)
		message, err := chatService.SendMessage(c.Request.Context(), user.ID, conversationID, req.Message)
		if err != nil {
			if _, ok := err.(*pkgerrors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to send message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, buildMessageResponse(message))
	}
}

// HandleCloseConversation handles POST /v1/chat/conversations/:id/close
func HandleCloseConversation(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
			return
		}

		chatService := service.NewChatService(repos, logger)
		if err := chatService.CloseConversation(c.Request.Context(), conversationID); err != nil {
			logger.Error("Failed to close conversation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// HandleMarkAsRead handles POST /v1/chat/conversations/:id/mark-read
func HandleMarkAsRead(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
			return
		}

		chatService := service.NewChatService(repos, logger)
		if err := chatService.MarkAsRead(c.Request.Context(), conversationID); err != nil {
			logger.Error("Failed to mark conversation read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
