package repository

import (
	"context"

	"github.com/nasayimclean/webapi/internal/domain"
)

// UserRepository manages user accounts
type UserRepository interface {
	GetByAPIToken(ctx context.Context, token string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateLastSignedIn(ctx context.Context, id int64) error
}

// ConversationRepository manages support conversations
type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) error
	GetByID(ctx context.Context, id int64) (*domain.Conversation, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Conversation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ConversationStatus) error
}

// ChatMessageRepository manages messages within conversations
type ChatMessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) error
	ListByConversationID(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error)
	MarkAllRead(ctx context.Context, conversationID int64) error
}

// RatingRepository manages customer feedback
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	ListByTechnicianID(ctx context.Context, technicianID int64, limit, offset int) ([]*domain.Rating, error)
}

// PromotionRepository manages server-side discount codes
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	IncrementUses(ctx context.Context, id int64) error
}

// SubscriptionPlanRepository manages the plan catalog
type SubscriptionPlanRepository interface {
	ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	GetByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error)
}

// CustomerSubscriptionRepository manages customer enrollments
type CustomerSubscriptionRepository interface {
	Create(ctx context.Context, subscription *domain.CustomerSubscription) error
	GetByID(ctx context.Context, id int64) (*domain.CustomerSubscription, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error
	IncrementServicesUsed(ctx context.Context, id int64) error
}

// TechnicianTrackingRepository manages technician GPS reports
type TechnicianTrackingRepository interface {
	Create(ctx context.Context, location *domain.TechnicianLocation) error
	GetLatestByOrderID(ctx context.Context, orderID int64) (*domain.TechnicianLocation, error)
}

// Repositories bundles all repository implementations
type Repositories struct {
	User                 UserRepository
	Conversation         ConversationRepository
	ChatMessage          ChatMessageRepository
	Rating               RatingRepository
	Promotion            PromotionRepository
	SubscriptionPlan     SubscriptionPlanRepository
	CustomerSubscription CustomerSubscriptionRepository
	TechnicianTracking   TechnicianTrackingRepository
}
