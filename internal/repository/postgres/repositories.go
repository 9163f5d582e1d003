package postgres

import (
	"database/sql"
	"strconv"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/repository"
)

// NewRepositories wires all postgres-backed repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		User:                 NewUserRepository(db, logger),
		Conversation:         NewConversationRepository(db, logger),
		ChatMessage:          NewChatMessageRepository(db, logger),
		Rating:               NewRatingRepository(db, logger),
		Promotion:            NewPromotionRepository(db, logger),
		SubscriptionPlan:     NewSubscriptionPlanRepository(db, logger),
		CustomerSubscription: NewCustomerSubscriptionRepository(db, logger),
		TechnicianTracking:   NewTechnicianTrackingRepository(db, logger),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
