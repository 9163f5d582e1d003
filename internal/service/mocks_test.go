package service

import (
	"context"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
)

type mockConversationRepo struct {
	createFn       func(ctx context.Context, conversation *domain.Conversation) error
	getByIDFn      func(ctx context.Context, id int64) (*domain.Conversation, error)
	listByUserFn   func(ctx context.Context, userID int64) ([]*domain.Conversation, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.ConversationStatus) error
}

func (m *mockConversationRepo) Create(ctx context.Context, conversation *domain.Conversation) error {
	return m.createFn(ctx, conversation)
}

func (m *mockConversationRepo) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockConversationRepo) ListByUserID(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
	return m.listByUserFn(ctx, userID)
}

func (m *mockConversationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ConversationStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

type mockChatMessageRepo struct {
	createFn      func(ctx context.Context, message *domain.ChatMessage) error
	listByConvFn  func(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error)
	markAllReadFn func(ctx context.Context, conversationID int64) error
}

func (m *mockChatMessageRepo) Create(ctx context.Context, message *domain.ChatMessage) error {
	return m.createFn(ctx, message)
}

func (m *mockChatMessageRepo) ListByConversationID(ctx context.Context, conversationID int64) ([]*domain.ChatMessage, error) {
	return m.listByConvFn(ctx, conversationID)
}

func (m *mockChatMessageRepo) MarkAllRead(ctx context.Context, conversationID int64) error {
	return m.markAllReadFn(ctx, conversationID)
}

type mockPromotionRepo struct {
	getByCodeFn     func(ctx context.Context, code string) (*domain.Promotion, error)
	incrementUsesFn func(ctx context.Context, id int64) error
}

func (m *mockPromotionRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return m.getByCodeFn(ctx, code)
}

func (m *mockPromotionRepo) IncrementUses(ctx context.Context, id int64) error {
	return m.incrementUsesFn(ctx, id)
}

type mockPlanRepo struct {
	listActiveFn func(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.SubscriptionPlan, error)
}

func (m *mockPlanRepo) ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	return m.listActiveFn(ctx)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	return m.getByIDFn(ctx, id)
}

type mockCustomerSubscriptionRepo struct {
	createFn            func(ctx context.Context, subscription *domain.CustomerSubscription) error
	getByIDFn           func(ctx context.Context, id int64) (*domain.CustomerSubscription, error)
	updateStatusFn      func(ctx context.Context, id int64, status domain.SubscriptionStatus) error
	incrementServicesFn func(ctx context.Context, id int64) error
}

func (m *mockCustomerSubscriptionRepo) Create(ctx context.Context, subscription *domain.CustomerSubscription) error {
	return m.createFn(ctx, subscription)
}

func (m *mockCustomerSubscriptionRepo) GetByID(ctx context.Context, id int64) (*domain.CustomerSubscription, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCustomerSubscriptionRepo) UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockCustomerSubscriptionRepo) IncrementServicesUsed(ctx context.Context, id int64) error {
	return m.incrementServicesFn(ctx, id)
}

func reposWith(fill func(r *repository.Repositories)) *repository.Repositories {
	r := &repository.Repositories{}
	fill(r)
	return r
}
