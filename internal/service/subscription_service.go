package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type subscriptionService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repos *repository.Repositories, logger *zap.Logger) *subscriptionService {
	return &subscriptionService{
		repos:  repos,
		logger: logger,
	}
}

// Subscribe enrolls a customer in a plan. The renewal date is one month or
// one year from the start depending on the billing cycle.
func (s *subscriptionService) Subscribe(ctx context.Context, customerID, planID int64, cycle domain.BillingCycle, autoRenew bool) (*domain.CustomerSubscription, error) {
	if !cycle.IsValid() {
		return nil, &errors.ErrValidation{Field: "billing_cycle", Message: "must be monthly or annual"}
	}

	if _, err := s.repos.SubscriptionPlan.GetByID(ctx, planID); err != nil {
		return nil, err
	}

	start := time.Now()
	renewal := start.AddDate(0, 1, 0)
	if cycle == domain.BillingCycleAnnual {
		renewal = start.AddDate(1, 0, 0)
	}

	subscription := &domain.CustomerSubscription{
		CustomerID:   customerID,
		PlanID:       planID,
		Status:       domain.SubscriptionStatusActive,
		StartDate:    start,
		RenewalDate:  renewal,
		BillingCycle: cycle,
		AutoRenew:    autoRenew,
	}

	if err := s.repos.CustomerSubscription.Create(ctx, subscription); err != nil {
		return nil, err
	}

	return subscription, nil
}

// RecordServiceUse consumes one service from the subscription's allowance
func (s *subscriptionService) RecordServiceUse(ctx context.Context, subscriptionID int64) (*domain.CustomerSubscription, error) {
	subscription, err := s.repos.CustomerSubscription.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	if subscription.Status != domain.SubscriptionStatusActive {
		return nil, &errors.ErrInvalidStateTransition{
			From: subscription.Status,
			To:   subscription.Status,
		}
	}

	plan, err := s.repos.SubscriptionPlan.GetByID(ctx, subscription.PlanID)
	if err != nil {
		return nil, err
	}

	if subscription.ServicesUsed >= plan.ServicesIncluded {
		return nil, &errors.ErrValidation{Field: "services_used", Message: "plan allowance exhausted"}
	}

	if err := s.repos.CustomerSubscription.IncrementServicesUsed(ctx, subscriptionID); err != nil {
		return nil, err
	}

	subscription.ServicesUsed++
	return subscription, nil
}

// Cancel marks the subscription cancelled
func (s *subscriptionService) Cancel(ctx context.Context, subscriptionID int64) error {
	subscription, err := s.repos.CustomerSubscription.GetByID(ctx, subscriptionID)
	if err != nil {
		return err
	}

	if subscription.Status == domain.SubscriptionStatusCancelled {
		return &errors.ErrInvalidStateTransition{
			From: subscription.Status,
			To:   domain.SubscriptionStatusCancelled,
		}
	}

	return s.repos.CustomerSubscription.UpdateStatus(ctx, subscriptionID, domain.SubscriptionStatusCancelled)
}

// AnnualPrice quotes a plan's yearly price, deriving it from the monthly
// price with a 10% discount when no explicit annual price is set
func AnnualPrice(plan *domain.SubscriptionPlan) float64 {
	if plan.AnnualPrice != nil {
		return *plan.AnnualPrice
	}
	return plan.MonthlyPrice * 12 * 0.9
}
