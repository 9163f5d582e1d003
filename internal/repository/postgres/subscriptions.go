package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type subscriptionPlanRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSubscriptionPlanRepository creates a new subscription plan repository
func NewSubscriptionPlanRepository(db *sql.DB, logger *zap.Logger) *subscriptionPlanRepository {
	return &subscriptionPlanRepository{
		db:     db,
		logger: logger,
	}
}

func (r *subscriptionPlanRepository) ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	query := `
		SELECT id, name, description, monthly_price, annual_price, services_included,
			discount_percentage, features, is_active, created_at, updated_at
		FROM subscription_plans
		WHERE is_active = true
		ORDER BY monthly_price
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list subscription plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []*domain.SubscriptionPlan
	for rows.Next() {
		plan, err := scanPlan(rows.Scan)
		if err != nil {
			r.logger.Error("Failed to scan subscription plan", zap.Error(err))
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *subscriptionPlanRepository) GetByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	query := `
		SELECT id, name, description, monthly_price, annual_price, services_included,
			discount_percentage, features, is_active, created_at, updated_at
		FROM subscription_plans
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	plan, err := scanPlan(row.Scan)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "subscription plan", ID: formatID(id)}
	}
	if err != nil {
		r.logger.Error("Failed to get subscription plan by ID", zap.Error(err))
		return nil, err
	}

	return plan, nil
}

func scanPlan(scan func(dest ...interface{}) error) (*domain.SubscriptionPlan, error) {
	var plan domain.SubscriptionPlan
	var description sql.NullString
	var annualPrice sql.NullFloat64
	var features sql.NullString

	err := scan(
		&plan.ID,
		&plan.Name,
		&description,
		&plan.MonthlyPrice,
		&annualPrice,
		&plan.ServicesIncluded,
		&plan.DiscountPercentage,
		&features,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		plan.Description = &description.String
	}
	if annualPrice.Valid {
		plan.AnnualPrice = &annualPrice.Float64
	}
	if features.Valid && features.String != "" {
		// Features are stored as a JSON array of strings
		if err := json.Unmarshal([]byte(features.String), &plan.Features); err != nil {
			plan.Features = nil
		}
	}

	return &plan, nil
}

type customerSubscriptionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCustomerSubscriptionRepository creates a new customer subscription repository
func NewCustomerSubscriptionRepository(db *sql.DB, logger *zap.Logger) *customerSubscriptionRepository {
	return &customerSubscriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerSubscriptionRepository) Create(ctx context.Context, subscription *domain.CustomerSubscription) error {
	query := `
		INSERT INTO customer_subscriptions (customer_id, plan_id, status, start_date, renewal_date,
			billing_cycle, services_used, auto_renew, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	now := time.Now()
	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = now
	}
	if subscription.UpdatedAt.IsZero() {
		subscription.UpdatedAt = now
	}

	err := r.db.QueryRowContext(ctx, query,
		subscription.CustomerID,
		subscription.PlanID,
		subscription.Status,
		subscription.StartDate,
		subscription.RenewalDate,
		subscription.BillingCycle,
		subscription.ServicesUsed,
		subscription.AutoRenew,
		subscription.CreatedAt,
		subscription.UpdatedAt,
	).Scan(&subscription.ID)

	if err != nil {
		r.logger.Error("Failed to create customer subscription", zap.Error(err))
		return err
	}

	return nil
}

func (r *customerSubscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.CustomerSubscription, error) {
	query := `
		SELECT id, customer_id, plan_id, status, start_date, renewal_date,
			billing_cycle, services_used, auto_renew, created_at, updated_at
		FROM customer_subscriptions
		WHERE id = $1
	`

	var subscription domain.CustomerSubscription

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&subscription.ID,
		&subscription.CustomerID,
		&subscription.PlanID,
		&subscription.Status,
		&subscription.StartDate,
		&subscription.RenewalDate,
		&subscription.BillingCycle,
		&subscription.ServicesUsed,
		&subscription.AutoRenew,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "subscription", ID: formatID(id)}
	}
	if err != nil {
		r.logger.Error("Failed to get subscription by ID", zap.Error(err))
		return nil, err
	}

	return &subscription, nil
}

func (r *customerSubscriptionRepository) UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error {
	query := `
		UPDATE customer_subscriptions
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		r.logger.Error("Failed to update subscription status", zap.Error(err))
		return err
	}

	return nil
}

func (r *customerSubscriptionRepository) IncrementServicesUsed(ctx context.Context, id int64) error {
	query := `
		UPDATE customer_subscriptions
		SET services_used = services_used + 1, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("Failed to increment services used", zap.Error(err))
		return err
	}

	return nil
}
