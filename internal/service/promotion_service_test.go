package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

func activePromotion() *domain.Promotion {
	return &domain.Promotion{
		ID:            1,
		Code:          "SUMMER25",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 25,
		ValidFrom:     time.Now().Add(-24 * time.Hour),
		ValidUntil:    time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func promotionRepos(p *domain.Promotion) *repository.Repositories {
	return reposWith(func(r *repository.Repositories) {
		r.Promotion = &mockPromotionRepo{
			getByCodeFn: func(ctx context.Context, code string) (*domain.Promotion, error) {
				if p == nil {
					return nil, &pkgerrors.ErrNotFound{Resource: "promotion", ID: code}
				}
				return p, nil
			},
			incrementUsesFn: func(ctx context.Context, id int64) error {
				p.CurrentUses++
				return nil
			},
		}
	})
}

func TestValidatePromotionPercentage(t *testing.T) {
	svc := NewPromotionService(promotionRepos(activePromotion()), zap.NewNop())

	quote, err := svc.ValidatePromotion(context.Background(), "SUMMER25", 400)
	require.NoError(t, err)

	assert.True(t, quote.Valid)
	assert.InDelta(t, 100, quote.DiscountAmount, 1e-9)
	assert.InDelta(t, 300, quote.DiscountedTotal, 1e-9)
}

func TestValidatePromotionFixed(t *testing.T) {
	p := activePromotion()
	p.DiscountType = domain.DiscountTypeFixed
	p.DiscountValue = 50
	svc := NewPromotionService(promotionRepos(p), zap.NewNop())

	quote, err := svc.ValidatePromotion(context.Background(), "SUMMER25", 400)
	require.NoError(t, err)

	assert.True(t, quote.Valid)
	assert.InDelta(t, 50, quote.DiscountAmount, 1e-9)
	assert.InDelta(t, 350, quote.DiscountedTotal, 1e-9)
}

func TestValidatePromotionFixedExceedsOrder(t *testing.T) {
	p := activePromotion()
	p.DiscountType = domain.DiscountTypeFixed
	p.DiscountValue = 500
	svc := NewPromotionService(promotionRepos(p), zap.NewNop())

	quote, err := svc.ValidatePromotion(context.Background(), "SUMMER25", 100)
	require.NoError(t, err)

	assert.True(t, quote.Valid)
	assert.InDelta(t, 100, quote.DiscountAmount, 1e-9)
	assert.Zero(t, quote.DiscountedTotal)
}

func TestValidatePromotionUnknownCode(t *testing.T) {
	svc := NewPromotionService(promotionRepos(nil), zap.NewNop())

	quote, err := svc.ValidatePromotion(context.Background(), "NOPE", 400)
	require.NoError(t, err)

	assert.False(t, quote.Valid)
	assert.Equal(t, "unknown code", quote.Reason)
	assert.InDelta(t, 400, quote.DiscountedTotal, 1e-9)
}

func TestValidatePromotionRejections(t *testing.T) {
	minAmount := 500.0
	maxUses := 10

	tests := []struct {
		name   string
		mutate func(p *domain.Promotion)
		reason string
	}{
		{
			name:   "inactive",
			mutate: func(p *domain.Promotion) { p.IsActive = false },
			reason: "promotion inactive",
		},
		{
			name:   "not yet valid",
			mutate: func(p *domain.Promotion) { p.ValidFrom = time.Now().Add(time.Hour) },
			reason: "promotion not yet valid",
		},
		{
			name:   "expired",
			mutate: func(p *domain.Promotion) { p.ValidUntil = time.Now().Add(-time.Hour) },
			reason: "promotion expired",
		},
		{
			name: "usage limit reached",
			mutate: func(p *domain.Promotion) {
				p.MaxUses = &maxUses
				p.CurrentUses = 10
			},
			reason: "promotion usage limit reached",
		},
		{
			name:   "below minimum order",
			mutate: func(p *domain.Promotion) { p.MinOrderAmount = &minAmount },
			reason: "order amount below minimum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := activePromotion()
			tt.mutate(p)
			svc := NewPromotionService(promotionRepos(p), zap.NewNop())

			quote, err := svc.ValidatePromotion(context.Background(), "SUMMER25", 400)
			require.NoError(t, err)
			assert.False(t, quote.Valid)
			assert.Equal(t, tt.reason, quote.Reason)
			assert.Zero(t, quote.DiscountAmount)
			assert.InDelta(t, 400, quote.DiscountedTotal, 1e-9)
		})
	}
}

func TestApplyPromotionCountsUse(t *testing.T) {
	p := activePromotion()
	svc := NewPromotionService(promotionRepos(p), zap.NewNop())

	quote, err := svc.ApplyPromotion(context.Background(), "SUMMER25", 400)
	require.NoError(t, err)
	assert.True(t, quote.Valid)
	assert.Equal(t, 1, p.CurrentUses)
}

func TestApplyPromotionInvalidDoesNotCountUse(t *testing.T) {
	p := activePromotion()
	p.IsActive = false
	svc := NewPromotionService(promotionRepos(p), zap.NewNop())

	quote, err := svc.ApplyPromotion(context.Background(), "SUMMER25", 400)
	require.NoError(t, err)
	assert.False(t, quote.Valid)
	assert.Zero(t, p.CurrentUses)
}
