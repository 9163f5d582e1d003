package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

type promotionService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewPromotionService creates a new promotion service
func NewPromotionService(repos *repository.Repositories, logger *zap.Logger) *promotionService {
	return &promotionService{
		repos:  repos,
		logger: logger,
	}
}

// ValidatePromotion checks a server-side promotion code against an order
// amount and quotes the resulting discount. An invalid code returns a quote
// with Valid=false and a reason; it is not an error.
func (s *promotionService) ValidatePromotion(ctx context.Context, code string, orderAmount float64) (*PromotionQuote, error) {
	promotion, err := s.repos.Promotion.GetByCode(ctx, code)
	if err != nil {
		if _, ok := err.(*pkgerrors.ErrNotFound); ok {
			return &PromotionQuote{Code: code, Valid: false, Reason: "unknown code", DiscountedTotal: orderAmount}, nil
		}
		return nil, err
	}

	quote := &PromotionQuote{Code: promotion.Code, DiscountedTotal: orderAmount}

	now := time.Now()
	switch {
	case !promotion.IsActive:
		quote.Reason = "promotion inactive"
	case now.Before(promotion.ValidFrom):
		quote.Reason = "promotion not yet valid"
	case now.After(promotion.ValidUntil):
		quote.Reason = "promotion expired"
	case promotion.MaxUses != nil && promotion.CurrentUses >= *promotion.MaxUses:
		quote.Reason = "promotion usage limit reached"
	case promotion.MinOrderAmount != nil && orderAmount < *promotion.MinOrderAmount:
		quote.Reason = "order amount below minimum"
	}

	if quote.Reason != "" {
		return quote, nil
	}

	discount := discountAmount(promotion, orderAmount)
	total := orderAmount - discount
	if total < 0 {
		total = 0
		discount = orderAmount
	}

	quote.Valid = true
	quote.DiscountAmount = discount
	quote.DiscountedTotal = total
	return quote, nil
}

// ApplyPromotion validates the code and, when valid, counts the use
func (s *promotionService) ApplyPromotion(ctx context.Context, code string, orderAmount float64) (*PromotionQuote, error) {
	quote, err := s.ValidatePromotion(ctx, code, orderAmount)
	if err != nil {
		return nil, err
	}
	if !quote.Valid {
		return quote, nil
	}

	promotion, err := s.repos.Promotion.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Promotion.IncrementUses(ctx, promotion.ID); err != nil {
		return nil, err
	}

	return quote, nil
}

func discountAmount(promotion *domain.Promotion, orderAmount float64) float64 {
	if promotion.DiscountType == domain.DiscountTypePercentage {
		return orderAmount * promotion.DiscountValue / 100
	}
	return promotion.DiscountValue
}
