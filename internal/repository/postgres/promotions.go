package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type promotionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *sql.DB, logger *zap.Logger) *promotionRepository {
	return &promotionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *promotionRepository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	query := `
		SELECT id, code, description, discount_type, discount_value, max_uses, current_uses,
			min_order_amount, valid_from, valid_until, is_active, created_at, updated_at
		FROM promotions
		WHERE code = $1
	`

	var promotion domain.Promotion
	var description sql.NullString
	var maxUses sql.NullInt64
	var minOrderAmount sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(code)).Scan(
		&promotion.ID,
		&promotion.Code,
		&description,
		&promotion.DiscountType,
		&promotion.DiscountValue,
		&maxUses,
		&promotion.CurrentUses,
		&minOrderAmount,
		&promotion.ValidFrom,
		&promotion.ValidUntil,
		&promotion.IsActive,
		&promotion.CreatedAt,
		&promotion.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "promotion", ID: code}
	}
	if err != nil {
		r.logger.Error("Failed to get promotion by code", zap.Error(err))
		return nil, err
	}

	if description.Valid {
		promotion.Description = &description.String
	}
	if maxUses.Valid {
		v := int(maxUses.Int64)
		promotion.MaxUses = &v
	}
	if minOrderAmount.Valid {
		promotion.MinOrderAmount = &minOrderAmount.Float64
	}

	return &promotion, nil
}

func (r *promotionRepository) IncrementUses(ctx context.Context, id int64) error {
	query := `
		UPDATE promotions
		SET current_uses = current_uses + 1, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("Failed to increment promotion uses", zap.Error(err))
		return err
	}

	return nil
}
