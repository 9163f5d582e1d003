package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
)

type ratingRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *sql.DB, logger *zap.Logger) *ratingRepository {
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (order_id, customer_id, technician_id, rating, review,
			service_quality, punctuality, professionalism, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = now
	}
	if rating.UpdatedAt.IsZero() {
		rating.UpdatedAt = now
	}

	err := r.db.QueryRowContext(ctx, query,
		rating.OrderID,
		rating.CustomerID,
		rating.TechnicianID,
		rating.Rating,
		rating.Review,
		rating.ServiceQuality,
		rating.Punctuality,
		rating.Professionalism,
		rating.IsVerified,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(&rating.ID)

	if err != nil {
		r.logger.Error("Failed to create rating", zap.Error(err))
		return err
	}

	return nil
}

func (r *ratingRepository) ListByTechnicianID(ctx context.Context, technicianID int64, limit, offset int) ([]*domain.Rating, error) {
	query := `
		SELECT id, order_id, customer_id, technician_id, rating, review,
			service_quality, punctuality, professionalism, is_verified, created_at, updated_at
		FROM ratings
		WHERE technician_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, technicianID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []*domain.Rating
	for rows.Next() {
		var rating domain.Rating
		var techID sql.NullInt64
		var review sql.NullString
		var serviceQuality, punctuality, professionalism sql.NullInt64

		err := rows.Scan(
			&rating.ID,
			&rating.OrderID,
			&rating.CustomerID,
			&techID,
			&rating.Rating,
			&review,
			&serviceQuality,
			&punctuality,
			&professionalism,
			&rating.IsVerified,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan rating", zap.Error(err))
			return nil, err
		}

		if techID.Valid {
			rating.TechnicianID = &techID.Int64
		}
		if review.Valid {
			rating.Review = &review.String
		}
		if serviceQuality.Valid {
			v := int(serviceQuality.Int64)
			rating.ServiceQuality = &v
		}
		if punctuality.Valid {
			v := int(punctuality.Int64)
			rating.Punctuality = &v
		}
		if professionalism.Valid {
			v := int(professionalism.Int64)
			rating.Professionalism = &v
		}

		ratings = append(ratings, &rating)
	}

	return ratings, rows.Err()
}
