package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type technicianTrackingRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTechnicianTrackingRepository creates a new technician tracking repository
func NewTechnicianTrackingRepository(db *sql.DB, logger *zap.Logger) *technicianTrackingRepository {
	return &technicianTrackingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *technicianTrackingRepository) Create(ctx context.Context, location *domain.TechnicianLocation) error {
	query := `
		INSERT INTO technician_tracking (technician_id, order_id, latitude, longitude,
			accuracy, status, eta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	now := time.Now()
	if location.CreatedAt.IsZero() {
		location.CreatedAt = now
	}
	if location.UpdatedAt.IsZero() {
		location.UpdatedAt = now
	}

	err := r.db.QueryRowContext(ctx, query,
		location.TechnicianID,
		location.OrderID,
		location.Latitude,
		location.Longitude,
		location.Accuracy,
		location.Status,
		location.ETA,
		location.CreatedAt,
		location.UpdatedAt,
	).Scan(&location.ID)

	if err != nil {
		r.logger.Error("Failed to create technician location", zap.Error(err))
		return err
	}

	return nil
}

func (r *technicianTrackingRepository) GetLatestByOrderID(ctx context.Context, orderID int64) (*domain.TechnicianLocation, error) {
	query := `
		SELECT id, technician_id, order_id, latitude, longitude, accuracy, status, eta, created_at, updated_at
		FROM technician_tracking
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var location domain.TechnicianLocation
	var ordID sql.NullInt64
	var accuracy sql.NullInt64
	var eta sql.NullTime

	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&location.ID,
		&location.TechnicianID,
		&ordID,
		&location.Latitude,
		&location.Longitude,
		&accuracy,
		&location.Status,
		&eta,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "technician location", ID: formatID(orderID)}
	}
	if err != nil {
		r.logger.Error("Failed to get latest technician location", zap.Error(err))
		return nil, err
	}

	if ordID.Valid {
		location.OrderID = &ordID.Int64
	}
	if accuracy.Valid {
		v := int(accuracy.Int64)
		location.Accuracy = &v
	}
	if eta.Valid {
		location.ETA = &eta.Time
	}

	return &location, nil
}
