package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	// bcrypt hashes are salted, so a direct hash lookup is not possible.
	// Iterate active users and verify the token against each stored hash.
	query := `
		SELECT id, name, email, phone, role, api_token_hash, is_active, created_at, updated_at, last_signed_in
		FROM users
		WHERE is_active = true
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user domain.User

		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Role,
			&user.APITokenHash,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.LastSignedIn,
		)

		if err != nil {
			continue
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.APITokenHash), []byte(token)); err == nil {
			return &user, nil
		}
	}

	return nil, &errors.ErrUnauthorized{Message: "invalid API token"}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, role, api_token_hash, is_active, created_at, updated_at, last_signed_in
		FROM users
		WHERE id = $1
	`

	var user domain.User

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.APITokenHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastSignedIn,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "user", ID: formatID(id)}
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, phone, role, api_token_hash, is_active, created_at, updated_at, last_signed_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = now
	}

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.Role,
		user.APITokenHash,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
		user.LastSignedIn,
	).Scan(&user.ID)

	if err != nil {
		r.logger.Error("Failed to create user", zap.Error(err))
		return err
	}

	return nil
}

func (r *userRepository) UpdateLastSignedIn(ctx context.Context, id int64) error {
	query := `
		UPDATE users
		SET last_signed_in = $2, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("Failed to update last signed in", zap.Error(err))
		return err
	}

	return nil
}
