package repository

import (
	"context"
	"errors"
	"fmt"

	"videogen-portal/internal/data/entity"
	"videogen-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned by Create when the unique index on email is
// violated. The constraint, not a check-then-insert, is what serializes
// concurrent registrations for the same address.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByToken(ctx context.Context, token string) (*entity.User, error)
	Confirm(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, email, company_name, role, password,
	       is_confirmed, confirm_token, created_at, updated_at`

// Create inserts a new account record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, company_name, role, password,
		                   is_confirmed, confirm_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.CompanyName,
		user.Role,
		user.PasswordHash,
		user.IsConfirmed,
		user.ConfirmToken,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := ur.scanOne(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	user, err := ur.scanOne(ur.db.QueryRow(ctx, query, email))
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE confirm_token = $1
	`

	user, err := ur.scanOne(ur.db.QueryRow(ctx, query, token))
	if err != nil {
		// The token value is secret material, keep it out of the log.
		ur.log.Error("Failed to find user by confirm token", zap.Error(err))
		return nil, fmt.Errorf("find user by confirm token: %w", err)
	}

	return user, nil
}

// Confirm flips the account to confirmed and consumes the token in one
// statement, so a second use of the same token finds no row.
func (ur *userRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET is_confirmed = true, confirm_token = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to confirm user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("confirm user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// scanOne scans a single account row, mapping no-rows to (nil, nil).
func (ur *userRepository) scanOne(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.CompanyName,
		&user.Role,
		&user.PasswordHash,
		&user.IsConfirmed,
		&user.ConfirmToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
