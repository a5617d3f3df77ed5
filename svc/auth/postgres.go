package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkvaulthq/linkvault/pkg/pg"
)

// PostgresStorage implements Storage on a pgx connection pool.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates the Postgres-backed user store.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

const userColumns = `id, email, name, password_hash, google_id, is_verified,
	last_login_at, verification_token, verification_expires_at,
	reset_token, reset_expires_at, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.GoogleID, &u.IsVerified,
		&u.LastLoginAt, &u.VerificationToken, &u.VerificationExpiresAt,
		&u.ResetToken, &u.ResetExpiresAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (
			id, email, name, password_hash, google_id, is_verified,
			verification_token, verification_expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.GoogleID,
		user.IsVerified, user.VerificationToken, user.VerificationExpiresAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.getUser(ctx, "id = $1", id)
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.getUser(ctx, "email = $1", email)
}

func (s *PostgresStorage) GetUserByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return s.getUser(ctx, "google_id = $1", googleID)
}

func (s *PostgresStorage) getUser(ctx context.Context, where string, arg any) (*User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM users WHERE %s", userColumns, where), arg))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *PostgresStorage) GetUserByResetToken(ctx context.Context, token string) (*User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, fmt.Sprintf(
		"SELECT %s FROM users WHERE reset_token = $1 AND reset_expires_at > now()",
		userColumns), token))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get user by reset token: %w", err)
	}
	return u, nil
}

func (s *PostgresStorage) SetVerificationToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET verification_token = $2, verification_expires_at = $3, updated_at = now()
		WHERE id = $1`,
		userID, token, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("set verification token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeVerificationToken relies on the guarded UPDATE to serialize
// concurrent attempts: only one statement can match the token row before the
// token is cleared.
func (s *PostgresStorage) ConsumeVerificationToken(ctx context.Context, token string) (*User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE users
		SET is_verified = TRUE,
			verification_token = NULL,
			verification_expires_at = NULL,
			updated_at = now()
		WHERE verification_token = $1 AND verification_expires_at > now()
		RETURNING %s`, userColumns), token))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("consume verification token: %w", err)
	}
	return u, nil
}

func (s *PostgresStorage) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET reset_token = $2, reset_expires_at = $3, updated_at = now()
		WHERE id = $1`,
		userID, token, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE users
		SET password_hash = $2,
			reset_token = NULL,
			reset_expires_at = NULL,
			updated_at = now()
		WHERE reset_token = $1 AND reset_expires_at > now()
		RETURNING %s`, userColumns), token, newPasswordHash))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return u, nil
}

func (s *PostgresStorage) LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET google_id = $2, is_verified = TRUE, updated_at = now()
		WHERE id = $1`,
		userID, googleID,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("link google id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID, at time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET last_login_at = $2, updated_at = now() WHERE id = $1`,
		userID, at,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
