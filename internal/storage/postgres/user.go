package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

const userColumns = `
	id, tenant_id, email, role, password_hash,
	active, email_verified, mfa_enabled, COALESCE(mfa_secret_enc, ''),
	created_at, updated_at, deleted_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.TenantID,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.Active,
		&user.EmailVerified,
		&user.MFAEnabled,
		&user.MFASecretEnc,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, tenant_id, email, role, password_hash,
		                  active, email_verified, mfa_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.TenantID,
		user.Email,
		user.Role,
		user.PasswordHash,
		user.Active,
		user.EmailVerified,
		user.MFAEnabled,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByEmail находит пользователя по email; мягко удалённые исключаются.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	user, err := scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID находит пользователя по ID; мягко удалённые исключаются.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdatePassword заменяет хэш пароля.
func (s *Storage) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const op = "storage.postgres.UpdatePassword"

	query := `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdateMFASecret сохраняет зашифрованный TOTP-секрет, не трогая флаг.
func (s *Storage) UpdateMFASecret(ctx context.Context, id uuid.UUID, secretEnc string) error {
	const op = "storage.postgres.UpdateMFASecret"

	query := `
		UPDATE users
		SET mfa_secret_enc = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id, secretEnc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// EnableMFA включает MFA для пользователя.
func (s *Storage) EnableMFA(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.EnableMFA"

	query := `
		UPDATE users
		SET mfa_enabled = TRUE, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DisableMFA выключает MFA и очищает секрет.
func (s *Storage) DisableMFA(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DisableMFA"

	query := `
		UPDATE users
		SET mfa_enabled = FALSE, mfa_secret_enc = NULL, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// MarkEmailVerified помечает e-mail подтверждённым.
func (s *Storage) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.MarkEmailVerified"

	query := `
		UPDATE users
		SET email_verified = TRUE, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeactivateUser мягко удаляет учётную запись.
func (s *Storage) DeactivateUser(ctx context.Context, id uuid.UUID, now time.Time) error {
	const op = "storage.postgres.DeactivateUser"

	query := `
		UPDATE users
		SET active = FALSE, deleted_at = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, query, id, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
