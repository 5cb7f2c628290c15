package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// CreateSingleUseToken в одной транзакции гасит прежние неиспользованные
// токены того же вида у пользователя и сохраняет новый.
func (s *Storage) CreateSingleUseToken(ctx context.Context, token *models.SingleUseToken) error {
	const op = "storage.postgres.CreateSingleUseToken"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const invalidate = `
		UPDATE single_use_tokens
		SET used_at = $3
		WHERE user_id = $1 AND kind = $2 AND used_at IS NULL
	`

	if _, err := tx.Exec(ctx, invalidate, token.UserID, token.Kind, token.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	const insert = `
		INSERT INTO single_use_tokens(token_hash, user_id, kind, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := tx.Exec(ctx, insert,
		token.TokenHash,
		token.UserID,
		token.Kind,
		token.CreatedAt,
		token.ExpiresAt,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeSingleUseToken атомарно расходует токен: CAS по used_at IS NULL,
// поэтому из конкурентных вызовов успешен ровно один.
func (s *Storage) ConsumeSingleUseToken(ctx context.Context, hash string, kind models.TokenKind, now time.Time) (uuid.UUID, error) {
	const op = "storage.postgres.ConsumeSingleUseToken"

	const upd = `
		UPDATE single_use_tokens
		SET used_at = $3
		WHERE token_hash = $1 AND kind = $2 AND used_at IS NULL AND expires_at > $3
		RETURNING user_id
	`

	var userID uuid.UUID
	err := s.db.QueryRow(ctx, upd, hash, kind, now).Scan(&userID)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	// Различаем «нет/использован» и «есть, но просрочен».
	const sel = `
		SELECT expires_at, used_at
		FROM single_use_tokens
		WHERE token_hash = $1 AND kind = $2
	`

	var expiresAt time.Time
	var usedAt *time.Time
	err = s.db.QueryRow(ctx, sel, hash, kind).Scan(&expiresAt, &usedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if usedAt == nil && !expiresAt.After(now) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrExpired)
	}

	return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// DeleteExpiredSingleUseTokens удаляет просроченные одноразовые токены.
func (s *Storage) DeleteExpiredSingleUseTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredSingleUseTokens"

	query := `
		DELETE FROM single_use_tokens
		WHERE expires_at <= $1
	`

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
