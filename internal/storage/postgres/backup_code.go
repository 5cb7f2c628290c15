package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReplaceBackupCodes транзакционно заменяет весь пакет резервных кодов:
// старый пакет удаляется целиком, новый вставляется одним батчем.
func (s *Storage) ReplaceBackupCodes(ctx context.Context, userID uuid.UUID, codeHashes []string) error {
	const op = "storage.postgres.ReplaceBackupCodes"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const del = `
		DELETE FROM backup_codes
		WHERE user_id = $1
	`

	if _, err := tx.Exec(ctx, del, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	const insert = `
		INSERT INTO backup_codes(user_id, code_hash)
		VALUES ($1, $2)
	`

	for _, hash := range codeHashes {
		if _, err := tx.Exec(ctx, insert, userID, hash); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeBackupCode атомарно помечает код использованным (CAS по used_at):
// из двух конкурентных попыток с одним кодом успешна ровно одна.
func (s *Storage) ConsumeBackupCode(ctx context.Context, userID uuid.UUID, codeHash string, now time.Time) (bool, error) {
	const op = "storage.postgres.ConsumeBackupCode"

	const upd = `
		UPDATE backup_codes
		SET used_at = $3
		WHERE user_id = $1 AND code_hash = $2 AND used_at IS NULL
	`

	cmdTag, err := s.db.Exec(ctx, upd, userID, codeHash, now)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// DeleteBackupCodes удаляет все коды пользователя.
func (s *Storage) DeleteBackupCodes(ctx context.Context, userID uuid.UUID) error {
	const op = "storage.postgres.DeleteBackupCodes"

	const query = `
		DELETE FROM backup_codes
		WHERE user_id = $1
	`

	if _, err := s.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CountUnusedBackupCodes возвращает число неиспользованных кодов.
func (s *Storage) CountUnusedBackupCodes(ctx context.Context, userID uuid.UUID) (int, error) {
	const op = "storage.postgres.CountUnusedBackupCodes"

	const query = `
		SELECT COUNT(*)
		FROM backup_codes
		WHERE user_id = $1 AND used_at IS NULL
	`

	var count int
	if err := s.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
