// storage задаёт контракт долговременного хранилища ядра аутентификации.
// Все мутации, участвующие в security-инвариантах (ротация refresh-токена,
// расход одноразового токена/резервного кода), выражены CAS-операциями:
// корректность под конкурентной нагрузкой обеспечивает БД, а не код сервиса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/savelyeva-d/auth-core/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен/код).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/refresh-token).
	ErrAlreadyExists = errors.New("already exists")
	// ErrExpired — сущность просрочена (одноразовый токен).
	ErrExpired = errors.New("expired")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email (мягко удалённые исключаются).
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID (мягко удалённые исключаются).
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdatePassword заменяет хэш пароля.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// UpdateMFASecret сохраняет (пере)сгенерированный зашифрованный секрет,
	// не меняя флаг включения.
	UpdateMFASecret(ctx context.Context, id uuid.UUID, secretEnc string) error
	// EnableMFA включает MFA для пользователя.
	EnableMFA(ctx context.Context, id uuid.UUID) error
	// DisableMFA выключает MFA и очищает секрет.
	DisableMFA(ctx context.Context, id uuid.UUID) error
	// MarkEmailVerified помечает e-mail подтверждённым.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	// DeactivateUser мягко удаляет учётную запись (active=false, deleted_at=now).
	DeactivateUser(ctx context.Context, id uuid.UUID, now time.Time) error
}

// RefreshTokenStorage выполняет операции над refresh-токенами.
type RefreshTokenStorage interface {
	// SaveRefreshToken сохраняет новый refresh-token в БД.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash находит refresh-токен по его хэшу.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshToken пытается отозвать refresh-токен (CAS).
	// Возвращает:
	//   (true, nil)  — токен был активен и отозван сейчас;
	//   (false, nil) — токен существует, но уже был отозван;
	//   (false, ErrNotFound) — токен не найден.
	RevokeRefreshToken(ctx context.Context, hash string) (bool, error)
	// RevokeAllByUser отзывает все активные refresh-токены пользователя.
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	// DeleteExpiredTokens удаляет все просроченные токены.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

// SingleUseTokenStorage — токены сброса пароля и подтверждения e-mail.
type SingleUseTokenStorage interface {
	// CreateSingleUseToken атомарно гасит прежние неиспользованные токены того
	// же вида у пользователя и сохраняет новый.
	CreateSingleUseToken(ctx context.Context, token *models.SingleUseToken) error
	// ConsumeSingleUseToken атомарно расходует токен: ровно один вызов
	// успешен. Возвращает владельца; ErrNotFound — токен отсутствует или уже
	// использован, ErrExpired — существует, но просрочен.
	ConsumeSingleUseToken(ctx context.Context, hash string, kind models.TokenKind, now time.Time) (uuid.UUID, error)
	// DeleteExpiredSingleUseTokens удаляет просроченные одноразовые токены.
	DeleteExpiredSingleUseTokens(ctx context.Context, now time.Time) error
}

// BackupCodeStorage — резервные коды MFA.
type BackupCodeStorage interface {
	// ReplaceBackupCodes транзакционно заменяет весь пакет кодов пользователя.
	ReplaceBackupCodes(ctx context.Context, userID uuid.UUID, codeHashes []string) error
	// ConsumeBackupCode атомарно помечает код использованным.
	// (true, nil) ровно для одного вызова на код; (false, nil) — совпадения нет.
	ConsumeBackupCode(ctx context.Context, userID uuid.UUID, codeHash string, now time.Time) (bool, error)
	// DeleteBackupCodes удаляет все коды пользователя.
	DeleteBackupCodes(ctx context.Context, userID uuid.UUID) error
	// CountUnusedBackupCodes возвращает число неиспользованных кодов.
	CountUnusedBackupCodes(ctx context.Context, userID uuid.UUID) (int, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	RefreshTokenStorage
	SingleUseTokenStorage
	BackupCodeStorage
	Close()
}
