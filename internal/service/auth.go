package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/pkg/log"
	"github.com/savelyeva-d/auth-core/internal/pkg/redact"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// LoginResult — исход успешной проверки пароля.
// Либо полноценная пара токенов, либо (при включённой MFA) токен челленджа,
// по которому клиент обязан предъявить второй фактор.
type LoginResult struct {
	MFARequired bool
	MFAToken    string
	Pair        *models.TokenPair
	UserID      uuid.UUID
}

// Register регистрирует нового пользователя в рамках тенанта.
// Эмитит user.registered с одноразовым токеном подтверждения e-mail.
func (s *Service) Register(ctx context.Context, tenantID uuid.UUID, email, password string) (*models.User, error) {
	const op = "service.auth.Register"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        normEmail,
		Role:         "user",
		PasswordHash: hashedPassword,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	verifyToken, err := s.createSingleUseToken(ctx, user.ID, models.TokenKindEmailVerify, s.cfg.VerifyTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypeUserRegistered,
		UserID:     user.ID,
		TenantID:   user.TenantID,
		OccurredAt: now,
		Data: map[string]string{
			"email":        user.Email,
			"verify_token": verifyToken,
		},
	})

	return user, nil
}

// Login выполняет вход по email+пароль с учётом блокировки по неудачам.
//
// Порядок жёсткий: проверка блокировки до сравнения пароля — заблокированная
// личность не получает оракула подбора. При включённой MFA пароль даёт
// только токен челленджа, сессия выпускается после второго фактора.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	locked, _, err := s.lockout.IsLocked(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if locked {
		return nil, fmt.Errorf("%s: %w", op, ErrAccountLocked)
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		lockedNow, err := s.lockout.RecordFailure(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if lockedNow {
			lg.Warn("account_locked",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrAccountLocked)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !user.Active {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := s.lockout.RecordSuccess(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.MFAEnabled {
		mfaToken, err := s.generateMFAChallengeToken(user, time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &LoginResult{MFARequired: true, MFAToken: mfaToken, UserID: user.ID}, nil
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &LoginResult{Pair: pair, UserID: user.ID}, nil
}

// MFAChallenge завершает вход вторым фактором: токен челленджа + TOTP либо
// резервный код. Неверные коды учитываются счётчиком блокировки наравне
// с неверными паролями.
func (s *Service) MFAChallenge(ctx context.Context, mfaToken, code string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.MFAChallenge"

	userID, err := s.verifyMFAChallengeToken(mfaToken)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	locked, _, err := s.lockout.IsLocked(ctx, userID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if locked {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrAccountLocked)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.Active {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	ok, err := s.verifyMFACode(ctx, user, code)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		lockedNow, err := s.lockout.RecordFailure(ctx, user.ID)
		if err != nil {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		if lockedNow {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrAccountLocked)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	if err := s.lockout.RecordSuccess(ctx, user.ID); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user.ID, nil
}

// ChangePassword меняет пароль аутентифицированного пользователя.
// Все refresh-токены отзываются: сессии, выпущенные под старым паролем,
// перестают действовать.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	const op = "service.auth.ChangePassword"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !security.CheckPassword(user.PasswordHash, oldPassword) {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypeSessionsRevoked,
		UserID:     userID,
		TenantID:   user.TenantID,
		OccurredAt: time.Now().UTC(),
		Data:       map[string]string{"reason": "password_change"},
	})

	return nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
