package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/pkg/log"
	"github.com/savelyeva-d/auth-core/internal/pkg/redact"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// ForgotPassword запускает восстановление пароля.
//
// Ответ намеренно одинаков для существующего и отсутствующего e-mail:
// эндпоинт не должен служить оракулом перебора адресов. Токен сброса
// уходит консьюмеру событий (почтовому сервису), не клиенту.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	const op = "service.password_reset.ForgotPassword"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		// Некорректный адрес неотличим от незарегистрированного.
		return nil
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("password_reset_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
			)
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !user.Active {
		return nil
	}

	resetToken, err := s.createSingleUseToken(ctx, user.ID, models.TokenKindPasswordReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypePasswordResetRequested,
		UserID:     user.ID,
		TenantID:   user.TenantID,
		OccurredAt: time.Now().UTC(),
		Data: map[string]string{
			"email":       user.Email,
			"reset_token": resetToken,
		},
	})

	return nil
}

// ResetPassword завершает восстановление: одноразовый токен + новый пароль.
// Токен расходуется атомарно (ровно одна успешная попытка), все refresh-токены
// пользователя отзываются, блокировка по неудачам снимается.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	const op = "service.password_reset.ResetPassword"

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	userID, err := s.storage.ConsumeSingleUseToken(ctx,
		security.HashToken(token), models.TokenKindPasswordReset, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		case errors.Is(err, storage.ErrExpired):
			return fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

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

	// Владелец подтвердил контроль над e-mail — счётчик неудач неактуален.
	if err := s.lockout.RecordSuccess(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypePasswordResetCompleted,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// ConfirmEmail подтверждает e-mail одноразовым токеном из письма регистрации.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	const op = "service.password_reset.ConfirmEmail"

	userID, err := s.storage.ConsumeSingleUseToken(ctx,
		security.HashToken(token), models.TokenKindEmailVerify, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		case errors.Is(err, storage.ErrExpired):
			return fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.MarkEmailVerified(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// createSingleUseToken выпускает одноразовый токен указанного вида и кладёт
// в БД его хэш, гася прежние неиспользованные токены того же вида.
func (s *Service) createSingleUseToken(ctx context.Context, userID uuid.UUID, kind models.TokenKind, ttl time.Duration) (string, error) {
	const op = "service.password_reset.createSingleUseToken"

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	plain := base64.RawURLEncoding.EncodeToString(b)

	now := time.Now().UTC()
	token := &models.SingleUseToken{
		TokenHash: security.HashToken(plain),
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.storage.CreateSingleUseToken(ctx, token); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return plain, nil
}
