package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind — назначение одноразового токена.
type TokenKind string

const (
	// TokenKindPasswordReset — токен сброса пароля.
	TokenKindPasswordReset TokenKind = "password_reset"
	// TokenKindEmailVerify — токен подтверждения e-mail.
	TokenKindEmailVerify TokenKind = "email_verify"
)

// SingleUseToken — одноразовый токен (сброс пароля / подтверждение e-mail).
//
// Инварианты:
//   - используется ровно один раз и только до ExpiresAt;
//   - создание нового токена того же вида гасит все прежние
//     неиспользованные токены пользователя.
type SingleUseToken struct {
	TokenHash string
	UserID    uuid.UUID
	Kind      TokenKind
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}
