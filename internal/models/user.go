package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись в мульти-тенантной системе.
//
// Особенности:
//   - Email хранится в нормализованном виде (lower-case, trim);
//   - PasswordHash — bcrypt-хэш, исходный пароль нигде не сохраняется;
//   - MFASecretEnc — зашифрованный TOTP-секрет (AES-GCM) либо пустая строка,
//     если MFA не настраивалась; в degraded-режиме (без ключа шифрования)
//     содержит секрет открытым текстом;
//   - DeletedAt — мягкое удаление: запись физически не удаляется.
type User struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Email         string
	Role          string
	PasswordHash  string
	Active        bool
	EmailVerified bool
	MFAEnabled    bool
	MFASecretEnc  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// MFAPending — секрет сгенерирован, но включение ещё не подтверждено кодом.
func (u *User) MFAPending() bool {
	return !u.MFAEnabled && u.MFASecretEnc != ""
}
