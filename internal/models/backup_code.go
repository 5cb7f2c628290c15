package models

import (
	"time"

	"github.com/google/uuid"
)

// BackupCode — одноразовый резервный код MFA.
// Хранится только быстрый keyed-хэш значения; открытый текст кодов
// существует единственный раз — в момент выдачи пользователю.
type BackupCode struct {
	UserID   uuid.UUID
	CodeHash string
	UsedAt   *time.Time
}

// BackupCodeBatchSize — размер пакета резервных кодов, выдаваемого при
// включении MFA или перегенерации. Пакет всегда заменяется целиком.
const BackupCodeBatchSize = 10
