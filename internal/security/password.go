package security

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword хэширует пароль с помощью bcrypt (адаптивный, с солью).
func HashPassword(password string) (string, error) {
	const op = "security.HashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// CheckPassword сравнивает пароль с bcrypt-хэшем.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashBackupCode — быстрый keyed-хэш резервного кода, посоленный владельцем.
// Резервные коды — высокоэнтропийные случайные значения, адаптивный хэш им не
// нужен; достаточно защиты от rainbow-таблиц при краже БД. Соль по userID
// исключает сопоставление одинаковых кодов между пользователями.
func HashBackupCode(userID uuid.UUID, code string) string {
	sum := sha256.Sum256([]byte(userID.String() + ":" + code))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// HashToken — SHA-256 хэш токена для хранения в БД (refresh / одноразовые).
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
