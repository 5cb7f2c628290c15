// security содержит криптографические примитивы ядра:
// шифрование TOTP-секретов на хранении (AES-256-GCM) и хэширование
// паролей/резервных кодов.
package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidKey — ключ не hex или не 32 байта.
	ErrInvalidKey = errors.New("invalid cipher key: want 32 bytes hex-encoded")
	// ErrCiphertextTooShort — вход короче nonce, расшифровка невозможна.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Cipher — симметричное аутентифицированное шифрование секретов на хранении.
//
// Формат: base64(nonce || ciphertext || tag), свежий случайный nonce на каждый
// вызов. Расшифровка fail-closed: любое повреждение/подмена — ошибка, а не
// мусор на выходе.
//
// Пустой ключ переводит Cipher в degraded-режим: Encrypt/Decrypt возвращают
// вход как есть. Сервис обязан стартовать и без ключа (спецвопрос эксплуатации),
// но предупреждение об этом пишет вызывающая сторона.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher создаёт Cipher из hex-кодированного 32-байтового ключа.
// Пустая строка — валидный degraded-режим без шифрования.
func NewCipher(keyHex string) (*Cipher, error) {
	const op = "security.NewCipher"

	if keyHex == "" {
		return &Cipher{}, nil
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Cipher{aead: aead}, nil
}

// Enabled сообщает, настроено ли реальное шифрование.
func (c *Cipher) Enabled() bool { return c.aead != nil }

// Encrypt шифрует plaintext; в degraded-режиме возвращает вход без изменений.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	const op = "security.Cipher.Encrypt"

	if c.aead == nil {
		return plaintext, nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt расшифровывает значение, полученное из Encrypt.
// Возвращает ошибку при любом нарушении целостности.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	const op = "security.Cipher.Decrypt"

	if c.aead == nil {
		return ciphertext, nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("%s: %w", op, ErrCiphertextTooShort)
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]

	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(plain), nil
}
