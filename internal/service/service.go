// service содержит бизнес-логику ядра аутентификации:
// регистрацию/вход, выпуск и ротацию токенов с детекцией повторного
// использования, блокировку по неудачным попыткам, MFA (TOTP + резервные
// коды) и восстановление пароля.
//
// Основные аспекты:
//   - Экземпляр Service не хранит состояние запроса и безопасен для
//     конкурентного использования при потокобезопасных зависимостях;
//   - вся атомарность конкурентных сценариев лежит на хранилищах
//     (CAS в Postgres, INCR в Redis), in-process блокировок нет;
//   - ошибки возвращаются и далее маппятся
//     транспортом на HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/savelyeva-d/auth-core/internal/config"
	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/lockout"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна, пользователь не найден
	// или деактивирован. Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountLocked — личность временно заблокирована по числу неудачных
	// попыток. Транспорт: HTTP 423.
	ErrAccountLocked = errors.New("account locked")

	// ErrInvalidToken — токен (access/refresh/одноразовый) некорректен по
	// формату/подписи или отсутствует в хранилище. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrReplayDetected — предъявлен уже ротированный/отозванный refresh-токен;
	// все сессии личности отозваны как скомпрометированные. Транспорт: HTTP 401.
	ErrReplayDetected = errors.New("refresh token replay detected")

	// ErrEmailTaken — e-mail уже занят другим пользователем. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен (крайне редкие коллизии хэша в БД). Транспорт: HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrMFAAlreadyEnabled — MFA уже включена, повторная настройка невозможна.
	// Транспорт: HTTP 409.
	ErrMFAAlreadyEnabled = errors.New("mfa already enabled")

	// ErrMFANotEnabled — операция требует включённой MFA. Транспорт: HTTP 409.
	ErrMFANotEnabled = errors.New("mfa not enabled")

	// ErrMFANotPending — подтверждение MFA без начатой настройки.
	// Транспорт: HTTP 409.
	ErrMFANotPending = errors.New("mfa enrollment not pending")

	// ErrInvalidCode — TOTP/резервный код неверен. Транспорт: HTTP 401.
	ErrInvalidCode = errors.New("invalid verification code")
)

// Service описывает бизнес-логику ядра аутентификации.
type Service struct {
	storage storage.Storage
	lockout lockout.Counter
	events  events.Publisher
	cipher  *security.Cipher
	cfg     config.AuthConfig
	mfaCfg  config.MFAConfig
}

// New создаёт новый экземпляр Service.
func New(
	storage storage.Storage,
	lockout lockout.Counter,
	events events.Publisher,
	cipher *security.Cipher,
	cfg config.AuthConfig,
	mfaCfg config.MFAConfig,
) *Service {
	return &Service{
		storage: storage,
		lockout: lockout,
		events:  events,
		cipher:  cipher,
		cfg:     cfg,
		mfaCfg:  mfaCfg,
	}
}
