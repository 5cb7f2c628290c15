package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/pkg/log"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// Enrollment — материал настройки MFA, отдаваемый клиенту один раз.
type Enrollment struct {
	Secret          string
	ProvisioningURI string
}

// MFAStatus — текущее состояние MFA пользователя.
type MFAStatus struct {
	Enabled           bool
	Pending           bool
	UnusedBackupCodes int
}

// BeginEnrollment начинает настройку MFA: генерирует TOTP-секрет, шифрует
// его на хранении и возвращает секрет с provisioning-URI для аутентификатора.
// Повторный вызов до подтверждения перегенерирует секрет.
func (s *Service) BeginEnrollment(ctx context.Context, userID uuid.UUID) (*Enrollment, error) {
	const op = "service.mfa.BeginEnrollment"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.MFAEnabled {
		return nil, fmt.Errorf("%s: %w", op, ErrMFAAlreadyEnabled)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.mfaCfg.TOTPIssuer,
		AccountName: user.Email,
		SecretSize:  20,
		Algorithm:   otp.AlgorithmSHA1,
		Digits:      otp.DigitsSix,
		Period:      30,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	secretEnc, err := s.cipher.Encrypt(key.Secret())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateMFASecret(ctx, userID, secretEnc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Enrollment{
		Secret:          key.Secret(),
		ProvisioningURI: key.URL(),
	}, nil
}

// ConfirmEnrollment подтверждает настройку MFA кодом из аутентификатора.
// Включает MFA и возвращает свежий пакет резервных кодов — единственный
// момент, когда коды существуют в открытом виде.
func (s *Service) ConfirmEnrollment(ctx context.Context, userID uuid.UUID, code string) ([]string, error) {
	const op = "service.mfa.ConfirmEnrollment"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.MFAEnabled {
		return nil, fmt.Errorf("%s: %w", op, ErrMFAAlreadyEnabled)
	}

	if !user.MFAPending() {
		return nil, fmt.Errorf("%s: %w", op, ErrMFANotPending)
	}

	ok, err := s.checkTOTP(ctx, user, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	if err := s.storage.EnableMFA(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	codes, err := s.replaceBackupCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypeMFAEnabled,
		UserID:     userID,
		TenantID:   user.TenantID,
		OccurredAt: time.Now().UTC(),
	})

	return codes, nil
}

// Disable выключает MFA после проверки действующего кода (TOTP или резервного).
// Секрет и резервные коды удаляются.
func (s *Service) Disable(ctx context.Context, userID uuid.UUID, code string) error {
	const op = "service.mfa.Disable"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !user.MFAEnabled {
		return fmt.Errorf("%s: %w", op, ErrMFANotEnabled)
	}

	ok, err := s.verifyMFACode(ctx, user, code)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	if err := s.storage.DisableMFA(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteBackupCodes(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypeMFADisabled,
		UserID:     userID,
		TenantID:   user.TenantID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// RegenerateBackupCodes заменяет пакет резервных кодов на новый.
// Авторизуется действующим кодом: резервный код тоже годится — пользователь
// без аутентификатора и с последним кодом должен суметь выпустить новые.
func (s *Service) RegenerateBackupCodes(ctx context.Context, userID uuid.UUID, code string) ([]string, error) {
	const op = "service.mfa.RegenerateBackupCodes"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.MFAEnabled {
		return nil, fmt.Errorf("%s: %w", op, ErrMFANotEnabled)
	}

	ok, err := s.verifyMFACode(ctx, user, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
	}

	codes, err := s.replaceBackupCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return codes, nil
}

// Status возвращает состояние MFA и число неиспользованных резервных кодов.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*MFAStatus, error) {
	const op = "service.mfa.Status"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := &MFAStatus{
		Enabled: user.MFAEnabled,
		Pending: user.MFAPending(),
	}

	if user.MFAEnabled {
		count, err := s.storage.CountUnusedBackupCodes(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		status.UnusedBackupCodes = count
	}

	return status, nil
}

// verifyMFACode проверяет второй фактор: сначала TOTP, затем атомарный
// расход совпавшего резервного кода. false — кода нет, это не ошибка.
func (s *Service) verifyMFACode(ctx context.Context, user *models.User, code string) (bool, error) {
	const op = "service.mfa.verifyMFACode"

	if !user.MFAEnabled {
		return false, nil
	}

	ok, err := s.checkTOTP(ctx, user, code)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if ok {
		return true, nil
	}

	consumed, err := s.storage.ConsumeBackupCode(ctx, user.ID,
		security.HashBackupCode(user.ID, normalizeBackupCode(code)), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return consumed, nil
}

// checkTOTP сверяет TOTP-код с расшифрованным секретом пользователя.
// Ошибка расшифровки фатальна для операции (fail closed).
func (s *Service) checkTOTP(ctx context.Context, user *models.User, code string) (bool, error) {
	const op = "service.mfa.checkTOTP"

	lg := log.From(ctx)

	if user.MFASecretEnc == "" {
		return false, nil
	}

	secret, err := s.cipher.Decrypt(user.MFASecretEnc)
	if err != nil {
		lg.Error("mfa_secret_decrypt_failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
		)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false, nil
	}

	return ok, nil
}

// replaceBackupCodes генерирует свежий пакет кодов и транзакционно заменяет
// им все прежние. Возвращает коды в открытом виде.
func (s *Service) replaceBackupCodes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "service.mfa.replaceBackupCodes"

	codes := make([]string, 0, models.BackupCodeBatchSize)
	hashes := make([]string, 0, models.BackupCodeBatchSize)

	for i := 0; i < models.BackupCodeBatchSize; i++ {
		code, err := generateBackupCode()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		codes = append(codes, code)
		hashes = append(hashes, security.HashBackupCode(userID, code))
	}

	if err := s.storage.ReplaceBackupCodes(ctx, userID, hashes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return codes, nil
}

// generateBackupCode — 40 бит энтропии в виде "xxxxx-xxxxx" (hex).
func generateBackupCode() (string, error) {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	hexCode := hex.EncodeToString(b)

	return hexCode[:5] + "-" + hexCode[5:], nil
}

// normalizeBackupCode приводит ввод пользователя к каноническому виду кода.
func normalizeBackupCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
