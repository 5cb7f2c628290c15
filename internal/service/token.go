package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/pkg/log"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// Классы токенов в claim "typ". Верификатор каждого класса принимает
// только свой тип: MFA-челлендж не даёт доступа к API, access-токен
// не ротируется как refresh.
const (
	typAccess       = "access"
	typRefresh      = "refresh"
	typMFAChallenge = "mfa"
)

type tokenClaims struct {
	UserID    string `json:"uid"`
	TenantID  string `json:"tid"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Identity — результат интроспекции access-токена.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     string
}

// ValidateAccessToken проверяет access-токен и возвращает личность владельца.
// Токены других классов (refresh, MFA-челлендж) отклоняются.
func (s *Service) ValidateAccessToken(ctx context.Context, accessToken string) (*Identity, error) {
	const op = "service.token.ValidateAccessToken"

	claims, err := s.parseToken(accessToken, typAccess, []byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	tid, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Identity{
		UserID:   uid,
		TenantID: tid,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// Refresh ротирует пару токенов по refresh-токену.
//
// Детекция повторного использования: предъявление уже отозванного или
// просроченного (по записи в БД) токена трактуется как компрометация —
// отзываются все активные сессии личности. При конкурентной двойной ротации
// победителя определяет CAS-отзыв в БД; проигравший идёт по пути replay.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.token.Refresh"

	lg := log.From(ctx)

	// Просроченная подпись не прерывает проверку: запись в БД всё ещё
	// нужна для детекции replay просроченным токеном.
	claims, err := s.parseToken(refreshToken, typRefresh, []byte(s.cfg.RefreshSecret))
	if err != nil && !errors.Is(err, ErrTokenExpired) {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	claimedUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	hash := security.HashToken(refreshToken)

	row, err := s.storage.RefreshTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if row.UserID != claimedUID {
		lg.Warn("refresh_owner_mismatch",
			slog.String("op", op),
			slog.String("user_id", row.UserID.String()),
		)
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	now := time.Now().UTC()

	if row.Revoked || now.After(row.ExpiresAt) {
		return nil, uuid.Nil, s.failReplay(ctx, op, row.UserID)
	}

	revoked, err := s.storage.RevokeRefreshToken(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	// Проигрыш CAS: токен отозван конкурентным запросом между чтением
	// и ротацией — тот же replay-путь.
	if !revoked {
		return nil, uuid.Nil, s.failReplay(ctx, op, row.UserID)
	}

	user, err := s.storage.UserByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.Active {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user.ID, nil
}

// Revoke отзывает refresh-токен (logout). Идемпотентен: повторный отзыв
// уже отозванного токена — успех.
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	const op = "service.token.Revoke"

	hash := security.HashToken(refreshToken)

	if _, err := s.storage.RevokeRefreshToken(ctx, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// failReplay отзывает все сессии личности и возвращает ErrReplayDetected.
func (s *Service) failReplay(ctx context.Context, op string, userID uuid.UUID) error {
	lg := log.From(ctx)

	lg.Warn("refresh_replay_detected",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	if err := s.storage.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.TypeSessionsRevoked,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Data:       map[string]string{"reason": "refresh_replay"},
	})

	return fmt.Errorf("%s: %w", op, ErrReplayDetected)
}

// issueTokenPair выпускает новую пару access+refresh токенов.
func (s *Service) issueTokenPair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.signToken(tokenClaims{
		UserID:    user.ID.String(),
		TenantID:  user.TenantID.String(),
		Email:     user.Email,
		Role:      user.Role,
		TokenType: typAccess,
		RegisteredClaims: s.registeredClaims(user.ID, now, s.cfg.AccessTokenTTL),
	}, []byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.generateRefreshToken(ctx, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

// generateRefreshToken выпускает refresh-токен и сохраняет его хэш в БД.
// Уникальный jti на каждую попытку; коллизия хэша — повторная генерация.
func (s *Service) generateRefreshToken(ctx context.Context, user *models.User, now time.Time) (string, error) {
	const (
		op          = "service.token.generateRefreshToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		signed, err := s.signToken(tokenClaims{
			UserID:    user.ID.String(),
			TenantID:  user.TenantID.String(),
			TokenType: typRefresh,
			RegisteredClaims: s.registeredClaims(user.ID, now, s.cfg.RefreshTokenTTL),
		}, []byte(s.cfg.RefreshSecret))
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		token := &models.RefreshToken{
			RefreshTokenHash: security.HashToken(signed),
			UserID:           user.ID,
			CreatedAt:        now,
			ExpiresAt:        now.Add(s.cfg.RefreshTokenTTL),
			Revoked:          false,
		}

		if err := s.storage.SaveRefreshToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_refresh_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		return signed, nil
	}

	lg.Error("refresh_collision_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrRefreshTokenCollision)
}

// generateMFAChallengeToken выпускает короткоживущий токен MFA-челленджа.
// Это ещё не сессия: с ним можно только предъявить код второго фактора.
func (s *Service) generateMFAChallengeToken(user *models.User, now time.Time) (string, error) {
	const op = "service.token.generateMFAChallengeToken"

	signed, err := s.signToken(tokenClaims{
		UserID:    user.ID.String(),
		TenantID:  user.TenantID.String(),
		TokenType: typMFAChallenge,
		RegisteredClaims: s.registeredClaims(user.ID, now, s.cfg.MFAChallengeTTL),
	}, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// verifyMFAChallengeToken валидирует токен MFA-челленджа и возвращает владельца.
func (s *Service) verifyMFAChallengeToken(mfaToken string) (uuid.UUID, error) {
	const op = "service.token.verifyMFAChallengeToken"

	claims, err := s.parseToken(mfaToken, typMFAChallenge, []byte(s.cfg.JWTSecret))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, nil
}

func (s *Service) registeredClaims(userID uuid.UUID, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.cfg.Issuer,
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings(s.cfg.Audience),
	}
}

func (s *Service) signToken(claims tokenClaims, key []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// parseToken валидирует подпись и registered-claims токена и сверяет класс.
// При просроченном, но в остальном корректном токене возвращает claims
// вместе с ErrTokenExpired: вызывающий решает, что делать с таким токеном.
func (s *Service) parseToken(tokenStr, wantType string, key []byte) (*tokenClaims, error) {
	const op = "service.token.parseToken"

	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
	)

	expired := false
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		expired = true
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if expired {
		return claims, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return claims, nil
}
