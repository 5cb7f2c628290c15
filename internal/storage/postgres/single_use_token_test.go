package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

func seedSingleUseToken(t *testing.T, st *Storage, userID uuid.UUID, hash string, kind models.TokenKind, ttl time.Duration) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, st.CreateSingleUseToken(context.Background(), &models.SingleUseToken{
		TokenHash: hash,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}))
}

func TestIntegration_SingleUseToken_CreateAndConsume_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	seedSingleUseToken(t, st, userID, "reset-1", models.TokenKindPasswordReset, time.Hour)

	got, err := st.ConsumeSingleUseToken(context.Background(), "reset-1", models.TokenKindPasswordReset, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

// Повторное расходование — ErrNotFound: токен строго одноразовый.
func TestIntegration_SingleUseToken_DoubleConsume(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	seedSingleUseToken(t, st, userID, "reset-2", models.TokenKindPasswordReset, time.Hour)

	_, err := st.ConsumeSingleUseToken(context.Background(), "reset-2", models.TokenKindPasswordReset, time.Now().UTC())
	require.NoError(t, err)

	_, err = st.ConsumeSingleUseToken(context.Background(), "reset-2", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SingleUseToken_Expired(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedSingleUseToken(t, st, uuid.New(), "reset-old", models.TokenKindPasswordReset, -time.Minute)

	_, err := st.ConsumeSingleUseToken(context.Background(), "reset-old", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrExpired)
}

func TestIntegration_SingleUseToken_Unknown(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ConsumeSingleUseToken(context.Background(), "absent", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Токен одного вида не расходуется под другим видом.
func TestIntegration_SingleUseToken_KindMismatch(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedSingleUseToken(t, st, uuid.New(), "verify-1", models.TokenKindEmailVerify, time.Hour)

	_, err := st.ConsumeSingleUseToken(context.Background(), "verify-1", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Повторный запрос гасит предыдущий токен того же вида:
// действующим остаётся только последний.
func TestIntegration_SingleUseToken_NewInvalidatesOld(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	seedSingleUseToken(t, st, userID, "reset-old-req", models.TokenKindPasswordReset, time.Hour)
	seedSingleUseToken(t, st, userID, "reset-new-req", models.TokenKindPasswordReset, time.Hour)

	_, err := st.ConsumeSingleUseToken(context.Background(), "reset-old-req", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)

	got, err := st.ConsumeSingleUseToken(context.Background(), "reset-new-req", models.TokenKindPasswordReset, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

// Токены разных видов не мешают друг другу при перевыпуске.
func TestIntegration_SingleUseToken_KindsIndependent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	seedSingleUseToken(t, st, userID, "verify-keep", models.TokenKindEmailVerify, time.Hour)
	seedSingleUseToken(t, st, userID, "reset-keep", models.TokenKindPasswordReset, time.Hour)

	got, err := st.ConsumeSingleUseToken(context.Background(), "verify-keep", models.TokenKindEmailVerify, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestIntegration_DeleteExpiredSingleUseTokens(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	seedSingleUseToken(t, st, userID, "gone", models.TokenKindPasswordReset, -time.Minute)
	seedSingleUseToken(t, st, uuid.New(), "kept", models.TokenKindEmailVerify, time.Hour)

	require.NoError(t, st.DeleteExpiredSingleUseTokens(context.Background(), time.Now().UTC()))

	_, err := st.ConsumeSingleUseToken(context.Background(), "gone", models.TokenKindPasswordReset, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.ConsumeSingleUseToken(context.Background(), "kept", models.TokenKindEmailVerify, time.Now().UTC())
	require.NoError(t, err)
}
