package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIntegration_ReplaceBackupCodes_And_Count(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	hashes := []string{"h1", "h2", "h3"}

	require.NoError(t, st.ReplaceBackupCodes(context.Background(), userID, hashes))

	count, err := st.CountUnusedBackupCodes(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

// CAS-расход: первый раз true, повторно тем же кодом — false.
func TestIntegration_ConsumeBackupCode_CAS(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	require.NoError(t, st.ReplaceBackupCodes(context.Background(), userID, []string{"h1", "h2"}))

	ok, err := st.ConsumeBackupCode(context.Background(), userID, "h1", time.Now().UTC())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.ConsumeBackupCode(context.Background(), userID, "h1", time.Now().UTC())
	require.NoError(t, err)
	require.False(t, ok)

	count, err := st.CountUnusedBackupCodes(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestIntegration_ConsumeBackupCode_Unknown(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ok, err := st.ConsumeBackupCode(context.Background(), uuid.New(), "absent", time.Now().UTC())
	require.NoError(t, err)
	require.False(t, ok)
}

// Чужой код владельцем не расходуется: ключ — пара (user_id, code_hash).
func TestIntegration_ConsumeBackupCode_ForeignUser(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	require.NoError(t, st.ReplaceBackupCodes(context.Background(), owner, []string{"h1"}))

	ok, err := st.ConsumeBackupCode(context.Background(), uuid.New(), "h1", time.Now().UTC())
	require.NoError(t, err)
	require.False(t, ok)
}

// Перевыпуск заменяет пакет целиком: старые коды перестают действовать.
func TestIntegration_ReplaceBackupCodes_ReplacesBatch(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	require.NoError(t, st.ReplaceBackupCodes(context.Background(), userID, []string{"old-1", "old-2"}))
	require.NoError(t, st.ReplaceBackupCodes(context.Background(), userID, []string{"new-1"}))

	ok, err := st.ConsumeBackupCode(context.Background(), userID, "old-1", time.Now().UTC())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.ConsumeBackupCode(context.Background(), userID, "new-1", time.Now().UTC())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIntegration_DeleteBackupCodes(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	require.NoError(t, st.ReplaceBackupCodes(context.Background(), userID, []string{"h1", "h2"}))

	require.NoError(t, st.DeleteBackupCodes(context.Background(), userID))

	count, err := st.CountUnusedBackupCodes(context.Background(), userID)
	require.NoError(t, err)
	require.Zero(t, count)
}
