package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/storage"
)

// Интеграционные тесты пакета postgres:
// - поднимают реальный PostgreSQL через testcontainers-go (postgres:16-alpine);
// - применяют миграции из ./migrations;
// - проверяют контракты репозиториев (ErrNotFound/ErrAlreadyExists/ErrExpired,
//   CAS-семантику отзыва и расходования токенов).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает SQL-миграцию из каталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — временный PostgreSQL + все миграции схемы.
// Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, m := range []string{
		"1_init_users.up.sql",
		"2_init_refresh_tokens.up.sql",
		"3_init_single_use_tokens.up.sql",
		"4_init_backup_codes.up.sql",
	} {
		_, err = pool.Exec(ctx, readMigration(t, m))
		require.NoError(t, err, "apply migration %s", m)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// seedUser — вставляет валидного пользователя и возвращает его.
func seedUser(t *testing.T, st *Storage, email string) *models.User {
	t.Helper()

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Email:        email,
		Role:         "user",
		PasswordHash: "hash",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

func TestIntegration_SaveUser_And_Lookup_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "User@Example.Com")

	// CITEXT: поиск регистронезависим.
	byEmail, err := st.UserByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, u.TenantID, byEmail.TenantID)
	require.True(t, byEmail.Active)
	require.False(t, byEmail.MFAEnabled)
	require.WithinDuration(t, u.CreatedAt, byEmail.CreatedAt, time.Second)

	byID, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, byID.ID)
}

func TestIntegration_SaveUser_UniqueEmail_CaseInsensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedUser(t, st, "user@example.com")

	now := time.Now().UTC()
	dup := &models.User{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Email:        "USER@EXAMPLE.COM", // тот же email, другой регистр
		Role:         "user",
		PasswordHash: "h2",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := st.SaveUser(context.Background(), dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_UserLookup_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByEmail(context.Background(), "absent@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdatePassword_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "pw@example.com")

	require.NoError(t, st.UpdatePassword(context.Background(), u.ID, "new-hash"))

	got, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
}

func TestIntegration_UpdatePassword_UnknownUser(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.UpdatePassword(context.Background(), uuid.New(), "hash")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Жизненный цикл MFA на уровне хранилища:
// секрет -> включение -> выключение с очисткой секрета.
func TestIntegration_MFALifecycle(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "mfa@example.com")

	require.NoError(t, st.UpdateMFASecret(context.Background(), u.ID, "enc-secret"))

	got, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "enc-secret", got.MFASecretEnc)
	require.False(t, got.MFAEnabled)

	require.NoError(t, st.EnableMFA(context.Background(), u.ID))

	got, err = st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, got.MFAEnabled)

	require.NoError(t, st.DisableMFA(context.Background(), u.ID))

	got, err = st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.False(t, got.MFAEnabled)
	require.Empty(t, got.MFASecretEnc)
}

func TestIntegration_MarkEmailVerified(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "verify@example.com")

	require.NoError(t, st.MarkEmailVerified(context.Background(), u.ID))

	got, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, got.EmailVerified)
}

// Мягкое удаление прячет пользователя от всех выборок,
// email при этом остаётся занятым (UNIQUE на таблице).
func TestIntegration_DeactivateUser_HidesFromLookups(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "gone@example.com")

	require.NoError(t, st.DeactivateUser(context.Background(), u.ID, time.Now().UTC()))

	_, err := st.UserByID(context.Background(), u.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByEmail(context.Background(), "gone@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Повторная деактивация — уже нечего удалять.
	err = st.DeactivateUser(context.Background(), u.ID, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UserQueries_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.UserByEmail(ctx, "user@example.com")
	require.ErrorIs(t, err, context.Canceled)

	_, err = st.UserByID(ctx, uuid.New())
	require.ErrorIs(t, err, context.Canceled)
}
