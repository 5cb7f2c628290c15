package lockout

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты счётчика блокировок: реальный Redis через
// testcontainers-go (redis:7-alpine).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/lockout -v -race -count=1

// startRedis — временный Redis; без GO_TEST_INTEGRATION тест пропускается.
func startRedis(t *testing.T) (string, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")
	url := fmt.Sprintf("redis://%s:%s/0", host, port.Port())

	cleanup := func() { _ = c.Terminate(context.Background()) }
	return url, cleanup
}

func TestIntegration_Lockout_ThresholdLocks(t *testing.T) {
	url, cleanup := startRedis(t)
	defer cleanup()

	counter, err := New(url, "", 3, time.Minute)
	require.NoError(t, err)
	defer counter.Close()

	userID := uuid.New()
	ctx := context.Background()

	// До порога блокировки нет.
	for i := 0; i < 2; i++ {
		locked, err := counter.RecordFailure(ctx, userID)
		require.NoError(t, err)
		require.False(t, locked, "attempt %d", i+1)
	}

	locked, remaining, err := counter.IsLocked(ctx, userID)
	require.NoError(t, err)
	require.False(t, locked)
	require.Zero(t, remaining)

	// Третья неудача достигает порога.
	locked, err = counter.RecordFailure(ctx, userID)
	require.NoError(t, err)
	require.True(t, locked)

	locked, remaining, err = counter.IsLocked(ctx, userID)
	require.NoError(t, err)
	require.True(t, locked)
	require.Greater(t, remaining, time.Duration(0))
	require.LessOrEqual(t, remaining, time.Minute)
}

func TestIntegration_Lockout_SuccessResetsCounter(t *testing.T) {
	url, cleanup := startRedis(t)
	defer cleanup()

	counter, err := New(url, "", 3, time.Minute)
	require.NoError(t, err)
	defer counter.Close()

	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := counter.RecordFailure(ctx, userID)
		require.NoError(t, err)
	}

	require.NoError(t, counter.RecordSuccess(ctx, userID))

	// Счётчик сброшен: две новые неудачи порога не достигают.
	for i := 0; i < 2; i++ {
		locked, err := counter.RecordFailure(ctx, userID)
		require.NoError(t, err)
		require.False(t, locked)
	}
}

func TestIntegration_Lockout_SuccessClearsLock(t *testing.T) {
	url, cleanup := startRedis(t)
	defer cleanup()

	counter, err := New(url, "", 1, time.Minute)
	require.NoError(t, err)
	defer counter.Close()

	userID := uuid.New()
	ctx := context.Background()

	locked, err := counter.RecordFailure(ctx, userID)
	require.NoError(t, err)
	require.True(t, locked)

	// Сброс пароля снимает блокировку досрочно.
	require.NoError(t, counter.RecordSuccess(ctx, userID))

	locked, _, err = counter.IsLocked(ctx, userID)
	require.NoError(t, err)
	require.False(t, locked)
}

func TestIntegration_Lockout_WindowExpires(t *testing.T) {
	url, cleanup := startRedis(t)
	defer cleanup()

	counter, err := New(url, "", 1, time.Second)
	require.NoError(t, err)
	defer counter.Close()

	userID := uuid.New()
	ctx := context.Background()

	locked, err := counter.RecordFailure(ctx, userID)
	require.NoError(t, err)
	require.True(t, locked)

	// Ждём истечения TTL блокировки.
	require.Eventually(t, func() bool {
		locked, _, err := counter.IsLocked(ctx, userID)
		return err == nil && !locked
	}, 5*time.Second, 100*time.Millisecond)
}

func TestIntegration_Lockout_UsersIndependent(t *testing.T) {
	url, cleanup := startRedis(t)
	defer cleanup()

	counter, err := New(url, "", 1, time.Minute)
	require.NoError(t, err)
	defer counter.Close()

	ctx := context.Background()
	victim, other := uuid.New(), uuid.New()

	locked, err := counter.RecordFailure(ctx, victim)
	require.NoError(t, err)
	require.True(t, locked)

	locked, _, err = counter.IsLocked(ctx, other)
	require.NoError(t, err)
	require.False(t, locked)
}

func TestNew_BadURL(t *testing.T) {
	t.Parallel()

	_, err := New("not-a-redis-url", "", 5, time.Minute)
	require.Error(t, err)
}
