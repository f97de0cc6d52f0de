package redisstore

// Интеграционные тесты redisstore:
// - поднимают реальный Redis через testcontainers-go (образ redis:7-alpine);
// - пропускаются, если не установлена переменная GO_TEST_INTEGRATION.

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/agussaepos/saepos-cms/internal/session"
)

// startRedis — поднимает временный Redis и возвращает инициализированное
// хранилище и функцию очистки.
func startRedis(t *testing.T) (*Storage, func()) {
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

	st, err := New(fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "cms:session:test")
	require.NoError(t, err)

	cleanup := func() {
		_ = st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_SaveLoadClear_RoundTrip(t *testing.T) {
	st, cleanup := startRedis(t)
	defer cleanup()

	ctx := context.Background()
	rec := &session.Record{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         []byte(`{"id":42,"email":"admin@saepos.io"}`),
		ExpiresAt:    time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}

	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, rec.AccessToken, got.AccessToken)
	require.Equal(t, rec.RefreshToken, got.RefreshToken)
	require.JSONEq(t, string(rec.User), string(got.User))
	require.Equal(t, rec.ExpiresAt.Unix(), got.ExpiresAt.Unix())

	require.NoError(t, st.Clear(ctx))

	_, err = st.Load(ctx)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestIntegration_Load_Empty_NotFound(t *testing.T) {
	st, cleanup := startRedis(t)
	defer cleanup()

	_, err := st.Load(context.Background())
	require.ErrorIs(t, err, session.ErrNotFound)
}

// Save полностью замещает запись: поля предыдущей версии не просачиваются.
func TestIntegration_Save_ReplacesRecord(t *testing.T) {
	st, cleanup := startRedis(t)
	defer cleanup()

	ctx := context.Background()
	first := &session.Record{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         []byte(`{"id":1}`),
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, st.Save(ctx, first))

	second := &session.Record{
		AccessToken:  "access-2",
		RefreshToken: "refresh-2",
		User:         []byte(`{"id":2}`),
		ExpiresAt:    time.Now().UTC().Add(2 * time.Hour),
	}
	require.NoError(t, st.Save(ctx, second))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "access-2", got.AccessToken)
	require.Equal(t, "refresh-2", got.RefreshToken)
}
