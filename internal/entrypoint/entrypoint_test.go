package entrypoint

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/config"
	"github.com/mrlokans/passmanager/internal/entities"
)

func freePort(t *testing.T) int32 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return int32(l.Addr().(*net.TCPAddr).Port)
}

func TestOpenStores_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.db")

	stores, err := OpenStores(ctx, config.Database{URL: "sqlite://" + path})
	require.NoError(t, err)
	defer stores.Close(ctx)

	require.NoError(t, stores.Health.Ping(ctx))

	user := &entities.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	require.NoError(t, stores.Users.CreateUser(ctx, user))

	entry := &entities.SecretEntry{OwnerID: user.ID, EntryID: "e1", Site: "a.com"}
	require.NoError(t, stores.Entries.CreateEntry(ctx, entry))

	list, err := stores.Entries.ListEntries(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRun_RequiresSecret(t *testing.T) {
	cfg := &config.Config{
		Database: config.Database{URL: filepath.Join(t.TempDir(), "vault.db")},
	}

	err := Run(context.Background(), cfg, zerolog.Nop(), "test")
	assert.ErrorIs(t, err, auth.ErrMissingSecret)
}

func TestServe_GracefulShutdown(t *testing.T) {
	cfg := &config.Config{
		HTTP:   config.HTTP{Host: "127.0.0.1", Port: freePort(t)},
		Global: config.Global{ShutdownTimeoutInSeconds: 2},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	ctx, cancel := context.WithCancel(context.Background())
	shutdownCalled := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, handler, cfg, func(context.Context) { close(shutdownCalled) })
	}()

	url := "http://" + cfg.HTTP.Addr() + "/"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	select {
	case <-shutdownCalled:
	default:
		t.Fatal("shutdown hook was not called")
	}
}

func TestServe_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := &config.Config{
		HTTP: config.HTTP{Host: "127.0.0.1", Port: int32(l.Addr().(*net.TCPAddr).Port)},
	}

	shutdownCalled := false
	err = Serve(context.Background(), http.NotFoundHandler(), cfg, func(context.Context) { shutdownCalled = true })
	assert.ErrorContains(t, err, "listen")
	assert.True(t, shutdownCalled, "stores must be released when the server cannot start")
}
