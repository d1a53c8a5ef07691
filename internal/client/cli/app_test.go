package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/loginflow/internal/client/config"
	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/client/services"
	"github.com/dmitrijs2005/loginflow/internal/logging"
)

// syncBuffer is a bytes.Buffer safe for the watcher goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(store string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Latency = config.Latency{}
	cfg.OnlineCheckInterval = 0
	cfg.Store = store
	cfg.TokenSecret = "test-secret"
	return cfg
}

// newTestApp builds a real App over the in-memory store, reading input from
// the given lines and writing to the returned buffer.
func newTestApp(t *testing.T, lines ...string) (*App, *syncBuffer) {
	t.Helper()
	stubTerminal(t, false, nil)

	app, err := NewApp(context.Background(), testConfig(config.StoreMemory), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.session.Close() })

	out := &syncBuffer{}
	app.reader = rdr(strings.Join(lines, "\n") + "\n")
	app.out = out
	return app, out
}

func TestNewApp_Stores(t *testing.T) {
	for _, store := range []string{config.StoreMemory, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			cfg := testConfig(store)
			if store == config.StoreSQLite {
				cfg.DatabaseDSN = filepath.Join(t.TempDir(), "accounts.db")
			}

			app, err := NewApp(context.Background(), cfg, logging.Nop())
			require.NoError(t, err)
			defer app.session.Close()

			_, err = app.session.Login(context.Background(), models.Credentials{Username: "Admin", Password: "password123"})
			require.NoError(t, err)
			assert.True(t, app.isLoggedIn())
		})
	}
}

func TestNewApp_UnknownStore(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig("postgres"), logging.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	var buf syncBuffer
	app := &App{log: logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))}
	ctx := context.Background()

	app.setMode(ctx, ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Contains(t, buf.String(), "mode=online")

	before := buf.String()
	app.setMode(ctx, ModeOnline)
	assert.Equal(t, before, buf.String(), "no log output when mode doesn't change")

	app.setMode(ctx, ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Contains(t, buf.String(), "mode=offline")
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, "(online)", app.getStatus())

	_, err := app.session.Login(context.Background(), models.Credentials{Username: "admin", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "(admin online)", app.getStatus())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	app.network.SetAvailable(false)
	assert.Eventually(t, func() bool { return app.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)

	app.network.SetAvailable(true)
	assert.Eventually(t, func() bool { return app.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestStartOnlineStatusWatcher_DisabledInterval(t *testing.T) {
	app := &App{}
	app.StartOnlineStatusWatcher(context.Background(), 0)
}

func TestWatchSession_PrintsSpinner(t *testing.T) {
	app, out := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	states := make(chan services.State, 2)
	states <- services.State{Phase: services.PhaseAuthenticating}
	states <- services.State{Phase: services.PhaseLoggedIn}
	close(states)

	app.watchSession(ctx, states)
	assert.Equal(t, "Signing in...\n", out.String())
}

func TestRun_ExitsOnQuit(t *testing.T) {
	silencePrintln(t)
	app, out := newTestApp(t, "status", "quit")

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Contains(t, out.String(), "Welcome to loginflow")
	assert.Contains(t, out.String(), "Not logged in")
}
