package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/loginflow/internal/auth"
	"github.com/dmitrijs2005/loginflow/internal/client/client"
	"github.com/dmitrijs2005/loginflow/internal/client/config"
	"github.com/dmitrijs2005/loginflow/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/loginflow/internal/client/services"
	"github.com/dmitrijs2005/loginflow/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// networkSwitch is the connectivity toggle of a simulated backend.
type networkSwitch interface {
	SetAvailable(up bool)
	Available() bool
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session services.AuthSession
	network networkSwitch
	known   accounts.Repository
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

// NewApp builds the account store selected by c.Store, the mock backend on
// top of it and a fresh logged-out session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, closeFn, err := openAccounts(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing account store", "store", c.Store, "error", err)
		return nil, err
	}

	tokens, err := auth.NewTokenIssuer(c.TokenSecret)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	backend := client.NewMockClient(repo, tokens,
		client.WithLatency(c.Latency),
		client.WithLogger(log),
		client.WithCloser(closeFn),
	)

	return &App{
		config:  c,
		log:     log,
		session: services.NewAuthSession(backend, log),
		network: backend,
		known:   repo,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		mode:    ModeOnline,
	}, nil
}

// openAccounts seeds the default accounts into the configured store.
func openAccounts(ctx context.Context, c *config.Config) (accounts.Repository, func() error, error) {
	accs, err := accounts.BuildAccounts(accounts.DefaultSeed())
	if err != nil {
		return nil, nil, err
	}

	switch c.Store {
	case config.StoreMemory, "":
		return accounts.NewMemoryRepository(accs), func() error { return nil }, nil
	case config.StoreSQLite:
		db, err := client.InitDatabase(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := accounts.Seed(ctx, db, accs); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("seed accounts: %w", err)
		}
		return accounts.NewSQLiteRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown account store %q", c.Store)
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "switched mode", "mode", mode)
	}
}

// Run starts the background watchers and blocks in the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.session.Close(); err != nil {
			a.log.Warn(ctx, "close session", "error", err)
		}
	}()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	go a.watchSession(ctx, a.session.Subscribe())

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// StartOnlineStatusWatcher pings the backend every interval and flips the
// displayed mode between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.session.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// watchSession renders the loading indicator while a login is in flight.
func (a *App) watchSession(ctx context.Context, states <-chan services.State) {
	for {
		select {
		case st, ok := <-states:
			if !ok {
				return
			}
			if st.Phase == services.PhaseAuthenticating {
				fmt.Fprintln(a.out, "Signing in...")
			}
		case <-ctx.Done():
			return
		}
	}
}
