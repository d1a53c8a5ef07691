package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/loginflow/internal/auth"
	"github.com/dmitrijs2005/loginflow/internal/client/config"
	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/loginflow/internal/cryptox"
	"github.com/dmitrijs2005/loginflow/internal/logging"
)

const (
	MsgLoginSuccessful   = "Login successful"
	MsgPasswordResetSent = "Password reset instructions have been sent to your email"
	MsgUsernameSent      = "Your username has been sent to your email address"
	MsgRegistered        = "Registration successful! Please check your email to verify your account."
)

// MockClient is an in-process backend over a seeded account table.
type MockClient struct {
	accounts  accounts.Repository
	tokens    *auth.TokenIssuer
	latency   config.Latency
	log       logging.Logger
	available atomic.Bool
	closeFn   func() error
}

var _ Client = (*MockClient)(nil)

// MockOption customises a MockClient.
type MockOption func(*MockClient)

// WithLatency sets the simulated delay of each call.
func WithLatency(l config.Latency) MockOption {
	return func(m *MockClient) { m.latency = l }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l logging.Logger) MockOption {
	return func(m *MockClient) { m.log = l.With("component", "mock-backend") }
}

// WithCloser registers fn to run on Close, e.g. closing the account database.
func WithCloser(fn func() error) MockOption {
	return func(m *MockClient) { m.closeFn = fn }
}

// NewMockClient returns an online backend with no latency unless configured.
func NewMockClient(repo accounts.Repository, tokens *auth.TokenIssuer, opts ...MockOption) *MockClient {
	m := &MockClient{accounts: repo, tokens: tokens, log: logging.Nop()}
	for _, o := range opts {
		o(m)
	}
	m.available.Store(true)
	return m
}

// SetAvailable simulates the network going up or down.
func (m *MockClient) SetAvailable(up bool) {
	m.available.Store(up)
}

// Available reports the simulated network state.
func (m *MockClient) Available() bool {
	return m.available.Load()
}

// roundTrip waits for the simulated latency, then fails with ErrUnavailable
// if the network is down or ctx ended meanwhile.
func (m *MockClient) roundTrip(ctx context.Context, d time.Duration) error {
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if !m.available.Load() {
		return ErrUnavailable
	}
	return nil
}

func (m *MockClient) Ping(ctx context.Context) error {
	return m.roundTrip(ctx, 0)
}

func (m *MockClient) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	return nil
}

// Login checks username (ignoring case) and password (exactly) and mints a
// fresh token. Unknown users and wrong passwords both yield ErrUnauthorized.
func (m *MockClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if err := m.roundTrip(ctx, m.latency.Login); err != nil {
		return nil, err
	}

	acc, err := m.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			m.log.Info(ctx, "login rejected", "reason", "unknown user")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if !cryptox.CheckPassword([]byte(password), acc.Salt, acc.Verifier) {
		m.log.Info(ctx, "login rejected", "reason", "bad password", "user_id", acc.ID)
		return nil, ErrUnauthorized
	}

	token, err := m.tokens.GenerateToken(acc.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	m.log.Info(ctx, "login accepted", "user_id", acc.ID)
	return &models.LoginResponse{
		Success: true,
		User:    acc.User,
		Token:   token,
		Message: MsgLoginSuccessful,
	}, nil
}

// Logout acknowledges the end of a session. Tokens this backend did not
// issue are rejected with ErrUnauthorized.
func (m *MockClient) Logout(ctx context.Context, token string) error {
	if err := m.roundTrip(ctx, m.latency.Logout); err != nil {
		return err
	}
	uid, err := m.tokens.GetUserIDFromToken(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	m.log.Info(ctx, "logout", "user_id", uid)
	return nil
}

func (m *MockClient) ForgotPassword(ctx context.Context, username string) (*models.MessageResponse, error) {
	if err := m.roundTrip(ctx, m.latency.Recovery); err != nil {
		return nil, err
	}
	if _, err := m.accounts.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &models.MessageResponse{Success: true, Message: MsgPasswordResetSent}, nil
}

func (m *MockClient) ForgotUsername(ctx context.Context, email string) (*models.MessageResponse, error) {
	if err := m.roundTrip(ctx, m.latency.Recovery); err != nil {
		return nil, err
	}
	if _, err := m.accounts.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &models.MessageResponse{Success: true, Message: MsgUsernameSent}, nil
}

// Register accepts a sign-up whose username and email are both unused. The
// account table is reference data, so nothing is stored.
func (m *MockClient) Register(ctx context.Context, r models.Registration) (*models.MessageResponse, error) {
	if err := m.roundTrip(ctx, m.latency.Register); err != nil {
		return nil, err
	}
	if err := m.ensureFree(ctx, m.accounts.FindByUsername, r.Username, ErrUsernameTaken); err != nil {
		return nil, err
	}
	if err := m.ensureFree(ctx, m.accounts.FindByEmail, r.Email, ErrEmailTaken); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "registration accepted", "username", r.Username, "request_id", uuid.NewString())
	return &models.MessageResponse{Success: true, Message: MsgRegistered}, nil
}

func (m *MockClient) ensureFree(ctx context.Context, find func(context.Context, string) (*models.Account, error), key string, taken error) error {
	_, err := find(ctx, key)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, accounts.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("find account: %w", err)
	}
}
