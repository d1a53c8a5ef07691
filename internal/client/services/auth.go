// Package services contains application services for the loginflow client.
// This file defines the authentication session: the login state machine,
// logout, credential recovery and registration on top of a backend Client.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/loginflow/internal/client/client"
	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/common"
	"github.com/dmitrijs2005/loginflow/internal/logging"
)

// AuthSession owns the session state of one user of the client.
//
// Contract:
//   - Login: LoggedOut|Failed|LoggedIn -> Authenticating -> LoggedIn|Failed.
//     Rejected with common.ErrLoginInProgress while Authenticating.
//   - Logout: any state -> LoggedOut; idempotent, never fails.
//   - ForgotPassword, ForgotUsername, Register: stateless backend calls.
//   - Failures are *common.AuthError values, except two Login flow-control
//     sentinels: common.ErrLoginInProgress (another login is pending) and
//     common.ErrLoginAborted (Logout ran while this login was pending).
//
// All methods are safe for concurrent use.
type AuthSession interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Logout(ctx context.Context)
	ForgotPassword(ctx context.Context, username string) (*models.MessageResponse, error)
	ForgotUsername(ctx context.Context, email string) (*models.MessageResponse, error)
	Register(ctx context.Context, r models.Registration) (*models.MessageResponse, error)

	Token() (string, bool)
	IsAuthenticated() bool
	State() State
	User() (models.User, bool)

	// Subscribe returns a channel receiving every subsequent state. A slow
	// reader misses intermediate states, never the latest one. The channel
	// is closed by Close.
	Subscribe() <-chan State

	Ping(ctx context.Context) error
	Close() error
}

const subscriberBuffer = 8

type authSession struct {
	client client.Client
	log    logging.Logger

	mu      sync.Mutex
	phase   Phase
	token   string
	user    *models.User
	failure *common.AuthError

	// attempt identifies the current login; Logout bumps it so a late
	// backend reply is discarded.
	attempt uint64
	cancel  context.CancelFunc

	subs   []chan State
	closed bool
}

// NewAuthSession returns a logged-out session backed by c.
func NewAuthSession(c client.Client, log logging.Logger) AuthSession {
	if log == nil {
		log = logging.Nop()
	}
	return &authSession{
		client: c,
		log:    log.With("component", "auth-session"),
		phase:  PhaseLoggedOut,
	}
}

func (s *authSession) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	s.mu.Lock()
	if s.phase == PhaseAuthenticating {
		s.mu.Unlock()
		return nil, common.ErrLoginInProgress
	}
	s.attempt++
	attempt := s.attempt
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.failure = nil
	s.setPhaseLocked(ctx, PhaseAuthenticating)
	s.mu.Unlock()
	defer cancel()

	resp, err := s.client.Login(ctx, creds.Username, creds.Password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if attempt != s.attempt {
		s.log.Debug(ctx, "discarding login result after logout", "username", creds.Username)
		return nil, common.ErrLoginAborted
	}
	s.cancel = nil

	if err != nil {
		ae := toAuthError(err)
		s.failure = ae
		s.setPhaseLocked(ctx, PhaseFailed)
		s.log.Info(ctx, "login failed", "username", creds.Username, "kind", ae.Kind, "error", err)
		return nil, ae
	}

	user := resp.User
	s.token = resp.Token
	s.user = &user
	s.setPhaseLocked(ctx, PhaseLoggedIn)
	s.log.Info(ctx, "login succeeded", "user_id", user.ID)
	return resp, nil
}

// Logout drops the local session first and then tells the backend, so a
// backend failure never leaves the user signed in.
func (s *authSession) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.phase == PhaseLoggedOut && s.token == "" {
		s.mu.Unlock()
		return
	}

	s.attempt++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	token := s.token
	s.token = ""
	s.user = nil
	s.failure = nil
	s.setPhaseLocked(ctx, PhaseLoggedOut)
	s.mu.Unlock()

	if token == "" {
		return
	}
	if err := s.client.Logout(ctx, token); err != nil {
		s.log.Warn(ctx, "backend logout failed", "error", err)
	}
}

func (s *authSession) ForgotPassword(ctx context.Context, username string) (*models.MessageResponse, error) {
	resp, err := s.client.ForgotPassword(ctx, username)
	if err != nil {
		ae := toAuthError(err)
		s.log.Info(ctx, "password recovery failed", "username", username, "kind", ae.Kind)
		return nil, ae
	}
	return resp, nil
}

func (s *authSession) ForgotUsername(ctx context.Context, email string) (*models.MessageResponse, error) {
	resp, err := s.client.ForgotUsername(ctx, email)
	if err != nil {
		ae := toAuthError(err)
		s.log.Info(ctx, "username recovery failed", "kind", ae.Kind)
		return nil, ae
	}
	return resp, nil
}

func (s *authSession) Register(ctx context.Context, r models.Registration) (*models.MessageResponse, error) {
	resp, err := s.client.Register(ctx, r)
	if err != nil {
		ae := toAuthError(err)
		s.log.Info(ctx, "registration failed", "username", r.Username, "kind", ae.Kind)
		return nil, ae
	}
	return resp, nil
}

func (s *authSession) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *authSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseLoggedIn
}

func (s *authSession) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *authSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *authSession) Subscribe() <-chan State {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan State, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

func (s *authSession) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close aborts a pending login, closes subscriber channels and the backend.
func (s *authSession) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		for _, ch := range s.subs {
			close(ch)
		}
		s.subs = nil
	}
	s.mu.Unlock()
	return s.client.Close()
}

func (s *authSession) snapshotLocked() State {
	st := State{Phase: s.phase, Token: s.token, Failure: s.failure}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *authSession) setPhaseLocked(ctx context.Context, p Phase) {
	prev := s.phase
	s.phase = p
	st := s.snapshotLocked()
	s.log.Debug(ctx, "session state changed", "from", prev, "to", st.String())

	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			// full: drop the oldest so the newest state always lands
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}
