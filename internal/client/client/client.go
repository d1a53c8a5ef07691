package client

import (
	"context"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
)

// Client is the authentication backend contract the session talks to.
// Every call blocks until the backend answers or ctx ends.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, username string) (*models.MessageResponse, error)
	ForgotUsername(ctx context.Context, email string) (*models.MessageResponse, error)
	Register(ctx context.Context, r models.Registration) (*models.MessageResponse, error)
}
