package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
)

// ErrNotFound is returned when no account matches a lookup.
var ErrNotFound = errors.New("account not found")

// Repository describes read access to the seeded account table.
type Repository interface {
	// FindByUsername returns the account whose username matches ignoring case.
	FindByUsername(ctx context.Context, username string) (*models.Account, error)

	// FindByEmail returns the account whose email matches ignoring case.
	// Accounts without an email never match.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// List returns the public profiles of all accounts ordered by id.
	List(ctx context.Context) ([]models.User, error)
}
