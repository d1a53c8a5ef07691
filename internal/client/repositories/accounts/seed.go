package accounts

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/cryptox"
)

// DefaultSeed returns the built-in demo accounts.
func DefaultSeed() []models.SeedAccount {
	return []models.SeedAccount{
		{
			User: models.User{
				ID:        "1",
				Username:  "admin",
				Email:     "admin@indigonxt.com",
				FirstName: "Admin",
				LastName:  "User",
			},
			Password: "password123",
		},
		{
			User: models.User{
				ID:        "2",
				Username:  "testuser",
				Email:     "test@indigonxt.com",
				FirstName: "Test",
				LastName:  "User",
			},
			Password: "test123",
		},
	}
}

// BuildAccounts turns plain seeds into accounts holding password verifiers.
// Ids, usernames and emails must be unique ignoring case.
func BuildAccounts(seeds []models.SeedAccount) ([]models.Account, error) {
	ids := make(map[string]struct{}, len(seeds))
	names := make(map[string]struct{}, len(seeds))
	emails := make(map[string]struct{}, len(seeds))

	out := make([]models.Account, 0, len(seeds))
	for _, s := range seeds {
		if s.ID == "" || s.Username == "" {
			return nil, fmt.Errorf("seed account %q: id and username are required", s.Username)
		}
		if _, dup := ids[s.ID]; dup {
			return nil, fmt.Errorf("seed account %q: duplicate id %q", s.Username, s.ID)
		}
		ids[s.ID] = struct{}{}

		nk := foldKey(s.Username)
		if _, dup := names[nk]; dup {
			return nil, fmt.Errorf("seed account %q: duplicate username", s.Username)
		}
		names[nk] = struct{}{}

		if s.Email != "" {
			ek := foldKey(s.Email)
			if _, dup := emails[ek]; dup {
				return nil, fmt.Errorf("seed account %q: duplicate email %q", s.Username, s.Email)
			}
			emails[ek] = struct{}{}
		}

		salt, verifier := cryptox.NewVerifier([]byte(s.Password))
		out = append(out, models.Account{User: s.User, Salt: salt, Verifier: verifier})
	}
	return out, nil
}

// foldKey is the lookup key for usernames and emails. A Caser is stateful,
// so a new one is made per call.
func foldKey(s string) string {
	return cases.Fold().String(s)
}
