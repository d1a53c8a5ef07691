package accounts

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
)

// MemoryRepository keeps the account table in maps. It is immutable after
// construction and safe for concurrent use.
type MemoryRepository struct {
	byUsername map[string]*models.Account
	byEmail    map[string]*models.Account
	users      []models.User
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository indexes accs by folded username and email.
func NewMemoryRepository(accs []models.Account) *MemoryRepository {
	r := &MemoryRepository{
		byUsername: make(map[string]*models.Account, len(accs)),
		byEmail:    make(map[string]*models.Account, len(accs)),
		users:      make([]models.User, 0, len(accs)),
	}
	for i := range accs {
		acc := accs[i]
		r.byUsername[foldKey(acc.Username)] = &acc
		if acc.Email != "" {
			r.byEmail[foldKey(acc.Email)] = &acc
		}
		r.users = append(r.users, acc.User)
	}
	sort.Slice(r.users, func(i, j int) bool { return r.users[i].ID < r.users[j].ID })
	return r
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return lookup(ctx, r.byUsername, username)
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	return lookup(ctx, r.byEmail, email)
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.User(nil), r.users...), nil
}

func lookup(ctx context.Context, idx map[string]*models.Account, key string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acc, ok := idx[foldKey(key)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *acc
	return &cp, nil
}
