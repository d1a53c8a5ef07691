package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/dbx"
)

// SQLiteRepository reads accounts from the "accounts" table created by the
// embedded migrations.
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectAccount = `SELECT id, username, email, first_name, last_name, salt, verifier FROM accounts`

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, selectAccount+` WHERE username_key = ?`, foldKey(username))
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, selectAccount+` WHERE email_key = ?`, foldKey(email))
}

func (r *SQLiteRepository) findOne(ctx context.Context, query string, key string) (*models.Account, error) {
	var acc models.Account
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&acc.ID, &acc.Username, &acc.Email, &acc.FirstName, &acc.LastName, &acc.Salt, &acc.Verifier,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &acc, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, email, first_name, last_name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}

	return result, nil
}

// Seed replaces the table contents with accs in a single transaction.
func Seed(ctx context.Context, db *sql.DB, accs []models.Account) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		for _, a := range accs {
			var emailKey any
			if a.Email != "" {
				emailKey = foldKey(a.Email)
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO accounts (id, username, username_key, email, email_key, first_name, last_name, salt, verifier)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, a.ID, a.Username, foldKey(a.Username), a.Email, emailKey, a.FirstName, a.LastName, a.Salt, a.Verifier)
			if err != nil {
				return fmt.Errorf("failed to insert account %s: %w", a.ID, err)
			}
		}
		return nil
	})
}
