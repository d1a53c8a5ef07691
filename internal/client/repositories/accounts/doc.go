// Package accounts provides the seeded reference account table the mock
// backend checks credentials against.
//
// # Overview
//
// The table is read-only after seeding. Lookups by username and by email are
// case-insensitive: keys are Unicode case-folded with golang.org/x/text/cases
// before storage and before every query.
//
// Key Types
//
//   - type Repository        - lookup contract used by the mock backend
//   - type MemoryRepository  - map-backed implementation
//   - type SQLiteRepository  - SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	accs, _ := accounts.BuildAccounts(accounts.DefaultSeed())
//	repo := accounts.NewMemoryRepository(accs)
//	acc, err := repo.FindByUsername(ctx, "ADMIN")
package accounts
