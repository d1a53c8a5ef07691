// Package client contains the backend side of the loginflow core.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic backend contract (see the Client interface):
//     Login/Logout, ForgotPassword/ForgotUsername, Register, Ping.
//  2. MockClient, an in-process implementation that checks credentials
//     against a seeded accounts.Repository, mints tokens with
//     auth.TokenIssuer and simulates round-trip latency and outages.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound (ErrUserNotFound,
// ErrEmailNotFound) and ErrAlreadyExists (ErrUsernameTaken, ErrEmailTaken).
//
// # Concurrency & Contexts
//
// MockClient is safe for concurrent use. Simulated latency honors ctx: a
// cancelled or expired ctx yields ErrUnavailable wrapping ctx.Err().
package client
