// Package cli provides the interactive loginflow command-line client.
//
// It wires configuration, the account store, the mock backend and the
// authentication session into a REPL that plays the role of the sign-in,
// recovery and registration screens. Every form is checked with the
// validation package before the session is asked to do anything.
//
// Commands:
//   - login / logout
//   - register
//   - forgot-password / forgot-username
//   - status
//   - network on|off (simulated connectivity)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
