package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/loginflow/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ForgotUsername(ctx context.Context) error
	Status(ctx context.Context) error
	Accounts(ctx context.Context) error
	Network(ctx context.Context, arg string) error
}

// runREPL starts a simple read-eval-print loop for the loginflow CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             - show available commands
//	  - login            - sign in
//	  - register         - create an account
//	  - forgot-password  - request password reset instructions
//	  - forgot-username  - request a username reminder
//	  - status           - show session and network state
//	  - accounts         - list the demo accounts
//	  - network on|off   - simulate connectivity
//	  - exit | quit      - leave the program
//
//	Logged in:
//	  - help, login, status, network, exit | quit as above
//	  - logout           - end the session
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("lf %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		cmdCtx := logging.ContextWith(ctx, "command", cmd)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: login, logout, status, accounts, network on|off, exit")
			} else {
				printlnFn("Available commands: login, register, forgot-password, forgot-username, status, accounts, network on|off, exit")
			}

		case "login":
			_ = a.Login(cmdCtx)

		case "logout":
			_ = a.Logout(cmdCtx)

		case "register":
			_ = a.Register(cmdCtx)

		case "forgot-password":
			_ = a.ForgotPassword(cmdCtx)

		case "forgot-username":
			_ = a.ForgotUsername(cmdCtx)

		case "status":
			_ = a.Status(cmdCtx)

		case "accounts":
			_ = a.Accounts(cmdCtx)

		case "network":
			if len(args) == 0 {
				printlnFn("Usage: network on|off")
				continue
			}
			_ = a.Network(cmdCtx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
