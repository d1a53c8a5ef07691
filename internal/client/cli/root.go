package cli

import (
	"context"
	"fmt"
)

// getStatus renders the prompt badge, e.g. "(admin online)".
func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.User(); ok && a.session.IsAuthenticated() {
		s = u.Username + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the welcome banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to loginflow (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
