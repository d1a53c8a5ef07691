package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/client/services"
	"github.com/dmitrijs2005/loginflow/internal/client/validation"
	"github.com/dmitrijs2005/loginflow/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errInvalidForm is returned by a command whose form failed validation.
// The field messages have already been printed.
var errInvalidForm = errors.New("invalid form")

const msgInvalidCredentials = "Invalid username or password. Please check your credentials and try again."

// Login prompts for credentials, validates them and signs in.
//
// The password byte slice is wiped before returning. Validation failures
// return errInvalidForm; authentication failures are printed and returned
// as *common.AuthError.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: username, Password: string(password)}
	if !validation.IsFormValid(creds) {
		errs := validation.ValidateForm(creds)
		if !validation.HasErrors(errs) {
			// blank-but-long input passes the per-field rules
			errs = blankFieldErrors(creds)
		}
		a.printFieldErrors(errs, validation.FieldUsername, validation.FieldPassword)
		return errInvalidForm
	}

	resp, err := a.session.Login(ctx, creds)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "%s. Welcome, %s!\n", resp.Message, resp.User.DisplayName())
	return nil
}

// Logout ends the session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	if a.session.State().Phase == services.PhaseLoggedOut {
		fmt.Fprintln(a.out, "You are not logged in")
		return nil
	}
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Register prompts for the sign-up form, validates it and submits it.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	reg := models.Registration{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}
	if errs := validation.ValidateRegistration(reg); validation.HasErrors(errs) {
		a.printFieldErrors(errs, validation.FieldUsername, validation.FieldEmail, validation.FieldPassword, validation.FieldConfirmPassword)
		return errInvalidForm
	}

	resp, err := a.session.Register(ctx, reg)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

// ForgotPassword asks for a username and requests reset instructions.
func (a *App) ForgotPassword(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	if err := validation.ValidateUsername(username); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return errInvalidForm
	}

	resp, err := a.session.ForgotPassword(ctx, username)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

// ForgotUsername asks for an email address and requests a username reminder.
func (a *App) ForgotUsername(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if err := validation.ValidateEmail(email); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return errInvalidForm
	}

	resp, err := a.session.ForgotUsername(ctx, email)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

// Status prints the session state and the connectivity mode.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()
	switch st.Phase {
	case services.PhaseLoggedIn:
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", st.User.DisplayName(), st.User.Username)
	case services.PhaseAuthenticating:
		fmt.Fprintln(a.out, "Signing in...")
	case services.PhaseFailed:
		fmt.Fprintf(a.out, "Not logged in. Last sign-in failed: %s\n", st.Failure.Message)
	default:
		fmt.Fprintln(a.out, "Not logged in")
	}
	fmt.Fprintf(a.out, "Network: %s\n", a.Mode())
	return nil
}

// Accounts lists the demo accounts the mock backend knows about.
func (a *App) Accounts(ctx context.Context) error {
	users, err := a.known.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list accounts")
		return err
	}
	for _, u := range users {
		line := fmt.Sprintf("%s  %s", u.ID, u.Username)
		if u.Email != "" {
			line += "  <" + u.Email + ">"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Network switches simulated connectivity: arg is "on" or "off".
func (a *App) Network(ctx context.Context, arg string) error {
	switch arg {
	case "on":
		a.network.SetAvailable(true)
		a.setMode(ctx, ModeOnline)
	case "off":
		a.network.SetAvailable(false)
		a.setMode(ctx, ModeOffline)
	default:
		fmt.Fprintln(a.out, "Usage: network on|off")
		return fmt.Errorf("unknown network state %q", arg)
	}
	fmt.Fprintf(a.out, "Network is %s\n", arg)
	return nil
}

// blankFieldErrors reports whitespace-only fields as missing.
func blankFieldErrors(c models.Credentials) validation.Errors {
	errs := validation.Errors{}
	if strings.TrimSpace(c.Username) == "" {
		errs[validation.FieldUsername] = validation.MsgUsernameRequired
	}
	if strings.TrimSpace(c.Password) == "" {
		errs[validation.FieldPassword] = validation.MsgPasswordRequired
	}
	return errs
}

func (a *App) printFieldErrors(errs validation.Errors, order ...validation.Field) {
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			fmt.Fprintln(a.out, msg)
		}
	}
	if msg, ok := errs[validation.FieldGeneral]; ok {
		fmt.Fprintln(a.out, msg)
	}
}

func (a *App) printAuthError(err error) {
	var ae *common.AuthError
	switch {
	case errors.Is(err, common.ErrLoginInProgress):
		fmt.Fprintln(a.out, "A sign-in is already in progress")
	case errors.Is(err, common.ErrLoginAborted):
		fmt.Fprintln(a.out, "Sign-in cancelled")
	case common.KindOf(err) == common.KindInvalidCredentials:
		fmt.Fprintln(a.out, msgInvalidCredentials)
	case errors.As(err, &ae):
		fmt.Fprintln(a.out, ae.Message)
	default:
		fmt.Fprintln(a.out, err.Error())
	}
	a.log.Debug(context.Background(), "command failed", "kind", common.KindOf(err), "error", err)
}
