package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
)

const (
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"

	MsgConfirmRequired = "Please confirm your password"
	MsgPasswordsDiffer = "Passwords do not match"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail returns nil for a well-formed address.
func ValidateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return fail(FieldEmail, RuleRequired, MsgEmailRequired)
	}
	if err := validate.Var(s, "email"); err != nil {
		return fail(FieldEmail, RuleInvalidFormat, MsgEmailInvalid)
	}
	return nil
}

type passwordPair struct {
	Password        string
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// ValidateConfirmPassword checks the repeated password against the first.
func ValidateConfirmPassword(password, confirm string) error {
	err := validate.Struct(passwordPair{Password: password, ConfirmPassword: confirm})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return fail(FieldConfirmPassword, RuleRequired, MsgConfirmRequired)
	}
	return fail(FieldConfirmPassword, RuleMismatch, MsgPasswordsDiffer)
}

// ValidateRegistration checks every sign-up field.
func ValidateRegistration(r models.Registration) Errors {
	errs := Errors{}
	for _, err := range []error{
		ValidateUsername(r.Username),
		ValidateEmail(r.Email),
		ValidatePassword(r.Password),
		ValidateConfirmPassword(r.Password, r.ConfirmPassword),
	} {
		if err != nil {
			errs.add(err)
		}
	}
	return errs
}
