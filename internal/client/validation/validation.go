package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/loginflow/internal/client/models"
)

// Field names a form input.
type Field string

const (
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldEmail           Field = "email"
	FieldConfirmPassword Field = "confirmPassword"
	FieldGeneral         Field = "general"
)

// Rule names the check a field failed.
type Rule string

const (
	RuleRequired          Rule = "required"
	RuleTooShort          Rule = "too_short"
	RuleTooLong           Rule = "too_long"
	RuleInvalidCharacters Rule = "invalid_characters"
	RuleInvalidFormat     Rule = "invalid_format"
	RuleMismatch          Rule = "mismatch"
)

// Length limits, counted in characters.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

const (
	MsgUsernameRequired     = "Username is required"
	MsgUsernameTooShort     = "Username must be at least 3 characters long"
	MsgUsernameTooLong      = "Username must be less than 50 characters"
	MsgUsernameInvalidChars = "Username can only contain letters, numbers, underscores, and hyphens"

	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgPasswordTooLong  = "Password must be less than 128 characters"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FieldError describes the first rule a field failed.
type FieldError struct {
	Field   Field
	Rule    Rule
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func fail(f Field, r Rule, msg string) error {
	return &FieldError{Field: f, Rule: r, Message: msg}
}

// Errors maps each failing field to its message. A valid field has no key.
type Errors map[Field]string

// Has reports whether f failed validation.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

func (e Errors) add(err error) {
	if fe, ok := err.(*FieldError); ok {
		e[fe.Field] = fe.Message
	}
}

// HasErrors reports whether any field failed.
func HasErrors(e Errors) bool {
	return len(e) > 0
}

// ValidateUsername returns nil for a valid username, or a *FieldError for
// the first rule it breaks. Whitespace-only input counts as empty.
func ValidateUsername(s string) error {
	n := utf8.RuneCountInString(s)
	switch {
	case strings.TrimSpace(s) == "":
		return fail(FieldUsername, RuleRequired, MsgUsernameRequired)
	case n < UsernameMinLength:
		return fail(FieldUsername, RuleTooShort, MsgUsernameTooShort)
	case n > UsernameMaxLength:
		return fail(FieldUsername, RuleTooLong, MsgUsernameTooLong)
	case !usernamePattern.MatchString(s):
		return fail(FieldUsername, RuleInvalidCharacters, MsgUsernameInvalidChars)
	}
	return nil
}

// ValidatePassword returns nil for an acceptable password. Any character
// is allowed.
func ValidatePassword(s string) error {
	n := utf8.RuneCountInString(s)
	switch {
	case s == "":
		return fail(FieldPassword, RuleRequired, MsgPasswordRequired)
	case n < PasswordMinLength:
		return fail(FieldPassword, RuleTooShort, MsgPasswordTooShort)
	case n > PasswordMaxLength:
		return fail(FieldPassword, RuleTooLong, MsgPasswordTooLong)
	}
	return nil
}

// ValidateForm checks both sign-in fields and returns every failure.
func ValidateForm(c models.Credentials) Errors {
	errs := Errors{}
	if err := ValidateUsername(c.Username); err != nil {
		errs.add(err)
	}
	if err := ValidatePassword(c.Password); err != nil {
		errs.add(err)
	}
	return errs
}

// IsFormValid reports whether c may be submitted: no rule fails and neither
// field is blank after trimming.
func IsFormValid(c models.Credentials) bool {
	return !HasErrors(ValidateForm(c)) &&
		strings.TrimSpace(c.Username) != "" &&
		strings.TrimSpace(c.Password) != ""
}
