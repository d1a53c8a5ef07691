// Package models defines client-side data models used by the loginflow core.
package models

// User is the account profile handed to callers after a successful login.
// Optional fields are empty when the account has no value for them.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName returns "First Last" when known, the username otherwise.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

// Account is a row of the seeded reference table the mock backend checks
// credentials against. It is immutable once seeded.
type Account struct {
	User

	// Salt is the random argon2 salt used to derive Verifier.
	Salt []byte

	// Verifier is sha256(argon2id(password, Salt)).
	Verifier []byte
}

// SeedAccount is the plain-text form of an account before seeding.
type SeedAccount struct {
	User
	Password string
}
