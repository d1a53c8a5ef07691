package models

// Credentials is a single sign-in submission. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the sign-up form.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResponse is the success payload of a login.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the success payload of recovery and registration calls.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
