package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	ErrUserNotFound  = fmt.Errorf("username %w", ErrNotFound)
	ErrEmailNotFound = fmt.Errorf("email %w", ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("username %w", ErrAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrAlreadyExists)
)
