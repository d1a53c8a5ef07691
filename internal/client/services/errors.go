package services

import (
	"errors"

	"github.com/dmitrijs2005/loginflow/internal/client/client"
	"github.com/dmitrijs2005/loginflow/internal/common"
)

const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserNotFound       = "Username not found"
	MsgEmailNotFound      = "Email address not found"
	MsgUsernameTaken      = "Username is already taken"
	MsgEmailTaken         = "An account with this email already exists"
	MsgNetworkError       = "Network error. Please check your connection and try again."
)

// toAuthError classifies a backend error. Anything unrecognised, including
// context cancellation, is reported as a network failure.
func toAuthError(err error) *common.AuthError {
	var ae *common.AuthError
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return common.NewAuthError(common.KindInvalidCredentials, common.CodeInvalidCredentials, MsgInvalidCredentials, err)
	case errors.Is(err, client.ErrEmailNotFound):
		return common.NewAuthError(common.KindNotFound, common.CodeEmailNotFound, MsgEmailNotFound, err)
	case errors.Is(err, client.ErrNotFound):
		return common.NewAuthError(common.KindNotFound, common.CodeUserNotFound, MsgUserNotFound, err)
	case errors.Is(err, client.ErrEmailTaken):
		return common.NewAuthError(common.KindAlreadyExists, common.CodeEmailTaken, MsgEmailTaken, err)
	case errors.Is(err, client.ErrAlreadyExists):
		return common.NewAuthError(common.KindAlreadyExists, common.CodeUsernameTaken, MsgUsernameTaken, err)
	default:
		return common.NewAuthError(common.KindNetworkError, common.CodeNetworkError, MsgNetworkError, err)
	}
}
