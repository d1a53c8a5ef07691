package services

import (
	"github.com/dmitrijs2005/loginflow/internal/client/models"
	"github.com/dmitrijs2005/loginflow/internal/common"
)

// Phase is the coarse session status.
type Phase string

const (
	PhaseLoggedOut      Phase = "logged_out"
	PhaseAuthenticating Phase = "authenticating"
	PhaseLoggedIn       Phase = "logged_in"
	PhaseFailed         Phase = "failed"
)

// State is an immutable snapshot of the session.
//
// Token and User are set in PhaseLoggedIn. A login started from PhaseLoggedIn
// keeps them through PhaseAuthenticating and, if it fails, PhaseFailed; only
// Logout clears them. Failure is set in PhaseFailed.
type State struct {
	Phase   Phase
	Token   string
	User    *models.User
	Failure *common.AuthError
}

// FailureKind returns the kind of the last failed login, or "".
func (s State) FailureKind() common.Kind {
	if s.Failure == nil {
		return ""
	}
	return s.Failure.Kind
}

func (s State) String() string {
	if s.Phase == PhaseFailed && s.Failure != nil {
		return string(s.Phase) + "(" + string(s.Failure.Kind) + ")"
	}
	return string(s.Phase)
}
