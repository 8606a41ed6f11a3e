package auth

import (
	"context"

	"inspectbook/internal/domain"
)

// StateManager is the subset of state operations the auth flow needs.
type StateManager interface {
	Login(identifier string) domain.AppState
	Logout()
	State() domain.AppState
}

// Sender delivers a one-time code. There is no real delivery channel in this
// app; the console sender stands in for one.
type Sender interface {
	SendOTP(ctx context.Context, destination, code string) error
}

type tokenIssuer interface {
	GenerateToken(identifier, crn, sessionID string) (string, error)
}
