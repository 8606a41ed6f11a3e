package profile

import "inspectbook/internal/domain"

// StateManager is the subset of state operations the profile screens need.
type StateManager interface {
	UpdateProfile(p domain.Profile)
	ClearAll()
	State() domain.AppState
}
