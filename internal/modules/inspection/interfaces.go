package inspection

import "inspectbook/internal/domain"

// StateManager is the subset of state operations the inspection flow needs.
type StateManager interface {
	AddOrder(draft domain.OrderDraft) (*domain.Order, bool)
	UpdateProfile(p domain.Profile)
	State() domain.AppState
}
