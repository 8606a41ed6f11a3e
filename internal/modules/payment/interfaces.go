package payment

import "inspectbook/internal/domain"

// StateManager is the subset of state operations the payment flow needs.
type StateManager interface {
	UpdateOrder(id string, upd domain.OrderUpdate) (*domain.Order, bool)
	State() domain.AppState
}
