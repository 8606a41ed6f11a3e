package payment

import (
	"context"

	"inspectbook/internal/domain"
)

// Service enforces the order lifecycle on top of the permissive state
// manager: pending -> paid -> scheduled, no skips, no going back.
type Service struct {
	manager StateManager
}

func NewService(manager StateManager) *Service {
	return &Service{manager: manager}
}

func (s *Service) find(id string) (*domain.Order, error) {
	for _, o := range s.manager.State().Orders {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Pay marks a pending order as paid. Demo flow, so the payment itself
// always succeeds once the transition is legal.
func (s *Service) Pay(_ context.Context, orderID string) (*domain.Order, error) {
	order, err := s.find(orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.OrderPending:
	case domain.OrderPaid, domain.OrderScheduled:
		return nil, ErrAlreadyPaid
	default:
		return nil, ErrIllegalTransition
	}

	paid := true
	status := domain.OrderPaid
	updated, ok := s.manager.UpdateOrder(orderID, domain.OrderUpdate{
		IsPaid: &paid,
		Status: &status,
	})
	if !ok {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}

// Schedule moves a paid order to scheduled.
func (s *Service) Schedule(_ context.Context, orderID string) (*domain.Order, error) {
	order, err := s.find(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderPaid {
		return nil, ErrIllegalTransition
	}

	status := domain.OrderScheduled
	updated, ok := s.manager.UpdateOrder(orderID, domain.OrderUpdate{Status: &status})
	if !ok {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}

func (s *Service) Overview(_ context.Context) Overview {
	out := Overview{
		Pending:   []domain.Order{},
		Completed: []domain.Order{},
	}
	for _, o := range s.manager.State().Orders {
		if o.Status == domain.OrderPending {
			out.Pending = append(out.Pending, o)
		} else {
			out.Completed = append(out.Completed, o)
		}
	}
	return out
}
