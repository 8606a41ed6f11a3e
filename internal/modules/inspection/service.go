package inspection

import (
	"context"

	"inspectbook/internal/domain"
	"inspectbook/internal/pkg/validator"
)

type Service struct {
	manager StateManager
}

func NewService(manager StateManager) *Service {
	return &Service{manager: manager}
}

// Submit stores the contact fields as the new profile, then creates the
// order. accepted=false means another creation was still in flight and this
// one was dropped.
func (s *Service) Submit(_ context.Context, req CreateInspectionRequest) (*domain.Order, bool, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, false, ErrValidation
	}

	s.manager.UpdateProfile(domain.Profile{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	})

	order, accepted := s.manager.AddOrder(req.draft())
	return order, accepted, nil
}

func (s *Service) List(_ context.Context) []domain.Order {
	return s.manager.State().Orders
}

func (s *Service) Get(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range s.manager.State().Orders {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Prefill reproduces the form seeding rule: last order wins, then profile
// contacts, then plain defaults.
func (s *Service) Prefill(_ context.Context) PrefillResponse {
	state := s.manager.State()
	out := defaultPrefill()

	if n := len(state.Orders); n > 0 {
		last := state.Orders[n-1]
		out.FullName = last.FullName
		out.Phone = last.Phone
		out.Email = last.Email
		out.PropertyType = string(last.PropertyType)
		out.ServiceType = string(last.ServiceType)
		if last.BHK >= 1 {
			out.BHK = last.BHK
		}
		if last.Rooms >= 1 {
			out.Rooms = last.Rooms
		}
		if last.Toilets >= 1 {
			out.Toilets = last.Toilets
		}
		return out
	}

	if state.Profile != nil {
		out.FullName = state.Profile.FullName
		out.Phone = state.Profile.Phone
		out.Email = state.Profile.Email
	}
	return out
}
