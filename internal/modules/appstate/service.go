package appstate

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"inspectbook/internal/domain"
)

const saveQueueSize = 64

// saveOp is one unit of work for the writer goroutine. A nil state means
// "remove the stored entry". ack, when set, marks a flush barrier.
type saveOp struct {
	state  *domain.AppState
	onDone func(err error)
	ack    chan struct{}
}

// Service owns the application state and is the only place allowed to mutate
// it. Every mutation is applied in memory first, then a deep-copied snapshot
// is handed to a single writer goroutine, so writes reach storage in mutation
// order and a slow write can never clobber a newer one. Storage failures are
// logged and swallowed: in-memory state stays authoritative.
type Service struct {
	store SnapshotStore

	mu        sync.Mutex
	state     domain.AppState
	counter   int
	listeners []func(domain.AppState)

	// Single-slot in-flight token for order creation. Held from the moment a
	// creation is admitted until its snapshot write completes; a second
	// creation arriving in that window is dropped, not queued.
	addInFlight atomic.Bool

	ops  chan saveOp
	done chan struct{}
}

func New(store SnapshotStore) *Service {
	s := &Service{
		store:   store,
		state:   domain.EmptyState(),
		counter: 1,
		ops:     make(chan saveOp, saveQueueSize),
		done:    make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

// Init hydrates the state from storage. The persisted counter is never
// trusted: it is recomputed from order history, defaulting a missing order
// number to the order's 1-based position.
func (s *Service) Init(ctx context.Context) {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("appstate: load failed, starting fresh: %v", err)
		return
	}
	if loaded == nil {
		return
	}

	next := nextCounter(loaded.Orders)

	s.mu.Lock()
	s.state = *loaded.Clone()
	s.state.OrderCounter = next
	s.counter = next
	s.mu.Unlock()

	log.Printf("appstate: restored %d orders, next order number %d", len(loaded.Orders), next)
}

func nextCounter(orders []domain.Order) int {
	max := 0
	for i, o := range orders {
		n := o.OrderNumber
		if n <= 0 {
			n = i + 1
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// State returns a deep copy of the current state.
func (s *Service) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.Clone()
}

// Subscribe registers a listener invoked with a snapshot after every
// mutation. Register listeners during wiring, before traffic starts.
func (s *Service) Subscribe(fn func(domain.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Login installs the user and generates the session display code (CRN + four
// random digits). Calling it while already logged in starts a fresh session
// with a new code.
func (s *Service) Login(identifier string) domain.AppState {
	crn := fmt.Sprintf("CRN%d", 1000+rand.Intn(9000))

	s.mu.Lock()
	s.state.User = &domain.User{
		PhoneOrEmail: identifier,
		LoginTime:    time.Now().UTC().Format(time.RFC3339),
	}
	s.state.IsAuthenticated = true
	s.state.CRN = crn
	snap := s.state.Clone()
	s.mu.Unlock()

	s.enqueue(saveOp{state: snap})
	s.notify(snap)
	return *snap
}

// Logout wipes the session: stored entry removed, state back to the empty
// default, order counter back to 1. Safe to call when already logged out.
func (s *Service) Logout() {
	s.reset("logout")
}

// ClearAll is the explicit "erase everything" operation. Same effect as
// Logout; kept separate so callers say what they mean.
func (s *Service) ClearAll() {
	s.reset("clear")
}

func (s *Service) reset(reason string) {
	s.mu.Lock()
	s.state = domain.EmptyState()
	s.counter = 1
	snap := s.state.Clone()
	s.mu.Unlock()

	// The clear rides the same queue as saves so it cannot be overtaken by an
	// earlier snapshot still waiting to be written.
	s.enqueue(saveOp{state: nil})
	s.notify(snap)
	log.Printf("appstate: state reset (%s)", reason)
}

// UpdateProfile replaces the stored contact profile wholesale. Orders are
// untouched.
func (s *Service) UpdateProfile(p domain.Profile) {
	s.mu.Lock()
	s.state.Profile = &p
	snap := s.state.Clone()
	s.mu.Unlock()

	s.enqueue(saveOp{state: snap})
	s.notify(snap)
}

// AddOrder creates a new order from the draft. At most one creation may be in
// flight: a concurrent call returns (nil, false) and changes nothing. The
// order number is taken from the counter and the counter advanced before
// anything else happens, so numbers are never reused even if the write fails.
func (s *Service) AddOrder(draft domain.OrderDraft) (*domain.Order, bool) {
	if !s.addInFlight.CompareAndSwap(false, true) {
		log.Printf("appstate: order creation already in flight, dropping request")
		return nil, false
	}

	s.mu.Lock()
	n := s.counter
	s.counter = n + 1

	order := domain.Order{
		ID:           fmt.Sprintf("ORD%d%d", n, time.Now().UnixMilli()),
		OrderNumber:  n,
		FullName:     draft.FullName,
		Phone:        draft.Phone,
		Email:        draft.Email,
		PropertyType: draft.PropertyType,
		ServiceType:  draft.ServiceType,
		BHK:          draft.BHK,
		Rooms:        draft.Rooms,
		Toilets:      draft.Toilets,
		IsPaid:       false,
		Status:       domain.OrderPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	s.state.Orders = append(s.state.Orders, order)
	s.state.OrderCounter = s.counter
	snap := s.state.Clone()
	s.mu.Unlock()

	// The token is released by the writer once the snapshot write finishes,
	// success or not. The in-memory append stands either way.
	s.enqueue(saveOp{state: snap, onDone: func(error) {
		s.addInFlight.Store(false)
	}})
	s.notify(snap)
	return &order, true
}

// UpdateOrder merges the patch into the order with the given id, keeping its
// position in the list. An unknown id is a silent no-op: (nil, false).
func (s *Service) UpdateOrder(id string, upd domain.OrderUpdate) (*domain.Order, bool) {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, false
	}

	order := s.state.Orders[idx]
	upd.Apply(&order)
	s.state.Orders[idx] = order
	snap := s.state.Clone()
	s.mu.Unlock()

	s.enqueue(saveOp{state: snap})
	s.notify(snap)

	out := order
	return &out, true
}

// Flush blocks until every write enqueued so far has been attempted.
func (s *Service) Flush() {
	ack := make(chan struct{})
	s.enqueue(saveOp{ack: ack})
	select {
	case <-ack:
	case <-s.done:
	}
}

// Close flushes pending writes and stops the writer.
func (s *Service) Close() {
	s.Flush()
	close(s.ops)
	<-s.done
}

func (s *Service) enqueue(op saveOp) {
	s.ops <- op
}

func (s *Service) notify(snap *domain.AppState) {
	s.mu.Lock()
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(*snap.Clone())
	}
}

func (s *Service) writeLoop() {
	defer close(s.done)
	for op := range s.ops {
		if op.ack != nil {
			close(op.ack)
			continue
		}

		var err error
		if op.state == nil {
			if err = s.store.Clear(context.Background()); err != nil {
				log.Printf("appstate: clearing stored snapshot failed: %v", err)
			}
		} else {
			if err = s.store.Save(context.Background(), op.state); err != nil {
				log.Printf("appstate: saving snapshot failed: %v", err)
			}
		}

		if op.onDone != nil {
			op.onDone(err)
		}
	}
}
