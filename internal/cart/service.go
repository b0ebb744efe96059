package cart

import (
	"context"
	"log"
	"sync"
)

// Store is the durable slot the cart survives restarts in. Load never
// fails: a missing or unreadable slot is an empty cart.
type Store interface {
	Load() []LineItem
	Save(items []LineItem) error
	Clear() error
}

// CouponValidator resolves a coupon code to its discount amount.
type CouponValidator interface {
	Validate(ctx context.Context, code string) (float64, error)
}

// Service owns one cart state and runs every command through the
// reducer, persisting the item list before the call returns. The mutex
// serializes commands the way the browser's UI thread did; there is no
// package-level instance, callers hold the one they construct.
type Service struct {
	mu        sync.Mutex
	state     State
	store     Store
	validator CouponValidator
	defaults  Defaults
	logger    *log.Logger
}

func NewService(store Store, validator CouponValidator, defaults Defaults, logger *log.Logger) *Service {
	s := &Service{
		store:     store,
		validator: validator,
		defaults:  defaults,
		logger:    logger,
	}
	s.state.Items = store.Load()
	return s
}

// Dispatch applies one command and returns the resulting state snapshot.
// Mutating commands persist synchronously; a failed write is logged and
// swallowed because the in-memory cart stays authoritative for the
// session. Clear erases the slot instead of writing an empty list.
func (s *Service) Dispatch(cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.apply(cmd, s.defaults)

	switch cmd.(type) {
	case Initialize:
		// read-only recompute, nothing to persist
	case Clear:
		if err := s.store.Clear(); err != nil {
			s.logger.Printf("erase cart slot: %v", err)
		}
	default:
		if err := s.store.Save(s.state.Items); err != nil {
			s.logger.Printf("persist cart: %v", err)
		}
	}

	return s.snapshotLocked()
}

// State returns a copy of the current cart state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ClearMessage drops the transient mutation message once it has been
// shown.
func (s *Service) ClearMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastMessage = ""
}

// ApplyCoupon validates the code and, only on success, records its
// discount. An unknown code leaves the state untouched and surfaces the
// validator's error. The discount is session-only and never persisted.
func (s *Service) ApplyCoupon(ctx context.Context, code string) (State, error) {
	discount, err := s.validator.Validate(ctx, code)
	if err != nil {
		return s.State(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AppliedCouponDiscount = discount
	return s.snapshotLocked(), nil
}

// RemoveCoupon resets the applied discount to zero.
func (s *Service) RemoveCoupon() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AppliedCouponDiscount = 0
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() State {
	snap := s.state
	snap.Items = make([]LineItem, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	return snap
}
