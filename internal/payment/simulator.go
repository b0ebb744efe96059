// Package payment fakes the payment processor behind the checkout
// result pages. No real provider is involved; intents resolve locally
// after a short artificial processing delay.
package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("payment intent not found")

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type Intent struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Status        Status    `json:"status"`
	FailureReason string    `json:"failureReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Simulator struct {
	mu      sync.Mutex
	intents map[string]Intent
	delay   time.Duration
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{intents: make(map[string]Intent), delay: delay}
}

// Process creates and immediately settles a demo intent. Non-positive
// amounts fail, everything else succeeds; the delay stands in for the
// provider round-trip and honors ctx cancellation.
func (s *Simulator) Process(ctx context.Context, amount float64) (Intent, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Intent{}, ctx.Err()
		case <-t.C:
		}
	}

	intent := Intent{
		ID:        uuid.NewString(),
		Amount:    amount,
		Status:    StatusSucceeded,
		CreatedAt: time.Now().UTC(),
	}
	if amount <= 0 {
		intent.Status = StatusFailed
		intent.FailureReason = "amount must be positive"
	}

	s.mu.Lock()
	s.intents[intent.ID] = intent
	s.mu.Unlock()

	return intent, nil
}

// Get returns a settled intent for the result page.
func (s *Simulator) Get(intentID string) (Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[intentID]
	if !ok {
		return Intent{}, ErrNotFound
	}
	return intent, nil
}
