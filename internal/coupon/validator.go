// Package coupon validates discount codes. The current validator is a
// demo stand-in for a remote coupon service: a fixed table behind an
// artificial network delay.
package coupon

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrUnknownCode = errors.New("unknown coupon code")

// DemoCodes maps valid codes to their fixed discount amounts.
func DemoCodes() map[string]float64 {
	return map[string]float64{
		"SAVE10":    10,
		"WELCOME20": 20,
		"FREESHIP":  5,
	}
}

type Validator struct {
	codes map[string]float64
	delay time.Duration
}

// NewValidator builds a validator over the given code table. delay is
// the simulated round-trip before a result resolves; zero disables it.
func NewValidator(codes map[string]float64, delay time.Duration) *Validator {
	return &Validator{codes: codes, delay: delay}
}

// Validate resolves a code to its discount. Codes are trimmed and
// matched case-insensitively. Unknown codes return ErrUnknownCode.
func (v *Validator) Validate(ctx context.Context, code string) (float64, error) {
	if v.delay > 0 {
		t := time.NewTimer(v.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-t.C:
		}
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	discount, ok := v.codes[normalized]
	if !ok {
		return 0, ErrUnknownCode
	}
	return discount, nil
}
