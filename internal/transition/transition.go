// Package transition implements the difficulty-change announcement: a short
// two-phase state machine (Idle -> Announcing -> Idle) that holds the game
// still while the presentation layer plays the "time limit shrank" animation.
package transition

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Duration is how long the announcement phase lasts.
const Duration = 1500 * time.Millisecond

// ErrInFlight is returned by Run when a transition is already announcing.
var ErrInFlight = errors.New("transition already in flight")

// Transition gates the countdown timer around tier changes. At most one
// announcement can be in flight at a time.
type Transition struct {
	clock    clockwork.Clock
	duration time.Duration

	mu         sync.Mutex
	announcing bool
}

// New creates an idle Transition using the given clock.
func New(clock clockwork.Clock) *Transition {
	return &Transition{clock: clock, duration: Duration}
}

// Announcing reports whether an announcement is in flight. The countdown
// timer uses this as its start gate.
func (t *Transition) Announcing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.announcing
}

// Run enters the Announcing phase, blocks for the presentation duration, and
// returns newLimit for the caller to start the timer with. The caller is
// expected to have stopped the timer already; while Run is in flight the
// timer refuses to start (see Announcing).
//
// A second Run while announcing returns ErrInFlight. Cancelling ctx ends the
// announcement early with ctx.Err().
func (t *Transition) Run(ctx context.Context, oldLimit, newLimit int) (int, error) {
	t.mu.Lock()
	if t.announcing {
		t.mu.Unlock()
		return 0, ErrInFlight
	}
	t.announcing = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.announcing = false
		t.mu.Unlock()
	}()

	select {
	case <-t.clock.After(t.duration):
		return newLimit, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
