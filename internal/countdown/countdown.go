// Package countdown implements the per-question countdown.
//
// The timer is anchored to the wall-clock instant it was started: remaining
// time is recomputed from true elapsed time on every Tick, never decremented.
// A tick loop that runs late, skips frames, or is suspended entirely (for
// example while the terminal is backgrounded) therefore cannot make the
// countdown drift. If no Tick arrives while suspended, expiry detection is
// deferred until the loop resumes; the remote service validates elapsed time
// on its side, the client countdown is advisory.
package countdown

import (
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a single-shot wall-clock countdown. The zero value is not usable;
// create one with New.
type Timer struct {
	clock clockwork.Clock

	mu        sync.Mutex
	gate      func() bool
	startedAt time.Time
	limit     time.Duration
	running   bool
	onExpire  func()
}

// New creates a stopped Timer using the given clock.
func New(clock clockwork.Clock) *Timer {
	return &Timer{clock: clock}
}

// SetGate installs a guard consulted by Start. While gate() reports true,
// Start calls are silently ignored: a difficulty transition owns the right
// to (re)start the timer.
func (t *Timer) SetGate(gate func() bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gate = gate
}

// Start begins a countdown of limit, cancelling any previous run first.
// onExpire will be invoked exactly once, from the first Tick that observes
// zero remaining time. Start is a no-op while the gate is closed.
func (t *Timer) Start(limit time.Duration, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gate != nil && t.gate() {
		return
	}

	t.startedAt = t.clock.Now()
	t.limit = limit
	t.running = true
	t.onExpire = onExpire
}

// Stop cancels the countdown and clears all run state. Safe to call when
// not running. A callback registered by a previous Start will never fire
// after Stop returns.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

// reset clears run state. Caller holds t.mu.
func (t *Timer) reset() {
	t.startedAt = time.Time{}
	t.limit = 0
	t.running = false
	t.onExpire = nil
}

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Remaining returns the whole seconds left, recomputed from elapsed wall
// time. Returns 0 when the timer is not running.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return t.remaining()
}

// remaining computes ceil(limit - elapsed) in seconds. Caller holds t.mu.
func (t *Timer) remaining() int {
	elapsed := t.clock.Since(t.startedAt)
	left := (t.limit - elapsed).Seconds()
	secs := int(math.Ceil(left))
	if secs < 0 {
		return 0
	}
	return secs
}

// Tick is the rendering-opportunity hook. It recomputes remaining time and,
// the first time it observes zero, stops the timer and fires the expiry
// callback. Returns the seconds remaining and whether the timer is (still)
// running after this tick.
func (t *Timer) Tick() (remaining int, running bool) {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return 0, false
	}

	remaining = t.remaining()
	if remaining > 0 {
		t.mu.Unlock()
		return remaining, true
	}

	// Expired: detach the callback before invoking it so a restart from
	// inside the callback cannot race with this tick.
	expire := t.onExpire
	t.reset()
	t.mu.Unlock()

	if expire != nil {
		expire()
	}
	return 0, false
}
