package countdown

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestTimer_RemainingIsWallClockAnchored(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)
	timer.Start(10*time.Second, nil)

	if got := timer.Remaining(); got != 10 {
		t.Fatalf("Remaining at start = %d, want 10", got)
	}

	clock.Advance(3 * time.Second)
	if got := timer.Remaining(); got != 7 {
		t.Fatalf("Remaining after 3s = %d, want 7", got)
	}

	// Fractional elapsed time rounds up.
	clock.Advance(500 * time.Millisecond)
	if got := timer.Remaining(); got != 7 {
		t.Fatalf("Remaining after 3.5s = %d, want 7", got)
	}
}

func TestTimer_ExpiresOnceDespiteSkippedTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	fired := 0
	timer.Start(10*time.Second, func() { fired++ })

	// Simulate a tick loop that was suspended well past the deadline:
	// no intermediate ticks at all.
	clock.Advance(25 * time.Second)

	remaining, running := timer.Tick()
	if remaining != 0 || running {
		t.Fatalf("Tick after expiry = (%d, %t), want (0, false)", remaining, running)
	}
	if fired != 1 {
		t.Fatalf("expire fired %d times, want 1", fired)
	}

	// Further ticks must not re-fire.
	for i := 0; i < 3; i++ {
		timer.Tick()
	}
	if fired != 1 {
		t.Fatalf("expire fired %d times after extra ticks, want 1", fired)
	}
}

func TestTimer_ExpiresExactlyAtLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	fired := 0
	timer.Start(10*time.Second, func() { fired++ })
	clock.Advance(10 * time.Second)

	if remaining, _ := timer.Tick(); remaining != 0 {
		t.Fatalf("remaining at exactly 10s = %d, want 0", remaining)
	}
	if fired != 1 {
		t.Fatalf("expire fired %d times, want 1", fired)
	}
}

func TestTimer_RestartCancelsPreviousRun(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	oldFired := false
	timer.Start(5*time.Second, func() { oldFired = true })

	clock.Advance(4 * time.Second)
	newFired := 0
	timer.Start(30*time.Second, func() { newFired++ })

	// Past the old deadline but well within the new one.
	clock.Advance(10 * time.Second)
	remaining, running := timer.Tick()
	if oldFired {
		t.Fatal("old expire callback fired after restart")
	}
	if !running || remaining != 20 {
		t.Fatalf("Tick = (%d, %t), want (20, true)", remaining, running)
	}

	clock.Advance(20 * time.Second)
	timer.Tick()
	if newFired != 1 {
		t.Fatalf("new expire fired %d times, want 1", newFired)
	}
}

func TestTimer_StopPreventsExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	fired := false
	timer.Start(2*time.Second, func() { fired = true })
	timer.Stop()

	clock.Advance(time.Minute)
	if remaining, running := timer.Tick(); remaining != 0 || running {
		t.Fatalf("Tick after Stop = (%d, %t), want (0, false)", remaining, running)
	}
	if fired {
		t.Fatal("expire fired after Stop")
	}

	// Stop when already stopped is a no-op.
	timer.Stop()
}

func TestTimer_GateBlocksStart(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	gated := true
	timer.SetGate(func() bool { return gated })

	timer.Start(10*time.Second, nil)
	if timer.Running() {
		t.Fatal("Start succeeded while gate closed")
	}

	gated = false
	timer.Start(10*time.Second, nil)
	if !timer.Running() {
		t.Fatal("Start failed with gate open")
	}
}

func TestTimer_RestartFromExpiryCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	timer := New(clock)

	timer.Start(1*time.Second, func() {
		timer.Start(8*time.Second, nil)
	})

	clock.Advance(2 * time.Second)
	timer.Tick()

	if !timer.Running() {
		t.Fatal("timer not running after restart from expiry callback")
	}
	if got := timer.Remaining(); got != 8 {
		t.Fatalf("Remaining after restart = %d, want 8", got)
	}
}
