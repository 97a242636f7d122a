package transition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestRun_ResolvesWithNewLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := New(clock)

	type result struct {
		limit int
		err   error
	}
	done := make(chan result, 1)
	go func() {
		limit, err := tr.Run(context.Background(), 60, 50)
		done <- result{limit, err}
	}()

	clock.BlockUntil(1)
	if !tr.Announcing() {
		t.Fatal("Announcing() = false during Run")
	}

	clock.Advance(Duration)
	res := <-done
	if res.err != nil {
		t.Fatalf("Run returned error: %v", res.err)
	}
	if res.limit != 50 {
		t.Fatalf("Run resolved with %d, want 50", res.limit)
	}
	if tr.Announcing() {
		t.Fatal("Announcing() = true after Run finished")
	}
}

func TestRun_SecondCallRejected(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := New(clock)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = tr.Run(context.Background(), 60, 50)
	}()

	clock.BlockUntil(1)
	if _, err := tr.Run(context.Background(), 50, 40); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second Run error = %v, want ErrInFlight", err)
	}

	clock.Advance(Duration)
	<-done

	// Idle again: a new Run must be accepted.
	go func() {
		clock.BlockUntil(1)
		clock.Advance(Duration)
	}()
	if _, err := tr.Run(context.Background(), 50, 40); err != nil {
		t.Fatalf("Run after idle returned error: %v", err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := New(clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := tr.Run(ctx, 60, 50)
		done <- err
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if tr.Announcing() {
		t.Fatal("Announcing() = true after cancelled Run")
	}
}
