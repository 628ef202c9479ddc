package bridge

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"simstation/internal/core"
)

func noRender(int, []byte) {}

func noPanel(int, core.Panel) {}

func rate() core.RateConfig { return core.DefaultRateConfig() }

func idle(ctx context.Context, out chan<- int) {
	<-ctx.Done()
}

// pollUntil keeps calling Update until pred holds or the deadline expires.
func pollUntil(t *testing.T, s *Async[int], pred func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !pred() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached, state=%d", s.State())
		}
		s.Update()
		time.Sleep(time.Millisecond)
	}
}

func TestDefaultStateBeforeFirstUpdate(t *testing.T) {
	s := New("test", rate(), func(ctx context.Context, out chan<- int) {
		Emit(ctx, out, 99)
	}, noRender, noPanel)
	if got := s.State(); got != 0 {
		t.Fatalf("state before first update = %d, want zero value", got)
	}
}

func TestSnapshotsArriveInOrder(t *testing.T) {
	s := New("test", rate(), func(ctx context.Context, out chan<- int) {
		for _, v := range []int{1, 2, 3} {
			if !Emit(ctx, out, v) {
				return
			}
		}
	}, noRender, noPanel)

	var seen []int
	prev := 0
	pollUntil(t, s, func() bool {
		if v := s.State(); v != prev {
			seen = append(seen, v)
			prev = v
		}
		return len(seen) == 3
	})
	for i, want := range []int{1, 2, 3} {
		if seen[i] != want {
			t.Fatalf("observed sequence %v, want [1 2 3]", seen)
		}
	}

	// The recipe has exited without further sends; state stays put.
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if got := s.State(); got != 3 {
		t.Fatalf("state after recipe exit = %d, want 3", got)
	}
}

func TestWorkerNeverRunsAhead(t *testing.T) {
	var attempts int64
	s := New("test", rate(), func(ctx context.Context, out chan<- int) {
		for i := 1; ; i++ {
			atomic.AddInt64(&attempts, 1)
			if !Emit(ctx, out, i) {
				return
			}
		}
	}, noRender, noPanel)

	consumed := 0
	prev := 0
	for consumed < 50 {
		s.Update()
		if v := s.State(); v != prev {
			consumed++
			prev = v
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	// The worker may at most be computing the value after the last one
	// consumed; the rendezvous forbids anything further ahead.
	if a := atomic.LoadInt64(&attempts); a > int64(consumed)+1 {
		t.Fatalf("worker attempted %d sends after %d consumed", a, consumed)
	}
}

func TestUpdateDoesNotBlock(t *testing.T) {
	s := New("test", rate(), idle, noRender, noPanel)
	start := time.Now()
	for i := 0; i < 1000; i++ {
		s.Update()
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("1000 polls against a silent worker took %v", elapsed)
	}
}

func TestResetRestartsWorker(t *testing.T) {
	var instances int32
	var stopped int32
	recipe := func(ctx context.Context, out chan<- int) {
		id := int(atomic.AddInt32(&instances, 1))
		for i := 1; ; i++ {
			if !Emit(ctx, out, id*100+i) {
				atomic.AddInt32(&stopped, 1)
				return
			}
		}
	}
	s := New("test", rate(), recipe, noRender, noPanel)

	pollUntil(t, s, func() bool { return s.State() == 101 })

	s.Reset()
	if got := s.State(); got != 0 {
		t.Fatalf("state immediately after reset = %d, want zero value", got)
	}

	// The abandoned worker halts via cancellation even if it was parked in
	// a send.
	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&stopped) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("previous worker did not stop after reset")
		}
		time.Sleep(time.Millisecond)
	}

	// The replacement starts from scratch: its first value, never a
	// leftover from the old channel.
	pollUntil(t, s, func() bool { return s.State() != 0 })
	if got := s.State(); got != 201 {
		t.Fatalf("first state after reset = %d, want 201", got)
	}
}

func TestStopHaltsWorkerWithoutReplacement(t *testing.T) {
	var stopped int32
	s := New("test", rate(), func(ctx context.Context, out chan<- int) {
		for i := 1; ; i++ {
			if !Emit(ctx, out, i) {
				atomic.AddInt32(&stopped, 1)
				return
			}
		}
	}, noRender, noPanel)

	pollUntil(t, s, func() bool { return s.State() == 1 })

	// Stop models wholesale replacement: the worker must exit even though
	// it is parked in a send and no new worker takes over the channel.
	s.Stop()
	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&stopped) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("worker did not exit after Stop")
		}
		time.Sleep(time.Millisecond)
	}

	// The last snapshot survives but never advances.
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if got := s.State(); got != 1 {
		t.Fatalf("state after stop = %d, want 1", got)
	}

	// A second Stop is harmless.
	s.Stop()
}

func TestClosedChannelLeavesStateAlone(t *testing.T) {
	s := New("test", rate(), func(ctx context.Context, out chan<- int) {
		Emit(ctx, out, 5)
		close(out)
	}, noRender, noPanel)

	pollUntil(t, s, func() bool { return s.State() == 5 })
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if got := s.State(); got != 5 {
		t.Fatalf("state after rogue close = %d, want 5", got)
	}
}

func TestNameAndRatePassThrough(t *testing.T) {
	cfg := core.RateConfig{Min: 2, Max: 500, Default: 25}
	s := New("demo", cfg, idle, noRender, noPanel)
	if s.Name() != "demo" {
		t.Fatalf("name = %q", s.Name())
	}
	if s.Rate() != cfg {
		t.Fatalf("rate config = %+v, want %+v", s.Rate(), cfg)
	}
}
