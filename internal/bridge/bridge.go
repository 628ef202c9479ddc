// Package bridge adapts long-running background computations to the
// simulation contract. A worker goroutine produces whole-state snapshots
// through an unbuffered channel; the host drains at most one per Update, so
// the worker can never run more than one step ahead of the display.
package bridge

import (
	"context"
	"log"

	"simstation/internal/core"
)

// Recipe runs a background computation, sending each completed snapshot
// through out. It must return when sending is no longer possible, which
// Emit detects via ctx.
type Recipe[T any] func(ctx context.Context, out chan<- T)

// Renderer writes the frame for a snapshot into an RGB buffer.
type Renderer[T any] func(state T, buf []byte)

// PanelFunc draws a snapshot's status panel.
type PanelFunc[T any] func(state T, panel core.Panel)

// Emit sends one snapshot, blocking until the host drains it. It returns
// false once the worker's context is cancelled, which is the signal to stop
// computing. This rendezvous is the throttling mechanism: a worker parks
// here whenever the host is paused or busy.
func Emit[T any](ctx context.Context, out chan<- T, state T) bool {
	select {
	case out <- state:
		return true
	case <-ctx.Done():
		return false
	}
}

// Async wraps a recipe behind the core.Sim contract. Update never blocks:
// it polls the hand-off channel and keeps the previous snapshot when the
// worker has nothing ready. The current snapshot is only ever replaced from
// Update on the host goroutine, so no lock is needed around it.
type Async[T any] struct {
	name   string
	rate   core.RateConfig
	state  T
	ch     <-chan T
	cancel context.CancelFunc

	recipe Recipe[T]
	render Renderer[T]
	panel  PanelFunc[T]
}

// New constructs an async simulation and immediately starts its first
// worker.
func New[T any](name string, rate core.RateConfig, recipe Recipe[T], render Renderer[T], panel PanelFunc[T]) *Async[T] {
	s := &Async[T]{
		name:   name,
		rate:   rate,
		recipe: recipe,
		render: render,
		panel:  panel,
	}
	s.Reset()
	return s
}

// Name identifies the simulation.
func (s *Async[T]) Name() string { return s.name }

// Rate returns the advisory rate range supplied at construction.
func (s *Async[T]) Rate() core.RateConfig { return s.rate }

// Update polls for the worker's next snapshot. If one is waiting it becomes
// the current state wholesale; otherwise the state is unchanged. The call
// returns immediately either way.
func (s *Async[T]) Update() {
	select {
	case state, ok := <-s.ch:
		if !ok {
			// A recipe should exit without closing its channel; if one
			// closes anyway, stop polling it rather than spinning on
			// zero values.
			s.ch = nil
			return
		}
		s.state = state
	default:
	}
}

// Stop halts the worker without starting a replacement: its context is
// cancelled, so its next Emit returns false and it exits even if it was
// parked mid-send. The host calls this when the simulation is replaced
// wholesale; the last snapshot is kept but never advances again.
func (s *Async[T]) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Reset discards the current worker and state. A fresh channel and worker
// start from scratch and the current state returns to the zero value.
func (s *Async[T]) Reset() {
	s.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	ch := make(chan T)
	s.ch = ch

	var zero T
	s.state = zero

	recipe := s.recipe
	name := s.name
	go func() {
		defer func() {
			if r := recover(); r != nil {
				// The host keeps running; the visible symptom is this
				// simulation's state freezing.
				log.Printf("sim %q: worker panic: %v", name, r)
			}
		}()
		recipe(ctx, ch)
	}()
}

// Render delegates to the stored renderer over the current snapshot.
func (s *Async[T]) Render(buf []byte) {
	s.render(s.state, buf)
}

// UI delegates to the stored panel drawer over the current snapshot.
func (s *Async[T]) UI(panel core.Panel) {
	s.panel(s.state, panel)
}

// State exposes the current snapshot.
func (s *Async[T]) State() T { return s.state }
