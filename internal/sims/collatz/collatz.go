// Package collatz searches for the longest Collatz chain below one million,
// streaming a snapshot of the search to the host after every number checked.
// The computation runs on a bridge worker; the host displays whichever
// snapshot it last drained.
package collatz

import (
	"context"
	"fmt"

	"simstation/internal/bridge"
	"simstation/internal/core"
	"simstation/internal/render"
)

const (
	searchLimit = 1_000_000

	// historyLen matches the frame width: one bar per column.
	historyLen = core.FrameW

	// The longest chain below one million is 525 steps; bars are scaled so
	// that length fills the frame height.
	maxKnownLen = 525
)

// State is one snapshot of the search. It is transferred whole through the
// bridge, so clone copies the history rather than aliasing it.
type State struct {
	Current uint64
	Length  uint64
	BestNum uint64
	BestLen uint64
	History []uint64
}

func (s State) clone() State {
	out := s
	out.History = append([]uint64(nil), s.History...)
	return out
}

// chainLength returns the number of terms in the Collatz chain starting at
// n, counting n itself.
func chainLength(n uint64) uint64 {
	length := uint64(1)
	for n > 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		length++
	}
	return length
}

// Solve is the bridge recipe: it checks every number up to the search limit
// and emits a snapshot per number, stopping when the bridge is reset.
func Solve(ctx context.Context, out chan<- State) {
	solve(ctx, out, searchLimit)
}

func solve(ctx context.Context, out chan<- State, limit uint64) {
	var st State
	for i := uint64(1); i < limit; i++ {
		length := chainLength(i)

		st.Current = i
		st.Length = length
		st.History = append(st.History, length)
		if len(st.History) > historyLen {
			st.History = st.History[1:]
		}
		if length > st.BestLen {
			st.BestLen = length
			st.BestNum = i
		}

		if !bridge.Emit(ctx, out, st.clone()) {
			return
		}
	}
}

// Render draws the rolling history as vertical bars, one column per number,
// shaded blue at the base toward white at the tip.
func Render(st State, buf []byte) {
	render.FillRGB(buf, 0, 0, 0)
	w, h := core.FrameW, core.FrameH
	for x, length := range st.History {
		if x >= w {
			break
		}
		barHeight := int(float64(length) / maxKnownLen * float64(h))
		if barHeight > h {
			barHeight = h
		}
		for y := 0; y < barHeight; y++ {
			// Flip so bars grow from the bottom edge.
			py := h - 1 - y
			intensity := uint8(255)
			if v := uint8(y); v < 128 {
				intensity = v * 2
			}
			render.SetRGB(buf, w, x, py, 0, intensity, 255-intensity/2)
		}
	}
}

// Panel reports search progress and the current record.
func Panel(st State, panel core.Panel) {
	panel.Heading("Problem 14: Collatz")
	panel.Label(fmt.Sprintf("Checking: %d", st.Current))
	panel.Label(fmt.Sprintf("Length: %d", st.Length))
	panel.Separator()
	panel.Heading("Current Record")
	panel.Label(fmt.Sprintf("Number: %d", st.BestNum))
	panel.Highlight(fmt.Sprintf("Length: %d", st.BestLen))
}

func init() {
	core.Register("Problem 14: Collatz", func(cfg map[string]string) core.Sim {
		return bridge.New(
			"Problem 14: Collatz",
			core.RateConfig{Min: 1, Max: 50000, Default: 10000},
			Solve, Render, Panel,
		)
	})
}
