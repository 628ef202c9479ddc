// Package pixelfill is the simplest simulation: each step lights one more
// pixel of the frame. It runs synchronously inside Update, no worker needed.
package pixelfill

import (
	"fmt"

	"simstation/internal/core"
)

// Fill sweeps a cursor across the frame, lighting cells as it goes.
type Fill struct {
	grid   *core.ByteGrid
	cursor int
}

// New creates a Fill sized to the shared frame.
func New() *Fill {
	f := &Fill{grid: core.NewByteGrid(core.FrameW, core.FrameH)}
	f.Reset()
	return f
}

// Name identifies the simulation.
func (f *Fill) Name() string { return "Simple Pixel Fill" }

// Rate returns the advisory rate range.
func (f *Fill) Rate() core.RateConfig {
	return core.RateConfig{Min: 1, Max: 10000, Default: 60}
}

// Reset clears the grid and rewinds the cursor.
func (f *Fill) Reset() {
	f.grid.Clear()
	f.cursor = 0
}

// Update lights the next cell, if any remain.
func (f *Fill) Update() {
	cells := f.grid.Cells()
	if f.cursor < len(cells) {
		cells[f.cursor] = 255
		f.cursor++
	}
}

// Filled reports how many cells have been lit.
func (f *Fill) Filled() int { return f.cursor }

// Render paints lit cells cyan over a dark background.
func (f *Fill) Render(buf []byte) {
	for i, val := range f.grid.Cells() {
		base := i * 3
		if base+2 >= len(buf) {
			break
		}
		if val > 0 {
			buf[base+0] = 0
			buf[base+1] = 255
			buf[base+2] = 255
			continue
		}
		buf[base+0] = 20
		buf[base+1] = 20
		buf[base+2] = 20
	}
}

// UI shows fill progress and a bulk-fill shortcut.
func (f *Fill) UI(panel core.Panel) {
	panel.Label(fmt.Sprintf("Pixels Filled: %d", f.cursor))
	panel.Label(fmt.Sprintf("Total: %d", len(f.grid.Cells())))
	if panel.Button("Fill 1000x") {
		for i := 0; i < 1000; i++ {
			f.Update()
		}
	}
}

func init() {
	core.Register("Simple Pixel Fill", func(cfg map[string]string) core.Sim {
		return New()
	})
}
