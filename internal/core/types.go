package core

import "sort"

// Frame dimensions shared by every simulation. Render targets are always
// FrameW*FrameH*3 bytes of row-major RGB.
const (
	FrameW = 400
	FrameH = 300

	// FrameBytes is the required length of a render buffer.
	FrameBytes = FrameW * FrameH * 3
)

// Panel is the opaque drawing surface handed to a simulation's UI hook.
// Simulations report values and controls through it without knowing how
// the host paints them.
type Panel interface {
	Heading(text string)
	Label(text string)
	Highlight(text string)
	Separator()
	// Button reports whether the labelled button was clicked this frame.
	Button(label string) bool
}

// Sim is the contract every simulation implements. Update advances state by
// exactly one discrete step and must never block; Render overwrites buf with
// the current frame; Reset returns the simulation to its initial state.
type Sim interface {
	Name() string
	Rate() RateConfig
	Update()
	Render(buf []byte)
	Reset()
	UI(panel Panel)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
