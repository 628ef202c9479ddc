package core

import "simstation/internal/render"

// NoSim is the placeholder shown before a simulation is selected. It renders
// a black frame and does nothing else.
type NoSim struct{}

// Name identifies the placeholder.
func (NoSim) Name() string { return "None" }

// Rate returns the default advisory range.
func (NoSim) Rate() RateConfig { return DefaultRateConfig() }

// Update is a no-op.
func (NoSim) Update() {}

// Reset is a no-op.
func (NoSim) Reset() {}

// Render clears the frame to black.
func (NoSim) Render(buf []byte) {
	render.FillRGB(buf, 0, 0, 0)
}

// UI reports that nothing is loaded.
func (NoSim) UI(panel Panel) {
	panel.Label("No simulation selected.")
}
