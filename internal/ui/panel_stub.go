//go:build !ebiten

package ui

import "simstation/internal/core"

// Actions describes what the user asked for during one panel update.
type Actions struct {
	Load        string
	TogglePause bool
	Reset       bool
	Rate        float64
	RateChanged bool
}

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns a stub panel.
func NewPanel(int) *Panel { return &Panel{} }

// Width returns zero in the headless build.
func (p *Panel) Width() int { return 0 }

// SetActive is a no-op in the headless build.
func (p *Panel) SetActive(string, core.RateConfig) {}

// Update is a no-op in the headless build.
func (p *Panel) Update(int, core.Sim, bool, float64) Actions { return Actions{} }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, int, int) {}
