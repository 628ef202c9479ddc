// Package drift renders a Perlin-noise scalar field sliding along a
// wandering path through noise space. The field is computed on a bridge
// worker at quarter resolution and upscaled at render time, which keeps the
// per-step snapshot small while still exercising the bridge with a bulky
// state type.
package drift

import (
	"context"
	"fmt"
	"strconv"

	"simstation/internal/bridge"
	"simstation/internal/core"
	"simstation/internal/render"

	"github.com/aquilax/go-perlin"
)

const (
	fieldW = core.FrameW / 4
	fieldH = core.FrameH / 4

	// Noise-space sampling frequency and per-step travel.
	freq  = 0.045
	zStep = 0.01

	// Every impulseEvery steps the wander velocity gets a random kick.
	impulseEvery = 120
	impulse      = 0.3

	defaultSeed = 42
)

// State is one snapshot of the field walk.
type State struct {
	Step  uint64
	Z     float64
	Field []float64
}

func (s State) clone() State {
	out := s
	out.Field = append([]float64(nil), s.Field...)
	return out
}

// NewRecipe returns a bridge recipe walking noise space from the given seed.
func NewRecipe(seed int64) bridge.Recipe[State] {
	return func(ctx context.Context, out chan<- State) {
		p := perlin.NewPerlin(2, 2, 3, seed)
		rng := core.NewRNG(seed)

		var st State
		st.Field = make([]float64, fieldW*fieldH)
		var ox, oy, vx, vy float64

		for {
			st.Step++
			st.Z += zStep
			if st.Step%impulseEvery == 1 {
				vx = (rng.Float64() - 0.5) * impulse
				vy = (rng.Float64() - 0.5) * impulse
			}
			ox += vx * zStep
			oy += vy * zStep

			for y := 0; y < fieldH; y++ {
				for x := 0; x < fieldW; x++ {
					st.Field[y*fieldW+x] = p.Noise3D(ox+float64(x)*freq, oy+float64(y)*freq, st.Z)
				}
			}

			if !bridge.Emit(ctx, out, st.clone()) {
				return
			}
		}
	}
}

// Render upscales the field to the frame, mapping values through a cold-to-
// warm ramp. An empty field (the pre-first-snapshot state) renders black.
func Render(st State, buf []byte) {
	if len(st.Field) != fieldW*fieldH {
		render.FillRGB(buf, 0, 0, 0)
		return
	}
	w, h := core.FrameW, core.FrameH
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := st.Field[(y/4)*fieldW+x/4]
			r, g, b := rampRGB(v)
			render.SetRGB(buf, w, x, y, r, g, b)
		}
	}
}

// rampRGB maps a noise value (roughly [-1, 1]) to a color: deep blue through
// teal to warm white.
func rampRGB(v float64) (uint8, uint8, uint8) {
	t := (v + 1) / 2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t < 0.5 {
		k := t * 2
		return uint8(8 + 20*k), uint8(16 + 140*k), uint8(60 + 120*k)
	}
	k := (t - 0.5) * 2
	return uint8(28 + 220*k), uint8(156 + 90*k), uint8(180 + 70*k)
}

// Panel reports the walk position.
func Panel(st State, panel core.Panel) {
	panel.Heading("Perlin Drift")
	panel.Label(fmt.Sprintf("Step: %d", st.Step))
	panel.Label(fmt.Sprintf("Depth: %.2f", st.Z))
	if st.Step == 0 {
		panel.Label("Waiting for worker...")
	}
}

func init() {
	core.Register("Perlin Drift", func(cfg map[string]string) core.Sim {
		seed := int64(defaultSeed)
		if v, ok := cfg["seed"]; ok {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				seed = parsed
			}
		}
		return bridge.New(
			"Perlin Drift",
			core.RateConfig{Min: 1, Max: 240, Default: 60},
			NewRecipe(seed), Render, Panel,
		)
	})
}
