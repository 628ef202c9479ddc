package drift

import (
	"context"
	"testing"

	"simstation/internal/core"
)

func TestRecipeEmitsFieldSnapshots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan State)
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewRecipe(1)(ctx, out)
	}()

	first := <-out
	if first.Step != 1 {
		t.Fatalf("first snapshot step = %d, want 1", first.Step)
	}
	if len(first.Field) != fieldW*fieldH {
		t.Fatalf("field length = %d, want %d", len(first.Field), fieldW*fieldH)
	}
	second := <-out
	if second.Step != 2 || second.Z <= first.Z {
		t.Fatalf("second snapshot step=%d z=%g, want step 2 with z > %g", second.Step, second.Z, first.Z)
	}

	// Snapshots are independent copies.
	first.Field[0] = 42
	if second.Field[0] == 42 {
		t.Fatal("snapshots share field storage")
	}

	cancel()
	<-done
}

func TestRecipeIsDeterministicPerSeed(t *testing.T) {
	take := func(seed int64) State {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out := make(chan State)
		go NewRecipe(seed)(ctx, out)
		return <-out
	}
	a := take(7)
	b := take(7)
	for i := range a.Field {
		if a.Field[i] != b.Field[i] {
			t.Fatalf("field diverges at %d for identical seeds", i)
		}
	}
}

func TestRenderEmptyFieldIsBlack(t *testing.T) {
	buf := make([]byte, core.FrameBytes)
	for i := range buf {
		buf[i] = 0xaa
	}
	Render(State{}, buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d for empty field", i, b)
		}
	}
}

func TestRampRGBEndpoints(t *testing.T) {
	r, g, b := rampRGB(-1)
	if r != 8 || g != 16 || b != 60 {
		t.Fatalf("cold end = (%d,%d,%d), want (8,16,60)", r, g, b)
	}
	r, g, b = rampRGB(1)
	if r != 248 || g != 246 || b != 250 {
		t.Fatalf("warm end = (%d,%d,%d), want (248,246,250)", r, g, b)
	}
	// Values beyond the nominal noise range clamp instead of wrapping.
	r2, g2, b2 := rampRGB(3)
	if r2 != r || g2 != g || b2 != b {
		t.Fatalf("out-of-range value not clamped: (%d,%d,%d)", r2, g2, b2)
	}
}
