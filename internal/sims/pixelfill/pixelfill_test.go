package pixelfill

import (
	"testing"

	"simstation/internal/core"
)

func TestUpdateAdvancesCursor(t *testing.T) {
	f := New()
	if f.Filled() != 0 {
		t.Fatalf("fresh sim has %d filled", f.Filled())
	}
	for i := 0; i < 3; i++ {
		f.Update()
	}
	if f.Filled() != 3 {
		t.Fatalf("filled = %d, want 3", f.Filled())
	}
}

func TestUpdateStopsAtEnd(t *testing.T) {
	f := New()
	total := core.FrameW * core.FrameH
	for i := 0; i < total+10; i++ {
		f.Update()
	}
	if f.Filled() != total {
		t.Fatalf("filled = %d, want %d", f.Filled(), total)
	}
}

func TestRenderColors(t *testing.T) {
	f := New()
	f.Update()
	buf := make([]byte, core.FrameBytes)
	f.Render(buf)

	if buf[0] != 0 || buf[1] != 255 || buf[2] != 255 {
		t.Fatalf("lit pixel = %v, want cyan", buf[0:3])
	}
	if buf[3] != 20 || buf[4] != 20 || buf[5] != 20 {
		t.Fatalf("unlit pixel = %v, want dark gray", buf[3:6])
	}
}

func TestResetClears(t *testing.T) {
	f := New()
	for i := 0; i < 100; i++ {
		f.Update()
	}
	f.Reset()
	if f.Filled() != 0 {
		t.Fatalf("filled after reset = %d", f.Filled())
	}
	buf := make([]byte, core.FrameBytes)
	f.Render(buf)
	if buf[0] != 20 {
		t.Fatalf("first pixel after reset = %v, want dark gray", buf[0:3])
	}
}
