//go:build !ebiten

package render

// FramePainter is a no-op placeholder for headless builds.
type FramePainter struct{}

// NewFramePainter returns a stub painter.
func NewFramePainter(int, int) *FramePainter { return &FramePainter{} }

// Blit is a no-op in the headless build.
func (fp *FramePainter) Blit(any, []byte, int) {}
