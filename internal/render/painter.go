//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads an RGB frame into a single texture and draws it.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	rgba []byte
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, rgba: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads the provided RGB frame and draws it scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame []byte, scale int) {
	if len(frame) != fp.w*fp.h*3 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	expandRGBA(fp.rgba, frame)
	fp.img.WritePixels(fp.rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}
