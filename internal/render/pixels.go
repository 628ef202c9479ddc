package render

// FillRGB overwrites an RGB frame buffer with a single color.
func FillRGB(buf []byte, r, g, b uint8) {
	for i := 0; i+2 < len(buf); i += 3 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
	}
}

// SetRGB writes one pixel of a row-major RGB frame of width w. Out-of-range
// coordinates are ignored.
func SetRGB(buf []byte, w, x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || w <= 0 || x >= w {
		return
	}
	base := (y*w + x) * 3
	if base+2 >= len(buf) {
		return
	}
	buf[base+0] = r
	buf[base+1] = g
	buf[base+2] = b
}

// expandRGBA converts 3-byte RGB pixels into 4-byte opaque RGBA pixels.
// dst must hold 4 bytes for every 3 bytes of src.
func expandRGBA(dst, src []byte) {
	pixels := len(src) / 3
	for i := 0; i < pixels; i++ {
		dst[i*4+0] = src[i*3+0]
		dst[i*4+1] = src[i*3+1]
		dst[i*4+2] = src[i*3+2]
		dst[i*4+3] = 0xff
	}
}
