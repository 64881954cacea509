package quarkgl

import "image"

// RGBATarget renders into an 8-bit RGBA buffer (image.RGBA layout, non-premultiplied writes).
//
// Callers provide the backing buffer and layout (stride).
type RGBATarget struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGBATarget wraps an image.RGBA.
func NewRGBATarget(img *image.RGBA) *RGBATarget {
	if img == nil {
		return &RGBATarget{}
	}
	b := img.Bounds()
	return &RGBATarget{Buf: img.Pix, Stride: img.Stride, W: b.Dx(), H: b.Dy()}
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGBATarget) Clear(c Color) {
	if !t.valid() {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off < 0 || off+3 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = c.A
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	t.Buf[off] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = c.A
}

func (t *RGBATarget) BlendPixel(x, y int, c Color) {
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	dst := Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
	out := over(dst, c)
	t.Buf[off] = out.R
	t.Buf[off+1] = out.G
	t.Buf[off+2] = out.B
	t.Buf[off+3] = out.A
}

// Pixel returns the stored color at (x, y), or the zero Color out of bounds.
func (t *RGBATarget) Pixel(x, y int) Color {
	off, ok := t.offset(x, y)
	if !ok {
		return Color{}
	}
	return Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}

func (t *RGBATarget) offset(x, y int) (int, bool) {
	if !t.valid() {
		return 0, false
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return 0, false
	}
	return off, true
}
