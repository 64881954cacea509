package quarkgl

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// ParseHex parses a "#rrggbb" color into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string { return c.colorful().Hex() }

func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// Mix blends c toward o by t in 0..1 (RGB space). Alpha is kept from c.
func (c Color) Mix(o Color, t Scalar) Color {
	t = Clamp01(t)
	if t == 0 {
		return c
	}
	m := c.colorful().BlendRgb(o.colorful(), float64(t)).Clamped()
	r, g, b := m.RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// over composites src onto dst using src.A as coverage. The result is opaque when dst is.
func over(dst, src Color) Color {
	a := uint32(src.A)
	if a == 0xFF {
		return src
	}
	if a == 0 {
		return dst
	}
	inv := 255 - a
	blend := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*inv + 127) / 255)
	}
	return Color{
		R: blend(dst.R, src.R),
		G: blend(dst.G, src.G),
		B: blend(dst.B, src.B),
		A: uint8(a + (uint32(dst.A)*inv+127)/255),
	}
}
