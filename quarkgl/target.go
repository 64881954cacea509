package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// BlendTarget is a Target that can composite translucent pixels over its contents.
//
// Targets that do not implement it receive translucent pixels as opaque writes.
type BlendTarget interface {
	Target
	BlendPixel(x, y int, c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "solid-flat"
	default:
		return "unknown"
	}
}
