package backdrop

import (
	"github.com/go-gl/mathgl/mgl64"

	"folio/quarkgl"
)

const (
	// ObjectCount is the fixed population of every scene.
	ObjectCount = 40
	// Bound is the half-width of the box objects are reflected inside, on x and y.
	Bound = 25.0

	spread   = 2 * Bound
	maxDrift = 0.01
	maxSpin  = 0.02

	materialOpacity = 0.6
)

// Shape is one of the fixed polyhedron kinds.
type Shape uint8

const (
	ShapeOctahedron Shape = iota
	ShapeTetrahedron
	ShapeIcosahedron
	ShapeBox

	shapeCount = 4
)

func (s Shape) String() string {
	switch s {
	case ShapeOctahedron:
		return "octahedron"
	case ShapeTetrahedron:
		return "tetrahedron"
	case ShapeIcosahedron:
		return "icosahedron"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined kinds.
func (s Shape) Valid() bool { return s < shapeCount }

// Mesh returns fresh geometry for the shape.
func (s Shape) Mesh() quarkgl.Mesh {
	switch s {
	case ShapeTetrahedron:
		return quarkgl.NewTetrahedron(0.9)
	case ShapeIcosahedron:
		return quarkgl.NewIcosahedron(0.7)
	case ShapeBox:
		return quarkgl.NewBox(1, 1, 1)
	default:
		return quarkgl.NewOctahedron(0.8)
	}
}

// Palette holds the four muted object tints: sage, warm gray, muted brown, muted blue.
var Palette = [4]quarkgl.Color{
	quarkgl.MustHex("#8b9d83"),
	quarkgl.MustHex("#a39b8b"),
	quarkgl.MustHex("#9b8b7e"),
	quarkgl.MustHex("#7e8b9b"),
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c quarkgl.Color) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Object is the fixed look of one decorative object.
type Object struct {
	Shape Shape
	Color quarkgl.Color
}

// Body is the simulated pose of one object.
type Body struct {
	Position   mgl64.Vec3
	RotX, RotY float64
}

// Velocity is the per-frame drift and spin of one object.
type Velocity struct {
	DX, DY    float64
	DRotation float64
}

// Placement fixes every random attribute of one object.
type Placement struct {
	Object   Object
	Body     Body
	Velocity Velocity
}

func (b Body) transform() quarkgl.Mat4 {
	t := quarkgl.Mat4Translate(quarkgl.V3(float32(b.Position[0]), float32(b.Position[1]), float32(b.Position[2])))
	return quarkgl.Mat4Mul(t, quarkgl.Mat4EulerXY(float32(b.RotX), float32(b.RotY)))
}
