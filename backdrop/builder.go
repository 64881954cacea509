package backdrop

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"folio/quarkgl"
)

// ErrNoSurface is returned by Build when the host cannot provide a renderable surface.
var ErrNoSurface = errors.New("no renderable surface")

// Surface is the pixel buffer the backdrop renders into (8-bit RGBA, image.RGBA layout).
type Surface interface {
	Width() int
	Height() int
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// Rand is a source of uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

// processRand draws from the auto-seeded process source, so placement differs per run.
type processRand struct{}

func (processRand) Float64() float64 { return rand.Float64() }

// NewRand returns a reproducible PCG source for seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Options tune Build. The zero value is the production scene.
type Options struct {
	Logger *zap.SugaredLogger
	// Rand defaults to the auto-seeded process source.
	Rand Rand
	// Placements fix the first len(Placements) objects instead of drawing them.
	Placements []Placement
	Wireframe  bool
}

// Background is the page color. It is both the clear color and the fog color, so far
// objects fade into the page.
var Background = quarkgl.MustHex("#e8e4dc")

const (
	fogNear = 10
	fogFar  = 50

	cameraFOVDeg = 75
	cameraNear   = 0.1
	cameraFar    = 1000
	cameraZ      = 30

	ambientIntensity     = 0.5
	directionalIntensity = 0.8

	pointerScale = 2
	cameraGain   = 0.02
)

// Build constructs the scene for one view: camera, lights, fog and ObjectCount objects.
//
// It fails only with ErrNoSurface, when surface is nil or has no area.
func Build(surface Surface, opts Options) (*State, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Width(), surface.Height()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrNoSurface, "surface is %dx%d", w, h)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = processRand{}
	}

	scene := quarkgl.CreateScene(ObjectCount)
	scene.Camera = quarkgl.Camera{
		Position: quarkgl.V3(0, 0, cameraZ),
		Up:       quarkgl.V3(0, 1, 0),
		FOVYRad:  quarkgl.DegToRad(cameraFOVDeg),
		Near:     cameraNear,
		Far:      cameraFar,
	}
	scene.Light = quarkgl.Light{
		Mode:      quarkgl.LightAmbientDirectional,
		Ambient:   ambientIntensity,
		Dir:       quarkgl.Normalize(quarkgl.V3(-5, -5, -5)),
		DirAmount: directionalIntensity,
	}
	scene.Fog = quarkgl.Fog{Enabled: true, Color: Background, Near: fogNear, Far: fogFar}

	renderer := quarkgl.NewRenderer(w, h, true)
	renderer.ClearColor = Background
	if opts.Wireframe {
		renderer.SetRenderMode(quarkgl.RenderWireframe)
	}

	s := &State{
		logger:     logger,
		surface:    surface,
		scene:      scene,
		renderer:   renderer,
		follow:     quarkgl.FollowController{Scale: pointerScale, Gain: cameraGain},
		objects:    make([]Object, 0, ObjectCount),
		bodies:     make([]Body, 0, ObjectCount),
		velocities: make([]Velocity, 0, ObjectCount),
		meshIDs:    make([]int, 0, ObjectCount),
	}

	var meshes [shapeCount]quarkgl.Mesh
	for i := range meshes {
		meshes[i] = Shape(i).Mesh()
	}
	opacity := uint8(math.Round(materialOpacity * 255))

	for i := 0; i < ObjectCount; i++ {
		var p Placement
		if i < len(opts.Placements) {
			p = opts.Placements[i]
		} else {
			p = randomPlacement(rnd)
		}
		if !p.Object.Shape.Valid() {
			p.Object.Shape = ShapeOctahedron
		}

		m := meshes[p.Object.Shape]
		m.Material = quarkgl.Material{BaseColor: p.Object.Color, Opacity: opacity}
		m.Transform = p.Body.transform()
		id := scene.AddMesh(m)
		if id < 0 {
			return nil, errors.Errorf("scene full after %d objects", i)
		}

		s.objects = append(s.objects, p.Object)
		s.bodies = append(s.bodies, p.Body)
		s.velocities = append(s.velocities, p.Velocity)
		s.meshIDs = append(s.meshIDs, id)
	}

	s.Resize(w, h)
	logger.Debugw("backdrop built", "objects", len(s.bodies), "width", w, "height", h)
	return s, nil
}

// randomPlacement draws one object in the fixed order shape, color, position, rotation,
// velocity.
func randomPlacement(r Rand) Placement {
	var p Placement
	p.Object.Shape = Shape(pick(r, shapeCount))
	p.Object.Color = Palette[pick(r, len(Palette))]

	p.Body.Position = mgl64.Vec3{
		(r.Float64() - 0.5) * spread,
		(r.Float64() - 0.5) * spread,
		(r.Float64() - 0.5) * spread,
	}
	p.Body.RotX = r.Float64() * math.Pi
	p.Body.RotY = r.Float64() * math.Pi

	p.Velocity = Velocity{
		DX:        (r.Float64() - 0.5) * maxDrift,
		DY:        (r.Float64() - 0.5) * maxDrift,
		DRotation: (r.Float64() - 0.5) * maxSpin,
	}
	return p
}

func pick(r Rand, n int) int {
	i := int(math.Floor(r.Float64() * float64(n)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
