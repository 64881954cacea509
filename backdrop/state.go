package backdrop

import (
	"math"

	"go.uber.org/zap"

	"folio/quarkgl"
)

// Pointer is a normalized pointer position: -1..1 on both axes, y up.
type Pointer struct {
	X, Y float64
}

// Viewport is the display surface size in pixels.
type Viewport struct {
	W, H int
}

// State is everything one backdrop view owns. Simulation data lives in index-aligned slices;
// meshIDs[i] names the renderable for objects[i].
//
// State is not safe for concurrent use; hosts call it from one goroutine.
type State struct {
	logger   *zap.SugaredLogger
	surface  Surface
	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	follow   quarkgl.FollowController

	objects    []Object
	bodies     []Body
	velocities []Velocity
	meshIDs    []int

	pointer  Pointer
	viewport Viewport
	released bool
}

// Step advances the simulation by one frame: drift and spin, boundary reflection, camera
// easing toward the pointer, camera re-aim at the origin.
func (s *State) Step() {
	if s.released {
		return
	}
	for i := range s.bodies {
		b := &s.bodies[i]
		v := &s.velocities[i]

		b.Position[0] += v.DX
		b.Position[1] += v.DY
		b.RotX += v.DRotation
		b.RotY += v.DRotation

		// The object may already be past the wall; it walks back on the next frames.
		if math.Abs(b.Position[0]) > Bound {
			v.DX = -v.DX
		}
		if math.Abs(b.Position[1]) > Bound {
			v.DY = -v.DY
		}

		s.scene.UpdateMeshTransform(s.meshIDs[i], b.transform())
	}

	s.follow.Step(&s.scene.Camera, float32(s.pointer.X), float32(s.pointer.Y))
}

// Render draws the scene into the surface and presents it.
func (s *State) Render() error {
	if s.released || s.surface == nil {
		return nil
	}
	target := &quarkgl.RGBATarget{
		Buf:    s.surface.Buffer(),
		Stride: s.surface.StrideBytes(),
		W:      s.surface.Width(),
		H:      s.surface.Height(),
	}
	s.renderer.Render(target, s.scene)
	return s.surface.Present()
}

// Release drops the meshes and render buffers. Later Step, Render and events are no-ops.
func (s *State) Release() {
	if s.released {
		return
	}
	s.released = true
	s.scene.Release()
	s.renderer.Release()
	s.logger.Debugw("backdrop released")
}

// Released reports whether Release has run.
func (s *State) Released() bool { return s.released }

// Len returns the number of decorative objects.
func (s *State) Len() int { return len(s.bodies) }

// Object returns the look, pose and velocity of object i.
func (s *State) Object(i int) (Object, Body, Velocity) {
	return s.objects[i], s.bodies[i], s.velocities[i]
}

// Camera returns a copy of the current camera.
func (s *State) Camera() quarkgl.Camera { return s.scene.Camera }

// SetCameraPosition moves the camera eye. The camera keeps looking at the origin.
func (s *State) SetCameraPosition(x, y, z float64) {
	s.scene.Camera.Position = quarkgl.V3(float32(x), float32(y), float32(z))
}

// Pointer returns the last normalized pointer position.
func (s *State) Pointer() Pointer { return s.pointer }

// Viewport returns the current viewport size.
func (s *State) Viewport() Viewport { return s.viewport }
