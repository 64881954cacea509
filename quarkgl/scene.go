package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255. 255 means opaque.
}

// Translucent reports whether the material needs blending.
func (m Material) Translucent() bool { return m.Opacity < 0xFF }

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// Fog is linear distance fog: no effect before Near, full Color at Far.
type Fog struct {
	Enabled bool
	Color   Color
	Near    Scalar
	Far     Scalar
}

// factor returns the fog weight for an eye-space distance.
func (f Fog) factor(dist Scalar) Scalar {
	if !f.Enabled || f.Far <= f.Near {
		return 0
	}
	return Clamp01((dist - f.Near) / (f.Far - f.Near))
}

// Camera describes a perspective viewing transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad Scalar
	// Aspect is width/height. Zero means "use the target's aspect".
	Aspect Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix. fallbackAspect is used when c.Aspect is unset.
func (c Camera) Projection(fallbackAspect Scalar) Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = fallbackAspect
	}
	fov := c.FOVYRad
	if fov == 0 {
		fov = Scalar(1.0)
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// LookAt aims the camera at p.
func (c *Camera) LookAt(p Vec3) { c.Target = p }

// Vertex is a mesh vertex.
type Vertex struct {
	Pos Vec3
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material
}

// Scene is a fixed-capacity collection of meshes plus camera, light and fog.
type Scene struct {
	Camera Camera
	Light  Light
	Fog    Fog

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  Scalar(1.0),
			Near:     Scalar(0.05),
			Far:      Scalar(100),
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   Scalar(0.25),
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: Scalar(0.75),
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.Opacity == 0 {
			m.Material.Opacity = 0xFF
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// Mesh returns a copy of the mesh with the given id.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return Mesh{}, false
	}
	return s.meshes[id], true
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, ok := range s.alive {
		if ok {
			n++
		}
	}
	return n
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// Release drops every mesh. The scene keeps its capacity but renders nothing afterwards.
func (s *Scene) Release() {
	if s == nil {
		return
	}
	for i := range s.meshes {
		s.meshes[i] = Mesh{}
		s.alive[i] = false
	}
}

func (s *Scene) eachMesh(fn func(id int, m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(i, &s.meshes[i])
	}
}
