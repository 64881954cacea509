package quarkgl

import (
	"cmp"
	"slices"
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	queue    []queued
}

type queued struct {
	id    int
	dist  Scalar
	blend bool
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// Release drops the depth buffer and draw queue. The renderer stays usable and
// reallocates on the next Render.
func (r *Renderer) Release() {
	if r == nil {
		return
	}
	r.depthBuf = nil
	r.queue = nil
}

// DepthBufferLen reports the current depth buffer size in samples.
func (r *Renderer) DepthBufferLen() int { return len(r.depthBuf) }

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
//
// Opaque meshes are drawn first, then translucent meshes from farthest to nearest.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)
	bt, _ := t.(BlendTarget)

	r.queue = r.queue[:0]
	s.eachMesh(func(id int, m *Mesh) {
		if !m.Enabled {
			return
		}
		origin := V3(m.Transform[12], m.Transform[13], m.Transform[14])
		r.queue = append(r.queue, queued{
			id:    id,
			dist:  origin.Sub(s.Camera.Position).Len(),
			blend: m.Material.Translucent(),
		})
	})
	slices.SortStableFunc(r.queue, func(a, b queued) int {
		if a.blend != b.blend {
			if a.blend {
				return 1
			}
			return -1
		}
		if !a.blend {
			return 0
		}
		return cmp.Compare(b.dist, a.dist)
	})

	for _, q := range r.queue {
		r.renderMesh(t, bt, w, h, proj, view, s.meshes[q.id], s)
	}
}

func (r *Renderer) renderMesh(t Target, bt BlendTarget, w, h int, proj, view Mat4, m Mesh, s *Scene) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}

	vp := Mat4Mul(proj, view)
	blend := m.Material.Translucent() && bt != nil

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		w0 := Mat4MulV4(m.Transform, m.Vertices[i0].Pos.Vec4(1))
		w1 := Mat4MulV4(m.Transform, m.Vertices[i1].Pos.Vec4(1))
		w2 := Mat4MulV4(m.Transform, m.Vertices[i2].Pos.Vec4(1))

		p0 := Mat4MulV4(vp, w0)
		p1 := Mat4MulV4(vp, w1)
		p2 := Mat4MulV4(vp, w2)

		// Trivial clip: drop triangles touching or behind the eye plane.
		if p0.W() <= 0 || p1.W() <= 0 || p2.W() <= 0 {
			continue
		}

		ndc0 := clipToNDC(p0)
		ndc1 := clipToNDC(p1)
		ndc2 := clipToNDC(p2)

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		area := edgeFn(x0, y0, x1, y1, x2, y2)
		if area <= 0 {
			// Back-facing or degenerate.
			continue
		}

		c := r.shade(m, s, w0.Vec3(), w1.Vec3(), w2.Vec3(), view)

		switch r.Mode {
		case RenderWireframe:
			c.A = 0xFF
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
		default:
			r.fillTriangleFlat(t, bt, blend, w, h, area, x0, y0, ndc0[2], x1, y1, ndc1[2], x2, y2, ndc2[2], c)
		}
	}
}

// shade computes the flat color of one world-space triangle.
func (r *Renderer) shade(m Mesh, s *Scene, a, b, c Vec3, view Mat4) Color {
	base := m.Material.BaseColor
	if s.Light.Mode == LightAmbientDirectional {
		n := triangleNormal(a, b, c)
		base = base.MulScalar(lightIntensity(s.Light, n))
	}
	if s.Fog.Enabled {
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		eye := Mat4MulV4(view, centroid.Vec4(1))
		base = base.Mix(s.Fog.Color, s.Fog.factor(-eye.Z()))
	}
	base.A = m.Material.Opacity
	return base
}

func clipToNDC(p Vec4) Vec3 {
	invW := 1 / p.W()
	return V3(p.X()*invW, p.Y()*invW, p.Z()*invW)
}

func ndcToScreen(p Vec3, w, h int) (x, y int) {
	sx := (p[0]*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p[1]*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(b.Sub(a).Cross(c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := n.Dot(ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangleFlat(t Target, bt BlendTarget, blend bool, w, h, area int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			if blend {
				bt.BlendPixel(x, y, c)
				continue
			}
			t.SetPixel(x, y, c.WithAlpha(0xFF))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
