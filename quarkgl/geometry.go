package quarkgl

// Polyhedron constructors. Every mesh is centred on the origin and its triangles wind
// counter-clockwise when seen from outside, which the rasterizer relies on for culling.

// NewOctahedron returns an octahedron with the given circumradius.
func NewOctahedron(radius Scalar) Mesh {
	r := radius
	verts := []Vec3{
		V3(r, 0, 0), V3(-r, 0, 0),
		V3(0, r, 0), V3(0, -r, 0),
		V3(0, 0, r), V3(0, 0, -r),
	}
	faces := []uint16{
		0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2,
		1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2,
	}
	return newPolyhedron(verts, faces)
}

// NewTetrahedron returns a regular tetrahedron with the given circumradius.
func NewTetrahedron(radius Scalar) Mesh {
	verts := []Vec3{
		V3(1, 1, 1), V3(-1, -1, 1), V3(-1, 1, -1), V3(1, -1, -1),
	}
	for i := range verts {
		verts[i] = Normalize(verts[i]).Mul(radius)
	}
	faces := []uint16{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1}
	return newPolyhedron(verts, faces)
}

// NewIcosahedron returns a regular icosahedron with the given circumradius.
func NewIcosahedron(radius Scalar) Mesh {
	t := (1 + sqrt32(5)) / 2
	verts := []Vec3{
		V3(-1, t, 0), V3(1, t, 0), V3(-1, -t, 0), V3(1, -t, 0),
		V3(0, -1, t), V3(0, 1, t), V3(0, -1, -t), V3(0, 1, -t),
		V3(t, 0, -1), V3(t, 0, 1), V3(-t, 0, -1), V3(-t, 0, 1),
	}
	for i := range verts {
		verts[i] = Normalize(verts[i]).Mul(radius)
	}
	faces := []uint16{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return newPolyhedron(verts, faces)
}

// NewBox returns an axis-aligned box with the given edge lengths.
func NewBox(w, h, d Scalar) Mesh {
	x, y, z := w/2, h/2, d/2
	verts := []Vec3{
		V3(-x, -y, -z), V3(x, -y, -z), V3(x, y, -z), V3(-x, y, -z),
		V3(-x, -y, z), V3(x, -y, z), V3(x, y, z), V3(-x, y, z),
	}
	faces := []uint16{
		4, 5, 6, 4, 6, 7, // +z
		1, 0, 3, 1, 3, 2, // -z
		5, 1, 2, 5, 2, 6, // +x
		0, 4, 7, 0, 7, 3, // -x
		7, 6, 2, 7, 2, 3, // +y
		0, 1, 5, 0, 5, 4, // -y
	}
	return newPolyhedron(verts, faces)
}

// newPolyhedron builds a mesh from a convex, origin-centred vertex set and flips any
// triangle whose normal points inward.
func newPolyhedron(verts []Vec3, faces []uint16) Mesh {
	vs := make([]Vertex, len(verts))
	for i, p := range verts {
		vs[i] = Vertex{Pos: p}
	}
	idx := make([]uint16, len(faces))
	copy(idx, faces)
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]]
		centroid := a.Add(b).Add(c)
		if triangleNormal(a, b, c).Dot(centroid) < 0 {
			idx[i+1], idx[i+2] = idx[i+2], idx[i+1]
		}
	}
	return Mesh{Vertices: vs, Indices: idx}
}
