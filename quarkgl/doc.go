// Package quarkgl provides a minimal, predictable software 3D renderer for the folio backdrop.
//
// QuarkGL draws small scenes of flat-shaded meshes: one perspective camera, an ambient plus
// directional light, optional linear fog and per-material opacity. It is not a game engine
// and does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Sort (back to front) → Transform → Projection → Clipping → Rasterization → Fog/Blend → Target.
//
// The renderer is software-only and draws into a caller-provided Target. Vector and matrix
// types are the float32 types from github.com/go-gl/mathgl/mgl32, column-major as in OpenGL.
package quarkgl
