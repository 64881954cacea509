package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Scalar is the numeric type used by QuarkGL math operations.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 = mgl32.Vec3

// Vec4 is a 4D vector.
type Vec4 = mgl32.Vec4

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 = mgl32.Mat4

func V3(x, y, z Scalar) Vec3 { return Vec3{x, y, z} }

// Normalize returns v scaled to unit length, or the zero vector for a zero input.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Mat4Identity() Mat4 { return mgl32.Ident4() }

func Mat4Mul(a, b Mat4) Mat4 { return a.Mul4(b) }

func Mat4MulV4(m Mat4, v Vec4) Vec4 { return m.Mul4x1(v) }

func Mat4Translate(v Vec3) Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) }

func Mat4RotateX(rad Scalar) Mat4 { return mgl32.HomogRotate3DX(rad) }

func Mat4RotateY(rad Scalar) Mat4 { return mgl32.HomogRotate3DY(rad) }

// Mat4EulerXY returns the rotation of an XYZ-ordered Euler triple with z = 0.
func Mat4EulerXY(rx, ry Scalar) Mat4 {
	return Mat4Mul(Mat4RotateX(rx), Mat4RotateY(ry))
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// Mat4Perspective builds a projection matrix. fovYRad is in radians.
func Mat4Perspective(fovYRad Scalar, aspect Scalar, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return mgl32.Perspective(fovYRad, aspect, zNear, zFar)
}

// DegToRad converts degrees to radians.
func DegToRad(deg Scalar) Scalar { return mgl32.DegToRad(deg) }

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }
