package quarkgl

// FollowController eases a camera toward a pointer-derived position in its XY plane and keeps
// it aimed at a fixed point.
//
// Each Step covers Gain of the remaining distance to (px*Scale, py*Scale). The easing is
// per call, not per unit of time.
type FollowController struct {
	LookAt Vec3
	Scale  Scalar
	Gain   Scalar
}

// Step moves cam one easing step toward the pointer (px, py) and re-aims it.
func (c *FollowController) Step(cam *Camera, px, py Scalar) {
	if cam == nil {
		return
	}
	cam.Position[0] += (px*c.Scale - cam.Position[0]) * c.Gain
	cam.Position[1] += (py*c.Scale - cam.Position[1]) * c.Gain
	cam.LookAt(c.LookAt)
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}
