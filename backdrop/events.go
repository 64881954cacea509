package backdrop

// PointerMove records a pointer position given in surface pixels. It normalizes against the
// current viewport: x to -1..1 left to right, y to 1..-1 top to bottom.
func (s *State) PointerMove(x, y int) {
	if s == nil || s.released {
		return
	}
	w, h := s.viewport.W, s.viewport.H
	if w <= 0 || h <= 0 {
		return
	}
	nx := float64(x)/float64(w)*2 - 1
	ny := -(float64(y)/float64(h))*2 + 1
	s.SetPointer(nx, ny)
}

// SetPointer records an already-normalized pointer position, clamped to -1..1.
func (s *State) SetPointer(nx, ny float64) {
	if s == nil || s.released {
		return
	}
	s.pointer = Pointer{X: clampUnit(nx), Y: clampUnit(ny)}
}

// Resize matches the camera aspect and render buffers to a new viewport. Non-positive sizes
// are ignored; repeating a size changes nothing.
func (s *State) Resize(w, h int) {
	if s == nil || s.released || w <= 0 || h <= 0 {
		return
	}
	s.viewport = Viewport{W: w, H: h}
	s.scene.Camera.Aspect = float32(w) / float32(h)
	s.renderer.EnableDepth(true, w, h)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
