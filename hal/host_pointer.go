package hal

import "image"

type hostPointer struct {
	moves listeners[[2]int]

	polled bool
	seen   bool
	x, y   int
}

func (p *hostPointer) OnMove(fn func(x, y int)) func() {
	if fn == nil {
		return func() {}
	}
	return p.moves.add(func(v [2]int) { fn(v[0], v[1]) })
}

// move records a pointer position and notifies listeners when it changed.
func (p *hostPointer) move(x, y int) {
	if p.seen && x == p.x && y == p.y {
		return
	}
	p.seen = true
	p.x, p.y = x, y
	p.moves.emit([2]int{x, y})
}

// poll feeds a cursor position sampled once per frame on a w×h surface. The first sample
// only sets the baseline, and samples outside the surface are dropped, so listeners see
// real in-surface moves only.
func (p *hostPointer) poll(x, y, w, h int) {
	if !p.polled {
		p.polled, p.seen = true, true
		p.x, p.y = x, y
		return
	}
	if !image.Pt(x, y).In(image.Rect(0, 0, w, h)) {
		return
	}
	p.move(x, y)
}
