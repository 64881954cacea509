package hal

import "go.uber.org/zap"

// HostConfig sizes the host surface.
type HostConfig struct {
	Width  int
	Height int
	// Logger defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Host  HostConfig
	Title string
}

type hostHAL struct {
	logger  *zap.SugaredLogger
	fb      *hostFramebuffer
	resizes listeners[[2]int]
	pointer *hostPointer

	pendingW, pendingH int
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	h := &hostHAL{
		logger:  logger,
		pointer: &hostPointer{},
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		h.fb = newHostFramebuffer(cfg.Width, cfg.Height)
	}
	return h
}

func (h *hostHAL) Logger() *zap.SugaredLogger { return h.logger }
func (h *hostHAL) Display() Display           { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input               { return hostInput{p: h.pointer} }

// resize applies a new viewport size and notifies listeners when it changed.
func (h *hostHAL) resize(w, hgt int) {
	if w <= 0 || hgt <= 0 {
		return
	}
	if h.fb == nil {
		h.fb = newHostFramebuffer(w, hgt)
	} else if !h.fb.resize(w, hgt) {
		return
	}
	h.logger.Debugw("viewport resized", "width", w, "height", hgt)
	h.resizes.emit([2]int{w, hgt})
}

// requestResize records a viewport size reported by the window. It is applied by
// applyPendingResize so listeners run between frames.
func (h *hostHAL) requestResize(w, hgt int) {
	if fb := h.fb; fb != nil && fb.Width() == w && fb.Height() == hgt {
		h.pendingW, h.pendingH = 0, 0
		return
	}
	h.pendingW, h.pendingH = w, hgt
}

func (h *hostHAL) applyPendingResize() {
	if h.pendingW <= 0 || h.pendingH <= 0 {
		return
	}
	w, hgt := h.pendingW, h.pendingH
	h.pendingW, h.pendingH = 0, 0
	h.resize(w, hgt)
}

// pollPointer feeds the cursor position sampled for this frame.
func (h *hostHAL) pollPointer(x, y int) {
	var w, hgt int
	if h.fb != nil {
		w, hgt = h.fb.Width(), h.fb.Height()
	}
	h.pointer.poll(x, y, w, hgt)
}

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.h.fb == nil {
		return nil
	}
	return d.h.fb
}

func (d hostDisplay) OnResize(fn func(w, h int)) func() {
	if fn == nil {
		return func() {}
	}
	return d.h.resizes.add(func(s [2]int) { fn(s[0], s[1]) })
}

type hostInput struct {
	p *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.p }
