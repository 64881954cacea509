// Package hal is the contact point between folio and the host: a display surface with
// resize notifications, pointer input and a logger. Hosts (a desktop window or a headless
// ticker) drive an App once per display frame.
package hal

import "go.uber.org/zap"

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, byte order r, g, b, a (image.RGBA layout).
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Buffer may be reallocated by a resize; callers must not keep it across frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available) and size changes.
type Display interface {
	// Framebuffer returns nil when the host has no renderable surface.
	Framebuffer() Framebuffer
	// OnResize registers fn for viewport size changes. The returned func detaches it and
	// may be called more than once.
	OnResize(fn func(w, h int)) (detach func())
}

// Pointer delivers pointer positions in framebuffer pixels.
type Pointer interface {
	// OnMove registers fn for pointer moves. The returned func detaches it and may be
	// called more than once.
	OnMove(fn func(x, y int)) (detach func())
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() *zap.SugaredLogger
	Display() Display
	Input() Input
}

// App is driven by a host: Step once per display frame, Close once at teardown.
type App interface {
	Step() error
	Close() error
}
