// Package app assembles folio for a host: it loads the portfolio content, builds the 3D
// backdrop on the host surface and wires host events to it.
package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"folio/backdrop"
	"folio/content"
	"folio/hal"
)

// Config is the app configuration, filled from CLI flags.
type Config struct {
	// Content is the loaded portfolio. Nil loads the embedded default.
	Content *content.Document
	// Seed makes object placement reproducible. Zero draws from the process source.
	Seed      uint64
	Wireframe bool
}

// App is one portfolio view. Without a surface it runs as a static page: content only.
type App struct {
	logger  *zap.SugaredLogger
	content *content.Document
	loop    *backdrop.Loop
}

var _ hal.App = (*App)(nil)

// New initializes the app on h. The backdrop is optional: when it cannot be built the app
// logs a warning and keeps running without it.
func New(h hal.HAL, cfg Config) *App {
	logger := h.Logger()
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	a := &App{logger: logger, content: cfg.Content}
	if a.content == nil {
		doc, err := content.Default()
		if err != nil {
			logger.Errorw("embedded content is invalid", "error", err)
		}
		a.content = doc
	}
	if a.content != nil {
		logger.Infow("portfolio loaded", "name", a.content.Profile.Name,
			"projects", len(a.content.Projects), "skills", len(a.content.Skills))
	}

	var state *backdrop.State
	err := a.guard("build", func() error {
		var err error
		state, err = backdrop.Build(surfaceOf(h), backdrop.Options{
			Logger:    logger.Named("backdrop"),
			Rand:      newRand(cfg.Seed),
			Wireframe: cfg.Wireframe,
		})
		return err
	})
	switch {
	case errors.Is(err, backdrop.ErrNoSurface):
		logger.Warnw("3D backdrop unavailable, showing static page", "error", err)
		a.clearStatic(h)
		return a
	case err != nil:
		logger.Errorw("3D backdrop failed, showing static page", "error", err)
		a.clearStatic(h)
		return a
	}

	a.loop = backdrop.NewLoop(state)
	if disp := h.Display(); disp != nil {
		a.loop.OnStop(disp.OnResize(state.Resize))
	}
	if in := h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			a.loop.OnStop(p.OnMove(state.PointerMove))
		}
	}
	logger.Infow("backdrop running", "objects", state.Len(),
		"width", state.Viewport().W, "height", state.Viewport().H, "seed", cfg.Seed)
	return a
}

// Step produces one frame. It is a no-op for a static page or after Close.
func (a *App) Step() error {
	if a.loop == nil {
		return nil
	}
	return a.guard("frame", func() error {
		_, err := a.loop.Frame()
		return errors.Wrap(err, "present frame")
	})
}

// Close stops the backdrop and detaches host listeners. It is idempotent.
func (a *App) Close() error {
	if a.loop == nil || a.loop.Stopped() {
		return nil
	}
	return a.guard("close", func() error {
		a.loop.Stop()
		a.logger.Infow("backdrop stopped", "frames", a.loop.Frames())
		return nil
	})
}

// Content returns the loaded portfolio, or nil when none could be loaded.
func (a *App) Content() *content.Document { return a.content }

// Animated reports whether the backdrop is running.
func (a *App) Animated() bool { return a.loop != nil && !a.loop.Stopped() }

// clearStatic paints whatever surface the host has in the page background, so a static
// page never shows a stale or uninitialized buffer.
func (a *App) clearStatic(h hal.HAL) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	bg := backdrop.Background
	fb.ClearRGB(bg.R, bg.G, bg.B)
	if err := fb.Present(); err != nil {
		a.logger.Warnw("present static page", "error", err)
	}
}

func surfaceOf(h hal.HAL) backdrop.Surface {
	disp := h.Display()
	if disp == nil {
		return nil
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return nil
	}
	return fb
}

func newRand(seed uint64) backdrop.Rand {
	if seed == 0 {
		return nil
	}
	return backdrop.NewRand(seed)
}
