//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/multierr"

	"folio/internal/buildinfo"
)

// RunWindow starts a resizable desktop window that displays the framebuffer and forwards
// pointer input. One App.Step runs per displayed frame. It blocks until the window closes,
// then closes the app.
func RunWindow(cfg WindowConfig, newApp func(HAL) App) (err error) {
	if cfg.Host.Width <= 0 {
		cfg.Host.Width = 1280
	}
	if cfg.Host.Height <= 0 {
		cfg.Host.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "folio"
	}

	h := newHost(cfg.Host)
	app := newApp(h)
	defer func() {
		if app != nil {
			err = multierr.Append(err, app.Close())
		}
	}()

	g := &hostGame{h: h, app: app}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Host.Width, cfg.Host.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	h.logger.Infow("window host starting", "width", cfg.Host.Width, "height", cfg.Host.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type hostGame struct {
	h     *hostHAL
	app   App
	pix   []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.applyPendingResize()
	g.h.pollPointer(ebiten.CursorPosition())

	if g.app != nil {
		if err := g.app.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if fb == nil {
		return
	}
	var w, h int
	g.pix, w, h = fb.snapshot(g.pix)
	if w <= 0 || h <= 0 {
		return
	}

	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout tracks the window size; the resize itself is applied at the start of the next Update
// so listeners run between frames.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.requestResize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
