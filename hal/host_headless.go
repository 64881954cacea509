package hal

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	Hz   int
	// Ticks stops the runner after N frames (0 = run until ctx is done).
	Ticks uint64
	// Clock drives the frame ticker. Defaults to the wall clock.
	Clock clock.Clock
	// PointerPath, when set, feeds a synthetic pointer position before each frame.
	PointerPath func(frame uint64) (x, y int)
}

// RunHeadless runs the app without opening a window. The app is closed before returning.
func RunHeadless(ctx context.Context, newApp func(HAL) App, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Host.Width <= 0 {
		cfg.Host.Width = 1280
	}
	if cfg.Host.Height <= 0 {
		cfg.Host.Height = 720
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return errors.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	app := newApp(h)
	defer func() {
		if app != nil {
			err = multierr.Append(err, app.Close())
		}
	}()

	t := clk.Ticker(d)
	defer t.Stop()

	h.logger.Infow("headless host starting", "hz", cfg.Hz, "ticks", cfg.Ticks,
		"width", cfg.Host.Width, "height", cfg.Host.Height)

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if cfg.PointerPath != nil {
				h.pointer.move(cfg.PointerPath(frame))
			}
			if app != nil {
				if err := app.Step(); err != nil {
					return err
				}
			}
			frame++
			if cfg.Ticks > 0 && frame >= cfg.Ticks {
				return nil
			}
		}
	}
}
