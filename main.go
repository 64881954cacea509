// Package main is the folio command: the animated portfolio backdrop in a desktop window or
// headless, plus content and version inspection.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"folio/app"
	"folio/content"
	"folio/hal"
	"folio/internal/buildinfo"
)

const (
	flagHeadless  = "headless"
	flagHz        = "hz"
	flagFrames    = "frames"
	flagWidth     = "width"
	flagHeight    = "height"
	flagSeed      = "seed"
	flagContent   = "content"
	flagWireframe = "wireframe"
	flagSweep     = "sweep"
	flagDebug     = "debug"
)

func main() {
	a := &cli.App{
		Name:   "folio",
		Usage:  "animated 3D portfolio backdrop",
		Flags:  runFlags(),
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "open the backdrop in a window, or run it headless",
				Flags:  runFlags(),
				Action: runAction,
			},
			{
				Name:  "content",
				Usage: "validate the portfolio content and print a summary",
				Flags: []cli.Flag{contentFlag()},
				Action: func(c *cli.Context) error {
					doc, err := content.Load(c.String(flagContent))
					if err != nil {
						return err
					}
					return doc.WriteSummary(c.App.Writer)
				},
			},
			{
				Name:  "version",
				Usage: "print build information",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(c.App.Writer, buildinfo.String())
					return err
				},
			},
		},
	}

	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func contentFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  flagContent,
		Usage: "load portfolio content from YAML `FILE` instead of the embedded default",
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: flagHeadless, Usage: "run without a window"},
		&cli.IntFlag{Name: flagHz, Value: 60, Usage: "frame rate in headless mode"},
		&cli.Uint64Flag{Name: flagFrames, Usage: "stop after N frames in headless mode (0 = run forever)"},
		&cli.IntFlag{Name: flagWidth, Value: 1280, Usage: "surface width in pixels"},
		&cli.IntFlag{Name: flagHeight, Value: 720, Usage: "surface height in pixels"},
		&cli.Uint64Flag{Name: flagSeed, Usage: "seed object placement (0 = different every run)"},
		contentFlag(),
		&cli.BoolFlag{Name: flagWireframe, Usage: "draw edges only"},
		&cli.BoolFlag{Name: flagSweep, Usage: "move a synthetic pointer in a circle (headless only)"},
		&cli.BoolFlag{Name: flagDebug, Aliases: []string{"vvv"}, Usage: "enable debug logging"},
	}
}

func runAction(c *cli.Context) error {
	logger, err := hal.NewLogger("folio", c.Bool(flagDebug))
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer func() { _ = logger.Sync() }()

	doc, err := content.Load(c.String(flagContent))
	if err != nil {
		return err
	}

	cfg := app.Config{
		Content:   doc,
		Seed:      c.Uint64(flagSeed),
		Wireframe: c.Bool(flagWireframe),
	}
	newApp := func(h hal.HAL) hal.App { return app.New(h, cfg) }
	host := hal.HostConfig{
		Width:  c.Int(flagWidth),
		Height: c.Int(flagHeight),
		Logger: logger,
	}
	logger.Infow("starting", "version", buildinfo.Short(), "headless", c.Bool(flagHeadless))

	if !c.Bool(flagHeadless) {
		return hal.RunWindow(hal.WindowConfig{Host: host, Title: doc.Profile.Name}, newApp)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	hc := hal.HeadlessConfig{
		Host:  host,
		Hz:    c.Int(flagHz),
		Ticks: c.Uint64(flagFrames),
	}
	if c.Bool(flagSweep) {
		hc.PointerPath = sweep(host.Width, host.Height, c.Int(flagHz))
	}
	err = hal.RunHeadless(ctx, newApp, hc)
	if errors.Is(err, context.Canceled) {
		logger.Infow("interrupted")
		return nil
	}
	return err
}

// sweep circles the pointer around the surface center once every ten seconds.
func sweep(w, h, hz int) func(frame uint64) (int, int) {
	if hz <= 0 {
		hz = 60
	}
	period := float64(10 * hz)
	return func(frame uint64) (int, int) {
		a := 2 * math.Pi * float64(frame) / period
		x := float64(w) / 2 * (1 + 0.8*math.Cos(a))
		y := float64(h) / 2 * (1 + 0.8*math.Sin(a))
		return int(x), int(y)
	}
}
