// Package main renders the portfolio backdrop headlessly and writes one frame as a PNG.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"folio/backdrop"
	"folio/hal"
)

type options struct {
	Width, Height int
	Frames        int
	Seed          uint64
	PointerX      float64
	PointerY      float64
	Wireframe     bool
	Caption       string
	FontPath      string
	FontSize      float64
}

func main() {
	app := &cli.App{
		Name:      "snapshot",
		Usage:     "render the folio backdrop to a PNG",
		ArgsUsage: "OUT.png",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 1280, Usage: "image width"},
			&cli.IntFlag{Name: "height", Value: 720, Usage: "image height"},
			&cli.IntFlag{Name: "frames", Value: 120, Usage: "frames to simulate before capturing"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "placement seed (0 = different every run)"},
			&cli.Float64Flag{Name: "pointer-x", Usage: "normalized pointer x, -1..1"},
			&cli.Float64Flag{Name: "pointer-y", Usage: "normalized pointer y, -1..1"},
			&cli.BoolFlag{Name: "wireframe", Usage: "draw edges only"},
			&cli.StringFlag{Name: "caption", Usage: "text drawn at the bottom of the image"},
			&cli.StringFlag{Name: "font", Usage: "TrueType `FILE` for the caption (default: built-in bitmap font)"},
			&cli.Float64Flag{Name: "font-size", Value: 24, Usage: "caption size in points, with --font"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one output path")
			}
			logger, err := hal.NewLogger("snapshot", c.Bool("debug"))
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			defer func() { _ = logger.Sync() }()

			opts := options{
				Width:     c.Int("width"),
				Height:    c.Int("height"),
				Frames:    c.Int("frames"),
				Seed:      c.Uint64("seed"),
				PointerX:  c.Float64("pointer-x"),
				PointerY:  c.Float64("pointer-y"),
				Wireframe: c.Bool("wireframe"),
				Caption:   c.String("caption"),
				FontPath:  c.String("font"),
				FontSize:  c.Float64("font-size"),
			}
			dc, err := render(logger, opts)
			if err != nil {
				return err
			}
			out := c.Args().First()
			if err := dc.SavePNG(out); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}
			logger.Infow("snapshot written", "path", out, "frames", opts.Frames, "seed", opts.Seed)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// render simulates opts.Frames frames and returns a drawing context holding the last one,
// captioned when opts.Caption is set.
func render(logger *zap.SugaredLogger, opts options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	dc := gg.NewContextForRGBA(img)

	var rnd backdrop.Rand
	if opts.Seed != 0 {
		rnd = backdrop.NewRand(opts.Seed)
	}
	state, err := backdrop.Build(imageSurface{img}, backdrop.Options{
		Logger:    logger.Named("backdrop"),
		Rand:      rnd,
		Wireframe: opts.Wireframe,
	})
	if err != nil {
		return nil, err
	}
	state.SetPointer(opts.PointerX, opts.PointerY)

	loop := backdrop.NewLoop(state)
	defer loop.Stop()

	frames := opts.Frames
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		if _, err := loop.Frame(); err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
	}

	if opts.Caption != "" {
		if err := drawCaption(dc, opts); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func drawCaption(dc *gg.Context, opts options) error {
	if opts.FontPath != "" {
		if err := dc.LoadFontFace(opts.FontPath, opts.FontSize); err != nil {
			return errors.Wrap(err, "load caption font")
		}
	}
	w, h := float64(dc.Width()), float64(dc.Height())
	_, th := dc.MeasureString(opts.Caption)
	pad := th

	dc.SetRGBA255(255, 255, 255, 160)
	dc.DrawRectangle(0, h-3*pad, w, 3*pad)
	dc.Fill()

	dc.SetHexColor("#3d3a35")
	dc.DrawStringAnchored(opts.Caption, w/2, h-1.5*pad, 0.5, 0.5)
	return nil
}

// imageSurface lets the backdrop draw straight into an image.RGBA.
type imageSurface struct {
	img *image.RGBA
}

func (s imageSurface) Width() int       { return s.img.Rect.Dx() }
func (s imageSurface) Height() int      { return s.img.Rect.Dy() }
func (s imageSurface) StrideBytes() int { return s.img.Stride }
func (s imageSurface) Buffer() []byte   { return s.img.Pix }
func (s imageSurface) Present() error   { return nil }
