package app

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"

	"folio/content"
	"folio/hal"
)

type fakeFramebuffer struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
	cleared  [][3]uint8
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, format: hal.PixelFormatRGBA8888, buf: make([]byte, w*h*4)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 4 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8) {
	f.cleared = append(f.cleared, [3]uint8{r, g, b})
}
func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

type fakeHAL struct {
	logger  *zap.SugaredLogger
	fb      *fakeFramebuffer
	resizes map[int]func(w, h int)
	moves   map[int]func(x, y int)
	nextID  int
}

func newFakeHAL(logger *zap.SugaredLogger, fb *fakeFramebuffer) *fakeHAL {
	return &fakeHAL{
		logger:  logger,
		fb:      fb,
		resizes: map[int]func(w, h int){},
		moves:   map[int]func(x, y int){},
	}
}

func (h *fakeHAL) Logger() *zap.SugaredLogger { return h.logger }
func (h *fakeHAL) Display() hal.Display       { return fakeDisplay{h} }
func (h *fakeHAL) Input() hal.Input           { return fakeInput{h} }

func (h *fakeHAL) resize(w, hgt int) {
	for _, fn := range h.resizes {
		fn(w, hgt)
	}
}

func (h *fakeHAL) move(x, y int) {
	for _, fn := range h.moves {
		fn(x, y)
	}
}

type fakeDisplay struct{ h *fakeHAL }

func (d fakeDisplay) Framebuffer() hal.Framebuffer {
	if d.h.fb == nil {
		return nil
	}
	return d.h.fb
}

func (d fakeDisplay) OnResize(fn func(w, h int)) func() {
	id := d.h.nextID
	d.h.nextID++
	d.h.resizes[id] = fn
	return func() { delete(d.h.resizes, id) }
}

type fakeInput struct{ h *fakeHAL }

func (in fakeInput) Pointer() hal.Pointer { return in }

func (in fakeInput) OnMove(fn func(x, y int)) func() {
	id := in.h.nextID
	in.h.nextID++
	in.h.moves[id] = fn
	return func() { delete(in.h.moves, id) }
}

func TestAppRunsBackdrop(t *testing.T) {
	fb := newFakeFramebuffer(64, 48)
	h := newFakeHAL(zap.NewNop().Sugar(), fb)

	a := New(h, Config{Seed: 7})
	test.That(t, a.Animated(), test.ShouldBeTrue)
	test.That(t, a.Content().Profile.Name, test.ShouldEqual, "Vivek Manna")
	test.That(t, h.resizes, test.ShouldHaveLength, 1)
	test.That(t, h.moves, test.ShouldHaveLength, 1)

	for i := 0; i < 3; i++ {
		test.That(t, a.Step(), test.ShouldBeNil)
	}
	test.That(t, fb.presents, test.ShouldEqual, 3)
	test.That(t, a.loop.Frames(), test.ShouldEqual, uint64(3))

	// Pointer and resize reach the scene through the host listeners.
	h.move(64, 0)
	test.That(t, a.loop.State().Pointer().X, test.ShouldAlmostEqual, 1.0)
	test.That(t, a.loop.State().Pointer().Y, test.ShouldAlmostEqual, 1.0)
	h.resize(100, 50)
	test.That(t, a.loop.State().Camera().Aspect, test.ShouldAlmostEqual, 2.0)

	test.That(t, a.Close(), test.ShouldBeNil)
	test.That(t, a.Animated(), test.ShouldBeFalse)
	test.That(t, h.resizes, test.ShouldBeEmpty)
	test.That(t, h.moves, test.ShouldBeEmpty)
	test.That(t, a.loop.State().Released(), test.ShouldBeTrue)

	test.That(t, a.Step(), test.ShouldBeNil)
	test.That(t, fb.presents, test.ShouldEqual, 3)
	test.That(t, a.Close(), test.ShouldBeNil)
}

func TestAppStaticPageWithoutSurface(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := newFakeHAL(zap.New(core).Sugar(), nil)

	a := New(h, Config{})
	test.That(t, a.Animated(), test.ShouldBeFalse)
	test.That(t, a.Content(), test.ShouldNotBeNil)
	test.That(t, h.resizes, test.ShouldBeEmpty)
	test.That(t, h.moves, test.ShouldBeEmpty)

	warnings := logs.FilterMessageSnippet("backdrop unavailable").All()
	test.That(t, warnings, test.ShouldHaveLength, 1)
	test.That(t, warnings[0].Level, test.ShouldEqual, zapcore.WarnLevel)

	test.That(t, a.Step(), test.ShouldBeNil)
	test.That(t, a.Close(), test.ShouldBeNil)
}

func TestAppZeroSizedSurface(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := newFakeHAL(zap.New(core).Sugar(), newFakeFramebuffer(0, 0))

	a := New(h, Config{})
	test.That(t, a.Animated(), test.ShouldBeFalse)
	test.That(t, logs.FilterMessageSnippet("backdrop unavailable").Len(), test.ShouldEqual, 1)
}

func TestAppStaticPageClearsToBackground(t *testing.T) {
	fb := newFakeFramebuffer(8, 8)
	fb.format = hal.PixelFormat(0xff)
	core, logs := observer.New(zapcore.WarnLevel)
	h := newFakeHAL(zap.New(core).Sugar(), fb)

	a := New(h, Config{})
	test.That(t, a.Animated(), test.ShouldBeFalse)
	test.That(t, logs.FilterMessageSnippet("backdrop unavailable").Len(), test.ShouldEqual, 1)
	test.That(t, fb.cleared, test.ShouldResemble, [][3]uint8{{0xe8, 0xe4, 0xdc}})
	test.That(t, fb.presents, test.ShouldEqual, 1)

	// Steps on a static page leave the cleared surface alone.
	test.That(t, a.Step(), test.ShouldBeNil)
	test.That(t, fb.presents, test.ShouldEqual, 1)
}

func TestAppSeedIsReproducible(t *testing.T) {
	build := func(seed uint64) *App {
		return New(newFakeHAL(zap.NewNop().Sugar(), newFakeFramebuffer(32, 32)), Config{Seed: seed})
	}
	a, b, c := build(42), build(42), build(43)

	same, differs := true, false
	for i := 0; i < a.loop.State().Len(); i++ {
		oa, ba, va := a.loop.State().Object(i)
		ob, bb, vb := b.loop.State().Object(i)
		_, bc, _ := c.loop.State().Object(i)
		if oa != ob || ba != bb || va != vb {
			same = false
		}
		if ba != bc {
			differs = true
		}
	}
	test.That(t, same, test.ShouldBeTrue)
	test.That(t, differs, test.ShouldBeTrue)
}

func TestAppUsesGivenContent(t *testing.T) {
	doc := &content.Document{Profile: content.Profile{Name: "Jo Doe"}}
	a := New(newFakeHAL(nil, nil), Config{Content: doc})
	test.That(t, a.Content(), test.ShouldEqual, doc)
}

func TestGuardRecoversPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	a := &App{logger: zap.New(core).Sugar()}

	err := a.guard("frame", func() error { panic("boom") })
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "frame: panic: boom")
	test.That(t, logs.FilterMessage("folio panic").Len(), test.ShouldEqual, 1)
}
