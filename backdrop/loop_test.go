package backdrop

import (
	"testing"

	"go.viam.com/test"
)

func TestLoopFrames(t *testing.T) {
	surf := newFakeSurface(16, 16)
	s, err := Build(surf, Options{Rand: NewRand(11)})
	test.That(t, err, test.ShouldBeNil)
	l := NewLoop(s)

	for i := 0; i < 3; i++ {
		ran, err := l.Frame()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ran, test.ShouldBeTrue)
	}
	test.That(t, l.Frames(), test.ShouldEqual, uint64(3))
	test.That(t, surf.presents, test.ShouldEqual, 3)
	test.That(t, l.State(), test.ShouldEqual, s)
}

func TestLoopTeardown(t *testing.T) {
	surf := newFakeSurface(16, 16)
	s, err := Build(surf, Options{Rand: NewRand(12)})
	test.That(t, err, test.ShouldBeNil)
	l := NewLoop(s)

	var order []string
	l.OnStop(func() { order = append(order, "pointer") }, func() { order = append(order, "resize") })

	_, err = l.Frame()
	test.That(t, err, test.ShouldBeNil)

	l.Stop()
	l.Stop()
	test.That(t, l.Stopped(), test.ShouldBeTrue)
	test.That(t, order, test.ShouldResemble, []string{"resize", "pointer"})
	test.That(t, s.Released(), test.ShouldBeTrue)
	test.That(t, s.scene.MeshCount(), test.ShouldEqual, 0)

	ran, err := l.Frame()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ran, test.ShouldBeFalse)
	test.That(t, l.Frames(), test.ShouldEqual, uint64(1))
	test.That(t, surf.presents, test.ShouldEqual, 1)

	// Events arriving after teardown are dropped.
	s.PointerMove(3, 4)
	s.Resize(100, 100)
	test.That(t, s.Pointer(), test.ShouldResemble, Pointer{})
	test.That(t, s.Viewport(), test.ShouldResemble, Viewport{W: 16, H: 16})
}

func TestLoopNilState(t *testing.T) {
	l := NewLoop(nil)
	ran, err := l.Frame()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ran, test.ShouldBeFalse)
	l.Stop()
	test.That(t, l.Stopped(), test.ShouldBeTrue)

	var s *State
	s.PointerMove(1, 1)
	s.Resize(1, 1)
}
