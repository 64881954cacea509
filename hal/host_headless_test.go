package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/test"
)

type countingApp struct {
	steps  int
	closes int
	err    error
}

func (a *countingApp) Step() error  { a.steps++; return a.err }
func (a *countingApp) Close() error { a.closes++; return nil }

// drive advances the mock clock one frame at a time until the runner returns.
func drive(t *testing.T, mock *clock.Mock, period time.Duration, done <-chan error) error {
	t.Helper()
	for i := 0; i < 1000; i++ {
		select {
		case err := <-done:
			return err
		default:
		}
		mock.Add(period)
	}
	t.Fatal("headless runner did not return")
	return nil
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	mock := clock.NewMock()
	app := &countingApp{}
	var pointerFrames []uint64
	var moves int

	done := make(chan error, 1)
	go func() {
		done <- RunHeadless(context.Background(), func(h HAL) App {
			h.Input().Pointer().OnMove(func(x, y int) { moves++ })
			return app
		}, HeadlessConfig{
			Host:  HostConfig{Width: 8, Height: 8},
			Hz:    60,
			Ticks: 3,
			Clock: mock,
			PointerPath: func(frame uint64) (int, int) {
				pointerFrames = append(pointerFrames, frame)
				return int(frame), 0
			},
		})
	}()

	err := drive(t, mock, time.Second/60, done)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, app.steps, test.ShouldEqual, 3)
	test.That(t, app.closes, test.ShouldEqual, 1)
	test.That(t, pointerFrames, test.ShouldResemble, []uint64{0, 1, 2})
	test.That(t, moves, test.ShouldEqual, 3)
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app := &countingApp{}

	err := RunHeadless(ctx, func(HAL) App { return app }, HeadlessConfig{Clock: clock.NewMock()})
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
	test.That(t, app.steps, test.ShouldEqual, 0)
	test.That(t, app.closes, test.ShouldEqual, 1)
}

func TestRunHeadlessStepError(t *testing.T) {
	mock := clock.NewMock()
	app := &countingApp{err: errors.New("boom")}

	done := make(chan error, 1)
	go func() {
		done <- RunHeadless(context.Background(), func(HAL) App { return app }, HeadlessConfig{Clock: mock, Hz: 30})
	}()

	err := drive(t, mock, time.Second/30, done)
	test.That(t, err, test.ShouldBeError, errors.New("boom"))
	test.That(t, app.steps, test.ShouldEqual, 1)
	test.That(t, app.closes, test.ShouldEqual, 1)
}

func TestRunHeadlessInvalidHz(t *testing.T) {
	err := RunHeadless(context.Background(), func(HAL) App { return nil }, HeadlessConfig{Hz: 2_000_000_000, Clock: clock.NewMock()})
	test.That(t, err, test.ShouldNotBeNil)
}
