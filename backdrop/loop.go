package backdrop

// Loop is the backdrop's repeating frame task. The host's display scheduler calls Frame once
// per frame; Stop cancels it. The stopped flag is checked before every iteration, so nothing
// runs after Stop even if the host keeps calling.
type Loop struct {
	state   *State
	stopped bool
	frames  uint64
	onStop  []func()
}

// NewLoop returns a running loop over s.
func NewLoop(s *State) *Loop {
	return &Loop{state: s}
}

// OnStop registers teardown work, typically listener detach funcs. They run once, in reverse
// order, on the first Stop.
func (l *Loop) OnStop(fns ...func()) {
	l.onStop = append(l.onStop, fns...)
}

// Frame runs one iteration: step then render. It reports whether a frame was produced.
func (l *Loop) Frame() (bool, error) {
	if l.stopped || l.state == nil {
		return false, nil
	}
	l.state.Step()
	l.frames++
	return true, l.state.Render()
}

// Stop cancels the loop, runs the OnStop funcs and releases the scene. It is idempotent.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	for i := len(l.onStop) - 1; i >= 0; i-- {
		if fn := l.onStop[i]; fn != nil {
			fn()
		}
	}
	l.onStop = nil
	if l.state != nil {
		l.state.Release()
	}
}

// Stopped reports whether Stop has run.
func (l *Loop) Stopped() bool { return l.stopped }

// Frames returns the number of frames produced.
func (l *Loop) Frames() uint64 { return l.frames }

// State returns the scene the loop drives.
func (l *Loop) State() *State { return l.state }
