package videoplayer

import (
	"fmt"
	"sync"
	"time"
)

// recordingSurface captures every command the controller issues.
type recordingSurface struct {
	mu    sync.Mutex
	calls []string
}

func (s *recordingSurface) record(format string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	return nil
}

func (s *recordingSurface) Seek(seconds float64) error { return s.record("seek %g", seconds) }
func (s *recordingSurface) PresentFullscreen() error   { return s.record("present fullscreen") }
func (s *recordingSurface) DismissFullscreen() error   { return s.record("dismiss fullscreen") }
func (s *recordingSurface) SetPaused(paused bool) error {
	return s.record("paused %t", paused)
}
func (s *recordingSurface) SetMuted(muted bool) error { return s.record("muted %t", muted) }

func (s *recordingSurface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSurface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// seekOnlySurface implements the bare Surface without property control.
type seekOnlySurface struct {
	seeks []float64
}

func (s *seekOnlySurface) Seek(seconds float64) error {
	s.seeks = append(s.seeks, seconds)
	return nil
}
func (s *seekOnlySurface) PresentFullscreen() error { return nil }
func (s *seekOnlySurface) DismissFullscreen() error { return nil }

// manualScheduler fires timers only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	for _, t := range append([]*manualTimer(nil), s.timers...) {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			t.f()
		}
	}
}

func (s *manualScheduler) Pending() int {
	var n int
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// counters tallies host callbacks.
type counters struct {
	start, end, playPress, show, hide int
	progress, load                    []float64
	mutes                             []bool
	changes                           int
}

func (n *counters) callbacks() Callbacks {
	return Callbacks{
		OnStart:        func() { n.start++ },
		OnEnd:          func() { n.end++ },
		OnProgress:     func(t float64) { n.progress = append(n.progress, t) },
		OnLoad:         func(d float64) { n.load = append(n.load, d) },
		OnPlayPress:    func() { n.playPress++ },
		OnMutePress:    func(m bool) { n.mutes = append(n.mutes, m) },
		OnShowControls: func() { n.show++ },
		OnHideControls: func() { n.hide++ },
		OnChange:       func(PlayerState) { n.changes++ },
	}
}
