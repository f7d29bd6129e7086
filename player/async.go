package player

import (
	"sync"

	"github.com/tapedeck/tapedeck/log"
)

// Backend is a surface that also exposes property control, like MPV.
type Backend interface {
	Surface
	Controls
}

type asyncCommand struct {
	name string
	seek bool
	run  func() error
}

// Async forwards commands to a Backend on a single worker goroutine so that
// callers never block on IPC. Commands are applied in submission order.
// A seek queued right behind another seek replaces it; every other command
// is delivered. Failures are logged since callers do not wait for the result.
type Async struct {
	backend Backend

	mu      sync.Mutex
	pending []asyncCommand
	closed  bool

	wake chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

var (
	_ Surface  = (*Async)(nil)
	_ Controls = (*Async)(nil)
)

// NewAsync starts a worker for the backend.
func NewAsync(backend Backend) *Async {
	a := &Async{
		backend: backend,
		wake:    make(chan struct{}, 1),
	}

	a.wg.Add(1)
	go a.work()
	return a
}

func (a *Async) work() {
	defer a.wg.Done()
	for {
		cmd, ok := a.next()
		if !ok {
			return
		}
		if err := cmd.run(); err != nil {
			log.Warnf("async surface %s: %v", cmd.name, err)
		}
	}
}

// next blocks until a command is pending. It reports false once the
// queue is closed and drained.
func (a *Async) next() (asyncCommand, bool) {
	for {
		a.mu.Lock()
		if len(a.pending) > 0 {
			cmd := a.pending[0]
			a.pending = a.pending[1:]
			a.mu.Unlock()
			return cmd, true
		}
		closed := a.closed
		a.mu.Unlock()

		if closed {
			return asyncCommand{}, false
		}
		<-a.wake
	}
}

func (a *Async) submit(cmd asyncCommand) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	if last := len(a.pending) - 1; cmd.seek && last >= 0 && a.pending[last].seek {
		a.pending[last] = cmd
	} else {
		a.pending = append(a.pending, cmd)
	}
	a.mu.Unlock()

	a.signal()
	return nil
}

func (a *Async) signal() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Async) Seek(seconds float64) error {
	return a.submit(asyncCommand{
		name: "seek",
		seek: true,
		run:  func() error { return a.backend.Seek(seconds) },
	})
}

func (a *Async) PresentFullscreen() error {
	return a.submit(asyncCommand{name: "present fullscreen", run: a.backend.PresentFullscreen})
}

func (a *Async) DismissFullscreen() error {
	return a.submit(asyncCommand{name: "dismiss fullscreen", run: a.backend.DismissFullscreen})
}

func (a *Async) SetPaused(paused bool) error {
	return a.submit(asyncCommand{
		name: "set paused",
		run:  func() error { return a.backend.SetPaused(paused) },
	})
}

func (a *Async) SetMuted(muted bool) error {
	return a.submit(asyncCommand{
		name: "set muted",
		run:  func() error { return a.backend.SetMuted(muted) },
	})
}

// Close stops accepting commands and waits for queued ones to drain.
func (a *Async) Close() {
	a.once.Do(func() {
		a.mu.Lock()
		a.closed = true
		a.mu.Unlock()
		a.signal()
	})
	a.wg.Wait()
}
