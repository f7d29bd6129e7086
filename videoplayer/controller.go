// Package videoplayer implements a video player controls component: the playback
// state machine, the seek gesture, the auto-hiding controls and the render selector.
//
// A Controller is driven by user intents (Start, TogglePlay, SeekGrant...) and by
// media callbacks (OnProgress, OnLoad, OnEnd). It never decodes media itself; it
// issues commands to an attached player.Surface and is a player.EventSink for it.
package videoplayer

import (
	"runtime"
	"sync"

	"github.com/samber/mo"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/player"
)

// initialWidth is the layout width assumed until the host measures one.
const initialWidth = 200

// Option customizes a Controller at construction.
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler used by the visibility timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// Controller owns one mounted player instance.
// All methods are safe for concurrent use; events are applied one at a time.
type Controller struct {
	mu     sync.Mutex
	cfg    Config
	cb     Callbacks
	state  PlayerState
	before PlayerState
	closed bool

	surface player.Surface
	pushed  struct {
		paused, muted mo.Option[bool]
	}

	// seek gesture anchors
	seekBarWidth         float64
	seekTouchStart       float64
	seekProgressStart    float64
	wasPlayingBeforeSeek bool

	scheduler Scheduler
	hideGen   uint64
	hideStop  func() bool

	// effects run after the lock is released, in order; settled effects run
	// after the surface has been reconciled with the new state.
	effects []func()
	settled []func()
}

// New mounts a controller. Zero-valued dimensions, timeout and platform fall
// back to their defaults before validation.
func New(cfg Config, cb Callbacks, opts ...Option) (*Controller, error) {
	if cfg.VideoWidth == 0 {
		cfg.VideoWidth = DefaultVideoWidth
	}
	if cfg.VideoHeight == 0 {
		cfg.VideoHeight = DefaultVideoHeight
	}
	if cfg.ControlsTimeout == 0 {
		cfg.ControlsTimeout = DefaultControlsTimeout
	}
	if cfg.Platform == "" {
		cfg.Platform = runtime.GOOS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:                  cfg,
		cb:                   cb,
		state:                initialState(&cfg),
		seekBarWidth:         initialWidth,
		wasPlayingBeforeSeek: cfg.Autoplay,
		scheduler:            timerScheduler{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.Autoplay {
		c.mu.Lock()
		c.scheduleHideLocked()
		c.mu.Unlock()
	}

	log.Debugf("videoplayer mounted for %s (autoplay=%t loop=%t)", cfg.Source, cfg.Autoplay, cfg.Loop)
	return c, nil
}

// Config returns the configuration the controller was mounted with.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a snapshot of the current state.
func (c *Controller) State() PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attach binds a media surface. Its paused and muted properties are pushed
// from the current state on the next reconcile.
func (c *Controller) Attach(s player.Surface) {
	if !c.begin() {
		return
	}
	defer c.end()

	c.surface = s
	c.pushed.paused = mo.None[bool]()
	c.pushed.muted = mo.None[bool]()
}

// Detach unbinds the media surface; surface commands become no-ops.
func (c *Controller) Detach() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.surface = nil
}

// Close unmounts the controller and cancels any pending hide.
// Events delivered after Close are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelHideLocked()
	c.surface = nil
	c.closed = true
	c.effects = nil
	c.settled = nil
}

// begin acquires the lock for an event. It returns false, with the lock
// released, once the controller is closed.
func (c *Controller) begin() bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.before = c.state
	return true
}

// end releases the lock and then runs the queued effects, the surface
// reconciliation, the settled effects and finally OnChange.
func (c *Controller) end() {
	effects, settled := c.effects, c.settled
	c.effects, c.settled = nil, nil
	writes := c.reconcileLocked()
	snapshot, changed := c.state, c.state != c.before
	onChange := c.cb.OnChange
	c.mu.Unlock()

	for _, f := range effects {
		f()
	}
	for _, f := range writes {
		f()
	}
	for _, f := range settled {
		f()
	}
	if changed && onChange != nil {
		onChange(snapshot)
	}
}

// emit queues a host callback.
func (c *Controller) emit(f func()) {
	if f != nil {
		c.effects = append(c.effects, f)
	}
}

// command queues a surface command. Without an attached surface the command
// is dropped: the media is simply not ready yet.
func (c *Controller) command(name string, f func(player.Surface) error) {
	if run, ok := c.bind(name, f); ok {
		c.effects = append(c.effects, run)
	}
}

// commandSettled is command, deferred until the surface reflects the new state.
func (c *Controller) commandSettled(name string, f func(player.Surface) error) {
	if run, ok := c.bind(name, f); ok {
		c.settled = append(c.settled, run)
	}
}

func (c *Controller) bind(name string, f func(player.Surface) error) (func(), bool) {
	s := c.surface
	if s == nil {
		log.Tracef("surface not attached, dropping %s", name)
		return nil, false
	}
	return func() {
		if err := f(s); err != nil {
			log.Warnf("surface %s: %v", name, err)
		}
	}, true
}

// reconcileLocked computes the property writes needed to bring the surface's
// paused and muted flags in line with the state.
func (c *Controller) reconcileLocked() []func() {
	ctl, ok := c.surface.(player.Controls)
	if !ok {
		return nil
	}

	var out []func()
	paused := c.cfg.Paused || !c.state.IsPlaying || c.screenLocked() != ScreenVideo
	if prev, ok := c.pushed.paused.Get(); !ok || prev != paused {
		c.pushed.paused = mo.Some(paused)
		out = append(out, func() {
			if err := ctl.SetPaused(paused); err != nil {
				log.Warnf("surface set paused=%t: %v", paused, err)
			}
		})
	}

	muted := c.cfg.Muted || c.state.IsMuted
	if prev, ok := c.pushed.muted.Get(); !ok || prev != muted {
		c.pushed.muted = mo.Some(muted)
		out = append(out, func() {
			if err := ctl.SetMuted(muted); err != nil {
				log.Warnf("surface set muted=%t: %v", muted, err)
			}
		})
	}

	return out
}
