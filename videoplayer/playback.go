package videoplayer

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/player"
)

var _ player.EventSink = (*Controller)(nil)

func seekTo(seconds float64) func(player.Surface) error {
	return func(s player.Surface) error {
		return s.Seek(seconds)
	}
}

// Start begins playback from the start affordance. Starting from the end
// rewinds the progress bar.
func (c *Controller) Start() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.emit(c.cb.OnStart)

	c.state.IsPlaying = true
	c.state.IsStarted = true
	c.state.HasEnded = false
	if c.state.Progress == 1 {
		c.state.Progress = 0
	}

	c.scheduleHideLocked()
}

// OnProgress records the playback position reported by the surface.
// Reports are ignored while the user is dragging the seek knob.
func (c *Controller) OnProgress(currentTime float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	if c.state.IsSeeking {
		return
	}

	if cb := c.cb.OnProgress; cb != nil {
		c.emit(func() { cb(currentTime) })
	}

	c.state.CurrentTime = currentTime
	c.state.Progress = c.progressOf(currentTime)
}

// OnLoad records the media duration reported by the surface.
func (c *Controller) OnLoad(duration float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	if cb := c.cb.OnLoad; cb != nil {
		c.emit(func() { cb(duration) })
	}

	c.state.Duration = max(duration, 0)
}

// OnEnd handles playback completion: optional end thumbnail, then either a
// rewind-and-stop or, when looping, an immediate rewind.
func (c *Controller) OnEnd() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.emit(c.cb.OnEnd)

	if c.cfg.endsWithThumbnail() {
		c.state.IsStarted = false
		c.state.HasEnded = true
		c.command("dismiss fullscreen", player.Surface.DismissFullscreen)
	}

	c.state.Progress = 1

	// The surface may pause itself at end of file; push paused again either way.
	c.pushed.paused = mo.None[bool]()

	if !c.cfg.Loop {
		c.state.IsPlaying = false
		c.commandSettled("seek", seekTo(0))
	} else {
		c.command("seek", seekTo(0))
	}

	log.Debugf("playback ended (loop=%t, end thumbnail=%t)", c.cfg.Loop, c.state.HasEnded)
}

// OnFullscreenDismissed pauses when the surface leaves fullscreen on its own
// while playing, keeping the play button in sync with the media.
func (c *Controller) OnFullscreenDismissed() {
	if !c.begin() {
		return
	}
	defer c.end()

	if c.state.IsPlaying {
		c.state.IsPlaying = false
	}
}

// TogglePlay flips between playing and paused.
func (c *Controller) TogglePlay() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.togglePlayLocked()
}

func (c *Controller) togglePlayLocked() {
	c.emit(c.cb.OnPlayPress)
	c.state.IsPlaying = !c.state.IsPlaying
	c.showControlsLocked()
}

// ToggleMute flips the muted flag.
func (c *Controller) ToggleMute() {
	if !c.begin() {
		return
	}
	defer c.end()

	muted := !c.state.IsMuted
	if cb := c.cb.OnMutePress; cb != nil {
		c.emit(func() { cb(muted) })
	}
	c.state.IsMuted = muted
	c.showControlsLocked()
}

// ToggleFullscreen asks the surface to present fullscreen.
func (c *Controller) ToggleFullscreen() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.toggleFullscreenLocked()
}

func (c *Controller) toggleFullscreenLocked() {
	if !c.fullscreenAvailable() {
		return
	}
	c.command("present fullscreen", player.Surface.PresentFullscreen)
}

func (c *Controller) fullscreenAvailable() bool {
	return c.cfg.Platform != constant.Android && !c.cfg.DisableFullscreen
}

// PressOverlay handles a tap on the video area.
func (c *Controller) PressOverlay() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.showControlsLocked()
	if c.cfg.PauseOnPress {
		c.togglePlayLocked()
	}
}

// LongPressOverlay handles a long press on the video area.
func (c *Controller) LongPressOverlay() {
	if !c.begin() {
		return
	}
	defer c.end()

	if c.cfg.FullScreenOnLongPress {
		c.toggleFullscreenLocked()
	}
}

// CurrentTime returns the last position reported by the surface.
func (c *Controller) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CurrentTime
}

// Seek forwards an absolute seek to the surface without touching the state.
func (c *Controller) Seek(seconds float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	c.command("seek", seekTo(seconds))
}

// Stop pauses, rewinds to the start and shows the controls.
func (c *Controller) Stop() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.state.IsPlaying = false
	c.state.Progress = 0
	c.command("seek", seekTo(0))
	c.showControlsLocked()
}

// Pause pauses playback and shows the controls.
func (c *Controller) Pause() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.state.IsPlaying = false
	c.showControlsLocked()
}

// Resume resumes playback and shows the controls.
func (c *Controller) Resume() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.state.IsPlaying = true
	c.showControlsLocked()
}

// duration prefers the configured override over the loaded duration.
func (c *Controller) duration() float64 {
	if c.cfg.Duration > 0 {
		return c.cfg.Duration
	}
	return c.state.Duration
}

// progressOf maps a position to [0,1]; an unknown duration yields 0.
func (c *Controller) progressOf(currentTime float64) float64 {
	d := c.duration()
	if d <= 0 {
		return 0
	}
	return lo.Clamp(currentTime/d, 0, 1)
}
