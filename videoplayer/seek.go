package videoplayer

import "github.com/samber/lo"

// SetSeekBarWidth records the measured width of the seek track, minus its
// horizontal padding.
func (c *Controller) SetSeekBarWidth(layoutWidth float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seekBarWidth = layoutWidth - c.cfg.SeekBarPadding.total()
}

// SeekBarWidth returns the usable track width recorded by SetSeekBarWidth.
func (c *Controller) SeekBarWidth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekBarWidth
}

// SeekGrant starts a seek gesture at pointer position x. Playback is paused
// for the duration of the gesture.
func (c *Controller) SeekGrant(x float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	if c.cfg.DisableSeek || c.state.IsSeeking {
		return
	}

	c.seekTouchStart = x
	c.seekProgressStart = c.state.Progress
	c.wasPlayingBeforeSeek = c.state.IsPlaying

	c.state.IsSeeking = true
	c.state.IsPlaying = false
}

// SeekMove moves the knob to pointer position x and seeks the surface there.
func (c *Controller) SeekMove(x float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	if !c.state.IsSeeking || c.seekBarWidth <= 0 {
		return
	}

	diff := x - c.seekTouchStart
	progress := lo.Clamp(c.seekProgressStart+diff/c.seekBarWidth, 0, 1)

	c.state.Progress = progress
	c.command("seek", seekTo(progress*c.duration()))
}

// SeekRelease ends the seek gesture and restores the play state captured on grant.
func (c *Controller) SeekRelease() {
	if !c.begin() {
		return
	}
	defer c.end()

	if !c.state.IsSeeking {
		return
	}

	c.state.IsSeeking = false
	c.state.IsPlaying = c.wasPlayingBeforeSeek
	c.showControlsLocked()
}

// SeekTerminate handles a gesture cancelled by the system. It behaves exactly
// like a release.
func (c *Controller) SeekTerminate() {
	c.SeekRelease()
}
