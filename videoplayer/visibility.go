package videoplayer

import "time"

// Scheduler runs f once after d. The returned stop function cancels the run
// and reports whether it was still pending. f must not run before AfterFunc
// returns.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// ShowControls reveals the controls and restarts the auto-hide countdown.
func (c *Controller) ShowControls() {
	if !c.begin() {
		return
	}
	defer c.end()

	c.showControlsLocked()
}

func (c *Controller) showControlsLocked() {
	c.emit(c.cb.OnShowControls)
	c.state.IsControlsVisible = true
	c.scheduleHideLocked()
}

// scheduleHideLocked replaces any pending hide with a new one.
func (c *Controller) scheduleHideLocked() {
	if c.cfg.DisableControlsAutoHide {
		return
	}

	c.cancelHideLocked()

	c.hideGen++
	gen := c.hideGen
	c.hideStop = c.scheduler.AfterFunc(c.cfg.ControlsTimeout, func() {
		c.fireHide(gen)
	})
}

func (c *Controller) cancelHideLocked() {
	if c.hideStop != nil {
		c.hideStop()
		c.hideStop = nil
	}
}

// fireHide hides the controls unless the timer of generation gen was
// superseded after it had already started firing.
func (c *Controller) fireHide(gen uint64) {
	if !c.begin() {
		return
	}
	defer c.end()

	if gen != c.hideGen || c.hideStop == nil {
		return
	}
	c.hideStop = nil

	c.state.IsControlsVisible = false
	c.emit(c.cb.OnHideControls)
}
