package videoplayer

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tapedeck/tapedeck/constant"
)

func mount(cfg Config, n *counters) (*Controller, *manualScheduler) {
	sched := &manualScheduler{}
	c, err := New(cfg, n.callbacks(), WithScheduler(sched))
	So(err, ShouldBeNil)
	return c, sched
}

func TestNew(t *testing.T) {
	Convey("Given a configuration", t, func() {
		cfg := Defaults("movie.mp4")

		Convey("It rejects an empty source", func() {
			_, err := New(Config{}, Callbacks{})
			So(err, ShouldNotBeNil)
		})

		Convey("It fills zero values with defaults", func() {
			c, err := New(Config{Source: "movie.mp4"}, Callbacks{})
			So(err, ShouldBeNil)
			So(c.Config().VideoWidth, ShouldEqual, DefaultVideoWidth)
			So(c.Config().VideoHeight, ShouldEqual, DefaultVideoHeight)
			So(c.Config().ControlsTimeout, ShouldEqual, DefaultControlsTimeout)
			So(c.Config().Platform, ShouldNotBeEmpty)
			c.Close()
		})

		Convey("Without autoplay the player waits on the start affordance", func() {
			c, sched := mount(cfg, &counters{})
			s := c.State()
			So(s.IsStarted, ShouldBeFalse)
			So(s.IsPlaying, ShouldBeFalse)
			So(s.IsControlsVisible, ShouldBeTrue)
			So(sched.Pending(), ShouldEqual, 0)
		})

		Convey("With autoplay, default mute and hidden controls", func() {
			cfg.Autoplay = true
			cfg.DefaultMuted = true
			cfg.HideControlsOnStart = true
			c, sched := mount(cfg, &counters{})
			s := c.State()
			So(s.IsStarted, ShouldBeTrue)
			So(s.IsPlaying, ShouldBeTrue)
			So(s.IsMuted, ShouldBeTrue)
			So(s.IsControlsVisible, ShouldBeFalse)
			So(sched.Pending(), ShouldEqual, 1)
		})
	})
}

func TestPlayback(t *testing.T) {
	Convey("Given a mounted controller with a surface", t, func() {
		n := &counters{}
		cfg := Defaults("movie.mp4")
		c, sched := mount(cfg, n)
		surface := &recordingSurface{}
		c.Attach(surface)

		Convey("Attaching pushes the paused and muted properties", func() {
			So(surface.Calls(), ShouldResemble, []string{"paused true", "muted false"})
		})

		Convey("Start plays and schedules the auto-hide", func() {
			surface.Reset()
			c.Start()
			s := c.State()
			So(n.start, ShouldEqual, 1)
			So(s.IsPlaying, ShouldBeTrue)
			So(s.IsStarted, ShouldBeTrue)
			So(s.HasEnded, ShouldBeFalse)
			So(surface.Calls(), ShouldResemble, []string{"paused false"})

			sched.Advance(DefaultControlsTimeout)
			So(c.State().IsControlsVisible, ShouldBeFalse)
			So(n.hide, ShouldEqual, 1)
		})

		Convey("Start after the end rewinds the progress", func() {
			c.Start()
			c.OnLoad(10)
			c.OnEnd()
			So(c.State().Progress, ShouldEqual, 1)
			c.Start()
			So(c.State().Progress, ShouldEqual, 0)
		})

		Convey("Progress follows the reported position", func() {
			c.OnLoad(120)
			So(n.load, ShouldResemble, []float64{120})

			for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.999, 1} {
				c.OnProgress(p * 120)
				So(c.State().Progress, ShouldAlmostEqual, p, 1e-9)
			}
			So(len(n.progress), ShouldEqual, 6)
		})

		Convey("Progress is zero while the duration is unknown", func() {
			c.OnProgress(30)
			So(c.State().Progress, ShouldEqual, 0)
			So(c.CurrentTime(), ShouldEqual, 30)
		})

		Convey("Sixty seconds into two minutes is half way", func() {
			c.Start()
			c.OnLoad(120)
			c.OnProgress(60)
			So(c.State().Progress, ShouldEqual, 0.5)
			So(c.View().Time, ShouldEqual, "01:00")
		})

		Convey("TogglePlay flips the play state and shows the controls", func() {
			c.TogglePlay()
			So(c.State().IsPlaying, ShouldBeTrue)
			So(n.playPress, ShouldEqual, 1)
			So(n.show, ShouldEqual, 1)
			c.TogglePlay()
			So(c.State().IsPlaying, ShouldBeFalse)
		})

		Convey("ToggleMute reports the new value", func() {
			c.ToggleMute()
			c.ToggleMute()
			So(n.mutes, ShouldResemble, []bool{true, false})
			So(c.State().IsMuted, ShouldBeFalse)
		})

		Convey("Stop rewinds and pauses", func() {
			c.Start()
			c.OnLoad(100)
			c.OnProgress(40)
			surface.Reset()
			c.Stop()
			s := c.State()
			So(s.IsPlaying, ShouldBeFalse)
			So(s.Progress, ShouldEqual, 0)
			So(s.IsControlsVisible, ShouldBeTrue)
			So(surface.Calls(), ShouldResemble, []string{"seek 0", "paused true"})
		})

		Convey("Pause and Resume drive the surface", func() {
			c.Start()
			surface.Reset()
			c.Pause()
			c.Resume()
			So(surface.Calls(), ShouldResemble, []string{"paused true", "paused false"})
		})

		Convey("Seek is forwarded untouched", func() {
			surface.Reset()
			c.Seek(42.5)
			So(surface.Calls(), ShouldResemble, []string{"seek 42.5"})
			So(c.State().CurrentTime, ShouldEqual, 0)
		})

		Convey("Leaving fullscreen while playing pauses", func() {
			c.Start()
			c.OnFullscreenDismissed()
			So(c.State().IsPlaying, ShouldBeFalse)
		})

		Convey("A callback may re-enter the controller", func() {
			reentrant, err := New(cfg, Callbacks{}, WithScheduler(sched))
			So(err, ShouldBeNil)
			reentrant.cb.OnEnd = reentrant.Start
			reentrant.OnEnd()
			So(reentrant.State().IsPlaying, ShouldBeTrue)
		})
	})
}

func TestOnEnd(t *testing.T) {
	Convey("Given a playing controller", t, func() {
		n := &counters{}
		cfg := Defaults("movie.mp4")
		cfg.Autoplay = true

		Convey("Without looping it stops and then rewinds", func() {
			c, _ := mount(cfg, n)
			surface := &recordingSurface{}
			c.Attach(surface)
			surface.Reset()

			c.OnEnd()
			s := c.State()
			So(n.end, ShouldEqual, 1)
			So(s.IsPlaying, ShouldBeFalse)
			So(s.Progress, ShouldEqual, 1)
			So(surface.Calls(), ShouldResemble, []string{"paused true", "seek 0"})
		})

		Convey("With looping it rewinds immediately and keeps playing", func() {
			cfg.Loop = true
			c, _ := mount(cfg, n)
			surface := &recordingSurface{}
			c.Attach(surface)
			surface.Reset()

			c.OnEnd()
			So(c.State().IsPlaying, ShouldBeTrue)
			So(surface.Calls(), ShouldResemble, []string{"seek 0", "paused false"})
		})

		Convey("With an end thumbnail it leaves the video", func() {
			cfg.EndThumbnail = mo.Some("poster.png")
			c, _ := mount(cfg, n)
			surface := &recordingSurface{}
			c.Attach(surface)
			surface.Reset()

			c.OnEnd()
			s := c.State()
			So(s.IsStarted, ShouldBeFalse)
			So(s.HasEnded, ShouldBeTrue)
			So(surface.Calls()[0], ShouldEqual, "dismiss fullscreen")
			So(surface.Calls(), ShouldContain, "seek 0")
			So(c.Screen(), ShouldEqual, ScreenEndThumbnail)
		})

		Convey("EndWithThumbnail alone also dismisses fullscreen", func() {
			cfg.EndWithThumbnail = true
			c, _ := mount(cfg, n)
			surface := &recordingSurface{}
			c.Attach(surface)
			surface.Reset()

			c.OnEnd()
			s := c.State()
			So(s.IsStarted, ShouldBeFalse)
			So(s.HasEnded, ShouldBeTrue)
			So(surface.Calls(), ShouldContain, "dismiss fullscreen")
			So(c.Screen(), ShouldEqual, ScreenPlaceholder)
		})

		Convey("A surface without property control still gets the rewind", func() {
			c, _ := mount(cfg, n)
			surface := &seekOnlySurface{}
			c.Attach(surface)

			c.OnEnd()
			So(surface.seeks, ShouldResemble, []float64{0})
		})
	})
}

func TestFullscreen(t *testing.T) {
	Convey("Given a started controller", t, func() {
		cfg := Defaults("movie.mp4")
		cfg.Autoplay = true
		cfg.Platform = constant.Linux
		surface := &recordingSurface{}

		Convey("ToggleFullscreen presents fullscreen", func() {
			c, _ := mount(cfg, &counters{})
			c.Attach(surface)
			surface.Reset()
			c.ToggleFullscreen()
			So(surface.Calls(), ShouldResemble, []string{"present fullscreen"})
		})

		Convey("It is a no-op on android", func() {
			cfg.Platform = constant.Android
			c, _ := mount(cfg, &counters{})
			c.Attach(surface)
			surface.Reset()
			c.ToggleFullscreen()
			So(surface.Calls(), ShouldBeEmpty)
		})

		Convey("It is a no-op when disabled", func() {
			cfg.DisableFullscreen = true
			c, _ := mount(cfg, &counters{})
			c.Attach(surface)
			surface.Reset()
			c.ToggleFullscreen()
			So(surface.Calls(), ShouldBeEmpty)
		})

		Convey("Long press enters fullscreen only when enabled", func() {
			c, _ := mount(cfg, &counters{})
			c.Attach(surface)
			surface.Reset()
			c.LongPressOverlay()
			So(surface.Calls(), ShouldBeEmpty)

			cfg.FullScreenOnLongPress = true
			c, _ = mount(cfg, &counters{})
			c.Attach(surface)
			surface.Reset()
			c.LongPressOverlay()
			So(surface.Calls(), ShouldResemble, []string{"present fullscreen"})
		})
	})
}

func TestOverlayPress(t *testing.T) {
	Convey("Given a playing controller with hidden controls", t, func() {
		cfg := Defaults("movie.mp4")
		cfg.Autoplay = true
		cfg.HideControlsOnStart = true

		Convey("A press shows the controls", func() {
			c, _ := mount(cfg, &counters{})
			c.PressOverlay()
			So(c.State().IsControlsVisible, ShouldBeTrue)
			So(c.State().IsPlaying, ShouldBeTrue)
		})

		Convey("With PauseOnPress a press also pauses", func() {
			cfg.PauseOnPress = true
			n := &counters{}
			c, _ := mount(cfg, n)
			c.PressOverlay()
			So(c.State().IsPlaying, ShouldBeFalse)
			So(n.playPress, ShouldEqual, 1)
		})
	})
}

func TestNotReady(t *testing.T) {
	Convey("Without an attached surface", t, func() {
		cfg := Defaults("movie.mp4")
		cfg.Autoplay = true
		c, _ := mount(cfg, &counters{})

		Convey("Surface commands are dropped silently", func() {
			So(func() {
				c.Seek(10)
				c.ToggleFullscreen()
				c.OnEnd()
				c.Stop()
			}, ShouldNotPanic)
		})

		Convey("Detaching stops commands reaching the old surface", func() {
			surface := &recordingSurface{}
			c.Attach(surface)
			c.Detach()
			surface.Reset()
			c.Seek(5)
			So(surface.Calls(), ShouldBeEmpty)
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Given a controller with a pending hide", t, func() {
		n := &counters{}
		cfg := Defaults("movie.mp4")
		c, sched := mount(cfg, n)
		c.Start()
		So(sched.Pending(), ShouldEqual, 1)

		Convey("Close cancels the timer and ignores later events", func() {
			c.Close()
			So(sched.Pending(), ShouldEqual, 0)

			sched.Advance(time.Minute)
			c.TogglePlay()
			So(n.hide, ShouldEqual, 0)
			So(n.playPress, ShouldEqual, 0)
			So(c.State().IsControlsVisible, ShouldBeTrue)
		})
	})
}
