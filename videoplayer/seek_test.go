package videoplayer

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeekGesture(t *testing.T) {
	Convey("Given a started two minute video a quarter of the way in", t, func() {
		n := &counters{}
		cfg := Defaults("movie.mp4")
		c, _ := mount(cfg, n)
		surface := &recordingSurface{}
		c.Attach(surface)
		c.Start()
		c.OnLoad(120)
		c.OnProgress(30)
		c.SetSeekBarWidth(220)
		surface.Reset()

		Convey("Granting pauses and remembers the play state", func() {
			c.SeekGrant(50)
			s := c.State()
			So(s.IsSeeking, ShouldBeTrue)
			So(s.IsPlaying, ShouldBeFalse)
			So(surface.Calls(), ShouldResemble, []string{"paused true"})

			Convey("Moving maps the pointer onto the track", func() {
				surface.Reset()
				c.SeekMove(150)
				So(c.State().Progress, ShouldEqual, 0.75)
				So(surface.Calls(), ShouldResemble, []string{"seek 90"})
			})

			Convey("Moving past either end clamps the progress", func() {
				c.SeekMove(10_000)
				So(c.State().Progress, ShouldEqual, 1)
				c.SeekMove(-10_000)
				So(c.State().Progress, ShouldEqual, 0)
			})

			Convey("Progress reports are ignored while dragging", func() {
				c.SeekMove(150)
				c.OnProgress(12)
				So(c.State().Progress, ShouldEqual, 0.75)
			})

			Convey("A second grant does not reset the anchors", func() {
				c.SeekGrant(150)
				c.SeekMove(150)
				So(c.State().Progress, ShouldEqual, 0.75)
			})

			Convey("Releasing restores playback", func() {
				c.SeekRelease()
				s := c.State()
				So(s.IsSeeking, ShouldBeFalse)
				So(s.IsPlaying, ShouldBeTrue)
				So(s.IsControlsVisible, ShouldBeTrue)
			})

			Convey("Termination behaves like a release", func() {
				c.SeekTerminate()
				So(c.State().IsSeeking, ShouldBeFalse)
				So(c.State().IsPlaying, ShouldBeTrue)
			})
		})

		Convey("A paused video stays paused after the gesture", func() {
			c.TogglePlay()
			c.SeekGrant(50)
			c.SeekMove(60)
			c.SeekRelease()
			So(c.State().IsPlaying, ShouldBeFalse)
		})

		Convey("Moving or releasing without a grant does nothing", func() {
			c.SeekMove(150)
			c.SeekRelease()
			So(c.State().Progress, ShouldEqual, 0.25)
			So(c.State().IsPlaying, ShouldBeTrue)
			So(surface.Calls(), ShouldBeEmpty)
		})
	})

	Convey("Given seeking is disabled", t, func() {
		cfg := Defaults("movie.mp4")
		cfg.Autoplay = true
		cfg.DisableSeek = true
		c, _ := mount(cfg, &counters{})

		Convey("The grant is ignored", func() {
			c.SeekGrant(10)
			So(c.State().IsSeeking, ShouldBeFalse)
			So(c.State().IsPlaying, ShouldBeTrue)
			So(c.View().ShowKnob, ShouldBeFalse)
		})
	})
}

func TestSeekBarPadding(t *testing.T) {
	Convey("Given the seek bar padding", t, func() {
		Convey("The default is ten units on each side", func() {
			var p *Padding
			So(p.total(), ShouldEqual, 20)
		})

		Convey("Horizontal padding wins over left and right", func() {
			p := &Padding{Horizontal: mo.Some(4.0), Left: 30, Right: 30}
			So(p.total(), ShouldEqual, 8)
		})

		Convey("Left and right are summed otherwise", func() {
			p := &Padding{Left: 3, Right: 7}
			So(p.total(), ShouldEqual, 10)
			left, right := p.Sides()
			So(left, ShouldEqual, 3)
			So(right, ShouldEqual, 7)
		})

		Convey("The measured width loses the padding", func() {
			cfg := Defaults("movie.mp4")
			cfg.SeekBarPadding = &Padding{Left: 3, Right: 7}
			c, _ := mount(cfg, &counters{})
			c.SetSeekBarWidth(100)
			So(c.SeekBarWidth(), ShouldEqual, 90)
		})
	})
}
