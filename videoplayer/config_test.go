package videoplayer

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigValidate(t *testing.T) {
	Convey("Given the factory defaults", t, func() {
		cfg := Defaults("movie.mp4")

		Convey("They are valid", func() {
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("A missing source is reported", func() {
			cfg.Source = ""
			So(cfg.Validate(), ShouldBeError, "Source is required")
		})

		Convey("Non-positive dimensions are reported", func() {
			cfg.VideoHeight = -1
			So(cfg.Validate(), ShouldBeError, "VideoHeight must be greater than 0")
		})

		Convey("A negative timeout is reported", func() {
			cfg.ControlsTimeout = -time.Second
			So(cfg.Validate(), ShouldBeError, "ControlsTimeout must not be negative")
		})

		Convey("Optional fields do not affect validation", func() {
			cfg.Thumbnail = mo.Some("poster.png")
			cfg.SeekBarPadding = &Padding{Horizontal: mo.Some(4.0)}
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestPaddingSides(t *testing.T) {
	Convey("Given seek bar padding", t, func() {
		Convey("Nil padding uses the default on both sides", func() {
			var p *Padding
			left, right := p.Sides()
			So(left, ShouldEqual, DefaultSeekBarPadding)
			So(right, ShouldEqual, DefaultSeekBarPadding)
		})

		Convey("Horizontal wins over left and right", func() {
			p := &Padding{Horizontal: mo.Some(3.0), Left: 1, Right: 2}
			left, right := p.Sides()
			So(left, ShouldEqual, 3)
			So(right, ShouldEqual, 3)
		})

		Convey("Left and right apply without horizontal", func() {
			p := &Padding{Left: 1, Right: 2}
			So(p.total(), ShouldEqual, 3)
		})
	})
}
