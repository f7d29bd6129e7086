package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifications(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("A notification is shown and then cleared", func() {
			cmd, handled := m.Update(NotifyMsg("mpv exited"))
			So(handled, ShouldBeTrue)
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "mpv exited")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")

			_, handled = m.Update(clearMsg{seq: 1})
			So(handled, ShouldBeTrue)
			So(m.Current(), ShouldBeEmpty)
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A stale clear does not remove a newer notification", func() {
			m.Update(NotifyMsg("first"))
			m.Update(NotifyMsg("second"))
			m.Update(clearMsg{seq: 1})
			So(m.Current(), ShouldEqual, "second")
		})

		Convey("Other messages are not handled", func() {
			_, handled := m.Update("unrelated")
			So(handled, ShouldBeFalse)
		})

		Convey("Notify wraps the text in a message", func() {
			So(Notify("hi")(), ShouldEqual, NotifyMsg("hi"))
		})
	})
}
