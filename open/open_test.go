package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tapedeck/tapedeck/constant"
)

func TestCommand(t *testing.T) {
	Convey("The default handler depends on the platform", t, func() {
		cmd, err := command(constant.Linux, "/tmp/poster.png")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/tmp/poster.png"})

		cmd, err = command(constant.Darwin, "https://example.com/poster.png")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "https://example.com/poster.png"})

		cmd, err = command(constant.Windows, "poster.png")
		So(err, ShouldBeNil)
		So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", "poster.png"})

		_, err = command("plan9", "poster.png")
		So(err, ShouldNotBeNil)
	})
}
