package filesystem

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given a directory with old and fresh entries", t, func() {
		SetMemMapFs()
		fs := API()
		now := time.Now()

		So(fs.WriteFile("/logs/old.log", []byte("a"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/logs/new.log", []byte("b"), 0o644), ShouldBeNil)
		So(fs.Chtimes("/logs/old.log", now.Add(-48*time.Hour), now.Add(-48*time.Hour)), ShouldBeNil)

		Convey("Only entries older than the cutoff are removed", func() {
			n, err := Prune("/logs", now.Add(-24*time.Hour))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			exists, _ := fs.Exists("/logs/old.log")
			So(exists, ShouldBeFalse)
			exists, _ = fs.Exists("/logs/new.log")
			So(exists, ShouldBeTrue)
		})

		Convey("A zero cutoff empties the directory", func() {
			n, err := Prune("/logs", time.Time{})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
		})

		Convey("A missing directory is not an error", func() {
			n, err := Prune("/nowhere", time.Time{})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})
	})
}
