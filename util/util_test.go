package util

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stereoplay/stereoplay/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("crosstalk"), ShouldEqual, "Crosstalk")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
		So(Clamp(-0.5, 0.0, 1.0), ShouldEqual, 0.0)
		So(Clamp(0.25, 0.0, 1.0), ShouldEqual, 0.25)
		So(Clamp(7, 1, 5), ShouldEqual, 5)
	})
}

func TestTimestamp(t *testing.T) {
	Convey("Timestamp", t, func() {
		So(Timestamp(0), ShouldEqual, "0:00:00")
		So(Timestamp(61.4), ShouldEqual, "0:01:01")
		So(Timestamp(3725), ShouldEqual, "1:02:05")
		So(Timestamp(math.NaN()), ShouldEqual, "0:00:00")
		So(Timestamp(-3), ShouldEqual, "0:00:00")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/requests/sub", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/requests/sub/a.req", []byte("x"), 0o644), ShouldBeNil)

		So(Delete("/tmp/requests"), ShouldBeNil)
		exists, _ := fs.Exists("/tmp/requests")
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/missing"), ShouldNotBeNil)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		So(s.Pop(), ShouldEqual, "")
		_, ok := s.Peek()
		So(ok, ShouldBeFalse)

		s.Push("player")
		s.Push("dialogs")
		So(s.Len(), ShouldEqual, 2)
		top, ok := s.Peek()
		So(ok, ShouldBeTrue)
		So(top, ShouldEqual, "dialogs")
		So(s.Pop(), ShouldEqual, "dialogs")
		So(s.Pop(), ShouldEqual, "player")
		So(s.Len(), ShouldEqual, 0)
	})
}
