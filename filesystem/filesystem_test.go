package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
			So(IsOs(), ShouldBeTrue)
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
			So(IsOs(), ShouldBeFalse)
		})

		Convey("GacheFs writes through the active backend", func() {
			SetMemMapFs()
			var fs GacheFs
			So(fs.MkdirAll("/recent", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/recent/list.json", os.O_WRONLY|os.O_CREATE, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("[]"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := API().Exists("/recent/list.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
