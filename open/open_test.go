package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stereoplay/stereoplay/constant"
)

func TestHandler(t *testing.T) {
	Convey("Each supported OS has an opener", t, func() {
		name, args, ok := handler(constant.Linux)
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "xdg-open")
		So(args, ShouldBeEmpty)

		name, _, ok = handler(constant.Darwin)
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "open")

		_, args, ok = handler(constant.Windows)
		So(ok, ShouldBeTrue)
		So(args, ShouldResemble, []string{"url.dll,FileProtocolHandler"})

		_, _, ok = handler("plan9")
		So(ok, ShouldBeFalse)
	})
}
