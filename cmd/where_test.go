package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLookupLocations(t *testing.T) {
	Convey("Locations are looked up by name", t, func() {
		found, err := lookupLocations([]string{"recent", "settings", "recent"}, clearable)
		So(err, ShouldBeNil)
		So(len(found), ShouldEqual, 2)
		So(found[0].name, ShouldEqual, "recent")
		So(found[1].name, ShouldEqual, "settings")

		Convey("the configuration cannot be cleared", func() {
			_, err := lookupLocations([]string{"config"}, clearable)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "requests")
		})

		Convey("unknown names are refused", func() {
			_, err := lookupLocations([]string{"downloads"}, func(location) bool { return true })
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Internal locations are clearable but not listed by default", t, func() {
		So(locationNames(clearable), ShouldContain, "temp")
		So(locationNames(func(l location) bool { return !l.internal }), ShouldNotContain, "cache")
	})
}
