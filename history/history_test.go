package history

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func reset() {
	viper.Set(key.RecentEnable, true)
	viper.Set(key.RecentLimit, 3)
	So(cacher.Set(make(map[string]*Entry)), ShouldBeNil)

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
}

func TestHistory(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		reset()

		Convey("When adding sources", func() {
			So(Add([]string{"/videos/Avatar.3D.HSBS.mkv"}, ""), ShouldBeNil)
			So(Add([]string{"/videos/left.mkv", "/videos/right.mkv"}, "Pair"), ShouldBeNil)

			Convey("Then they are listed newest first", func() {
				entries, err := List()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Title, ShouldEqual, "Pair")
				So(entries[1].Title, ShouldEqual, "Avatar.3D.HSBS.mkv")
			})

			Convey("Then positions are remembered across reopening", func() {
				So(SavePosition([]string{"/videos/Avatar.3D.HSBS.mkv"}, 0.4), ShouldBeNil)
				So(Add([]string{"/videos/Avatar.3D.HSBS.mkv"}, ""), ShouldBeNil)

				entries, err := List()
				So(err, ShouldBeNil)
				So(entries[0].Position, ShouldEqual, 0.4)
				So(entries[0].String(), ShouldContainSubstring, "at 40%")
			})

			Convey("Then they can be found by name", func() {
				found, err := Find("avatar")
				So(err, ShouldBeNil)
				So(found, ShouldHaveLength, 1)
				So(found[0].Sources[0], ShouldEqual, "/videos/Avatar.3D.HSBS.mkv")
			})

			Convey("Then they can be removed", func() {
				entries, _ := List()
				So(Remove(entries[0]), ShouldBeNil)
				entries, _ = List()
				So(entries, ShouldHaveLength, 1)
			})
		})

		Convey("When adding more than the limit", func() {
			for _, s := range []string{"/a.mkv", "/b.mkv", "/c.mkv", "/d.mkv"} {
				So(Add([]string{s}, ""), ShouldBeNil)
			}

			Convey("Then the oldest is dropped", func() {
				entries, err := List()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[2].Title, ShouldEqual, "b.mkv")
			})
		})

		Convey("When the registry is disabled", func() {
			viper.Set(key.RecentEnable, false)
			So(Add([]string{"/a.mkv"}, ""), ShouldBeNil)

			Convey("Then nothing is recorded", func() {
				entries, err := List()
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})
	})
}
