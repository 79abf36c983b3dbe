package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stereoplay/stereoplay/dispatch"
)

func TestProxy(t *testing.T) {
	Convey("Given a proxy attached to a bus", t, func() {
		bus := dispatch.NewBus()
		backend := newFakeBackend()
		core := NewCore(bus, backend)
		proxy := NewProxy(bus, core)
		seen := &notes{}
		bus.Register(seen)

		init := NewInitData()
		init.Sources = []string{"/videos/movie.mkv"}
		So(core.Open(init), ShouldBeNil)

		Convey("commands are dropped while stopped", func() {
			bus.Send(dispatch.NewNumberCommand(dispatch.SetPos, 0.5))
			So(seen.seen, ShouldBeEmpty)
			So(backend.commands, ShouldBeEmpty)
		})

		Convey("toggle_play while stopped requests playback", func() {
			bus.Send(dispatch.NewCommand(dispatch.TogglePlay))
			So(seen.seen, ShouldHaveLength, 1)
			So(seen.last().Type, ShouldEqual, dispatch.Play)
			So(seen.last().Previous.Flag, ShouldBeFalse)
			So(seen.last().Current.Flag, ShouldBeTrue)
			So(proxy.Playing(), ShouldBeTrue)

			Convey("then commands reach the engine", func() {
				bus.Send(dispatch.NewNumberCommand(dispatch.SetPos, 0.5))
				So(seen.last().Type, ShouldEqual, dispatch.Pos)
				So(seen.last().Current.Number, ShouldEqual, 0.5)
			})

			Convey("and toggle_play again stops it", func() {
				bus.Send(dispatch.NewCommand(dispatch.TogglePlay))
				So(seen.last().Type, ShouldEqual, dispatch.Play)
				So(seen.last().Current.Flag, ShouldBeFalse)
				So(proxy.Playing(), ShouldBeFalse)
			})

			Convey("force stop notifies and halts the next step", func() {
				proxy.ForceStop()
				So(seen.last().Previous.Flag, ShouldBeTrue)
				So(seen.last().Current.Flag, ShouldBeFalse)
				So(proxy.Playing(), ShouldBeFalse)

				ok, err := core.Step()
				So(ok, ShouldBeFalse)
				So(err, ShouldBeNil)
			})
		})

		Convey("released proxies no longer receive anything", func() {
			before := bus.Controllers()
			proxy.Release()
			So(bus.Controllers(), ShouldEqual, before-1)

			bus.Send(dispatch.NewCommand(dispatch.TogglePlay))
			So(seen.seen, ShouldBeEmpty)
		})
	})
}
