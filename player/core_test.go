package player

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/stereo"
)

func init() {
	filesystem.SetMemMapFs()
	for _, name := range []string{"/videos/movie.mkv", "/videos/Avatar.3D.HSBS.mkv", "/videos/left.mkv", "/videos/right.mkv"} {
		if err := filesystem.API().WriteFile(name, []byte("data"), 0644); err != nil {
			panic(err)
		}
	}
}

func openCore(sources ...string) (*Core, *fakeBackend, *notes) {
	backend := newFakeBackend()
	seen := &notes{}
	core := NewCore(seen, backend)

	init := NewInitData()
	init.Sources = sources
	So(core.Open(init), ShouldBeNil)
	return core, backend, seen
}

func TestCoreOpen(t *testing.T) {
	Convey("Opening without sources fails", t, func() {
		core := NewCore(&notes{}, newFakeBackend())
		So(core.Open(NewInitData()), ShouldEqual, ErrNoSources)
	})

	Convey("Opening a missing file fails without starting the backend", t, func() {
		backend := newFakeBackend()
		core := NewCore(&notes{}, backend)
		init := NewInitData()
		init.Sources = []string{"/videos/missing.mkv"}

		So(core.Open(init), ShouldNotBeNil)
		So(backend.started, ShouldBeEmpty)
	})

	Convey("Backend failures are reported and leave the engine closed", t, func() {
		backend := newFakeBackend()
		backend.startErr = errors.New("unsupported format")
		core := NewCore(&notes{}, backend)
		init := NewInitData()
		init.Sources = []string{"/videos/movie.mkv"}

		err := core.Open(init)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unsupported format")

		ok, err := core.Step()
		So(ok, ShouldBeFalse)
		So(err, ShouldBeNil)
	})

	Convey("Given an opened mono file", t, func() {
		core, backend, seen := openCore("/videos/movie.mkv")

		Convey("Detected values are resolved", func() {
			d := core.InitData()
			So(d.StereoLayout, ShouldEqual, stereo.Mono)
			So(d.StereoMode, ShouldEqual, stereo.MonoLeft)
			So(d.SessionID, ShouldNotBeEmpty)
			So(d.Params.Parallax, ShouldEqual, 0)
			So(d.Params.AudioVolume, ShouldEqual, 1)
			So(core.Media().Duration, ShouldEqual, 100)
		})

		Convey("Opening emits no notification", func() {
			So(seen.seen, ShouldBeEmpty)
		})

		Convey("Close is idempotent", func() {
			So(core.Close(), ShouldBeNil)
			So(core.Close(), ShouldBeNil)
			So(backend.closed, ShouldEqual, 1)
		})

		Convey("Reopening closes the previous session first", func() {
			init := NewInitData()
			init.Sources = []string{"/videos/movie.mkv"}
			So(core.Open(init), ShouldBeNil)
			So(backend.closed, ShouldEqual, 1)
			So(backend.started, ShouldHaveLength, 2)
		})
	})

	Convey("Stereo layouts are detected from names", t, func() {
		core, _, _ := openCore("/videos/Avatar.3D.HSBS.mkv")
		d := core.InitData()
		So(d.StereoLayout, ShouldEqual, stereo.LeftRightHalf)
		So(d.StereoMode, ShouldEqual, stereo.RedCyanDubois)
	})

	Convey("Two sources open as separate streams", t, func() {
		core, backend, _ := openCore("/videos/left.mkv", "/videos/right.mkv")
		So(core.InitData().StereoLayout, ShouldEqual, stereo.Separate)
		So(backend.started[0].Sources, ShouldHaveLength, 2)
	})

	Convey("Overrides win over detection", t, func() {
		backend := newFakeBackend()
		core := NewCore(&notes{}, backend)
		init := NewInitData()
		init.Sources = []string{"/videos/movie.mkv"}
		init.StereoLayout, init.StereoLayoutSwap, init.StereoLayoutOverride = stereo.TopBottom, true, true
		init.StereoMode, init.StereoModeOverride = stereo.Checkerboard, true
		init.AudioStream = 7
		init.Params.Parallax = 3

		So(core.Open(init), ShouldBeNil)
		d := core.InitData()
		So(d.StereoLayout, ShouldEqual, stereo.TopBottom)
		So(d.StereoLayoutSwap, ShouldBeTrue)
		So(d.StereoMode, ShouldEqual, stereo.Checkerboard)
		So(d.AudioStream, ShouldEqual, 1)
		So(d.Params.Parallax, ShouldEqual, 1)
	})

	Convey("A separate layout needs two sources", t, func() {
		core := NewCore(&notes{}, newFakeBackend())
		init := NewInitData()
		init.Sources = []string{"/videos/movie.mkv"}
		init.StereoLayout, init.StereoLayoutOverride = stereo.Separate, true
		So(core.Open(init), ShouldNotBeNil)
	})

	Convey("Devices open without files", t, func() {
		core := NewCore(&notes{}, newFakeBackend())
		init := NewInitData()
		init.Device = mo.Some(DeviceRequest{Kind: DeviceX11})
		So(core.Open(init), ShouldBeNil)
		So(core.InitData().StereoLayout, ShouldEqual, stereo.Mono)
	})
}

func TestCoreCommands(t *testing.T) {
	Convey("Given an opened file", t, func() {
		core, backend, seen := openCore("/videos/movie.mkv")

		Convey("set_pos notifies the requested fraction", func() {
			for _, f := range []float64{0, 0.25, 0.5, 1} {
				core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetPos, f))
				So(seen.last().Type, ShouldEqual, dispatch.Pos)
				So(seen.last().Current.Number, ShouldEqual, f)
			}
			So(backend.commands[len(backend.commands)-1], ShouldResemble, []any{"seek", 100.0, "absolute-percent"})
		})

		Convey("set_pos clamps out of range fractions", func() {
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetPos, 1.7))
			So(seen.last().Current.Number, ShouldEqual, 1)
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetPos, -0.3))
			So(seen.last().Current.Number, ShouldEqual, 0)
			So(seen.last().Previous.Number, ShouldEqual, 1)
		})

		Convey("seek moves relative to the duration", func() {
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetPos, 0.5))
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.Seek, 10))
			So(seen.last().Current.Number, ShouldAlmostEqual, 0.6)
			So(backend.commands[len(backend.commands)-1], ShouldResemble, []any{"seek", 10.0, "relative"})

			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.Seek, -600))
			So(seen.last().Current.Number, ShouldEqual, 0)
		})

		Convey("toggle_play stops playback", func() {
			core.ReceiveCmd(dispatch.NewCommand(dispatch.TogglePlay))
			So(seen.last().Type, ShouldEqual, dispatch.Play)
			So(seen.last().Current.Flag, ShouldBeFalse)
		})

		Convey("toggle_pause flips and applies pause", func() {
			core.ReceiveCmd(dispatch.NewCommand(dispatch.TogglePause))
			So(seen.last().Current.Flag, ShouldBeTrue)
			So(backend.sets["pause"], ShouldEqual, true)
		})

		Convey("parallax is clamped and notified", func() {
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetParallax, 0.37))
			So(seen.last().Type, ShouldEqual, dispatch.Parallax)
			So(seen.last().Current.Number, ShouldEqual, 0.37)

			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.AdjustParallax, 1))
			So(seen.last().Previous.Number, ShouldEqual, 0.37)
			So(seen.last().Current.Number, ShouldEqual, 1)
			So(core.Parameters().Parallax, ShouldEqual, 1)
		})

		Convey("equalizer values map to percentages", func() {
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetContrast, 0.25))
			So(backend.sets["contrast"], ShouldEqual, 25)
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.AdjustBrightness, -0.1))
			So(backend.sets["brightness"], ShouldEqual, -10)
		})

		Convey("swapping eyes rebuilds the filter", func() {
			core.ReceiveCmd(dispatch.NewCommand(dispatch.ToggleStereoModeSwap))
			So(seen.last().Type, ShouldEqual, dispatch.StereoModeSwap)
			So(seen.last().Current.Flag, ShouldBeTrue)
			So(backend.sets, ShouldContainKey, "vf")
		})

		Convey("streams are clamped to what the media has", func() {
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetAudioStream, 5))
			So(seen.last().Current.Number, ShouldEqual, 1)
			So(backend.sets["aid"], ShouldEqual, 2)

			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetSubtitleStream, -1))
			So(backend.sets["sid"], ShouldEqual, "no")
		})

		Convey("flags and texts are applied", func() {
			core.ReceiveCmd(dispatch.NewCommand(dispatch.ToggleLoop))
			So(backend.sets["loop-file"], ShouldEqual, "inf")
			core.ReceiveCmd(dispatch.NewTextCommand(dispatch.SetSubtitleEncoding, "cp1252"))
			So(backend.sets["sub-codepage"], ShouldEqual, "cp1252")
			So(seen.last().Current.Text, ShouldEqual, "cp1252")
		})

		Convey("commands are ignored once closed", func() {
			So(core.Close(), ShouldBeNil)
			count := len(seen.seen)
			core.ReceiveCmd(dispatch.NewNumberCommand(dispatch.SetPos, 0.5))
			So(seen.seen, ShouldHaveLength, count)
		})
	})
}

func TestCoreStep(t *testing.T) {
	Convey("Given an opened file", t, func() {
		core, backend, seen := openCore("/videos/movie.mkv")

		Convey("the first step starts playback", func() {
			ok, err := core.Step()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(backend.sets["pause"], ShouldEqual, false)
		})

		Convey("position events become pos notifications", func() {
			backend.events <- Event{Name: EventTimePos, Value: dispatch.Number(25)}
			backend.events <- Event{Name: EventTimePos, Value: dispatch.Number(25)}
			backend.events <- Event{Name: EventTimePos, Value: dispatch.Number(50)}

			ok, _ := core.Step()
			So(ok, ShouldBeTrue)
			pos := seen.of(dispatch.Pos)
			So(pos, ShouldHaveLength, 2)
			So(pos[0].Current.Number, ShouldEqual, 0.25)
			So(pos[1].Current.Number, ShouldEqual, 0.5)
		})

		Convey("pause events sync the pause state", func() {
			backend.events <- Event{Name: EventPause, Value: dispatch.Flag(true)}
			_, _ = core.Step()
			So(seen.last().Type, ShouldEqual, dispatch.Pause)
			So(seen.last().Current.Flag, ShouldBeTrue)
		})

		Convey("the end of the stream ends the loop", func() {
			backend.events <- Event{Name: EventEOF, Value: dispatch.Flag(true)}
			ok, err := core.Step()
			So(ok, ShouldBeFalse)
			So(err, ShouldBeNil)
		})

		Convey("looping ignores the end of the stream", func() {
			core.ReceiveCmd(dispatch.NewCommand(dispatch.ToggleLoop))
			backend.events <- Event{Name: EventEOF, Value: dispatch.Flag(true)}
			ok, _ := core.Step()
			So(ok, ShouldBeTrue)
		})

		Convey("a closed event channel ends the loop", func() {
			close(backend.events)
			ok, _ := core.Step()
			So(ok, ShouldBeFalse)
		})

		Convey("force stop ends the next step only", func() {
			core.ForceStop()
			ok, _ := core.Step()
			So(ok, ShouldBeFalse)
			ok, _ = core.Step()
			So(ok, ShouldBeTrue)
		})
	})
}
