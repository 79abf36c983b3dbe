package cmd

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/config"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/stereo"
)

func parsed(flags ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addSessionFlags(cmd)
	So(cmd.ParseFlags(flags), ShouldBeNil)
	return cmd
}

func TestInitData(t *testing.T) {
	Convey("Given no flags", t, func() {
		init, err := initData(parsed(), []string{"/videos/a.mkv"})
		So(err, ShouldBeNil)

		Convey("everything is left to detection and preferences", func() {
			So(init.Sources, ShouldResemble, []string{"/videos/a.mkv"})
			So(init.StereoLayoutOverride, ShouldBeFalse)
			So(init.StereoModeOverride, ShouldBeFalse)
			So(math.IsNaN(init.Params.Parallax), ShouldBeTrue)
			So(math.IsNaN(init.Params.CrosstalkR), ShouldBeTrue)
			So(init.Params.Fullscreen.IsAbsent(), ShouldBeTrue)
			So(init.SubtitleStream, ShouldEqual, -1)
			So(init.Device.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given layout and mode flags", t, func() {
		init, err := initData(parsed("--input", "sbs,swap", "--output", "anaglyph", "--swap"), nil)
		So(err, ShouldBeNil)

		So(init.StereoLayout, ShouldEqual, stereo.LeftRight)
		So(init.StereoLayoutSwap, ShouldBeTrue)
		So(init.StereoLayoutOverride, ShouldBeTrue)
		So(init.StereoMode, ShouldEqual, stereo.RedCyanDubois)
		So(init.StereoModeSwap, ShouldBeTrue)
		So(init.StereoModeOverride, ShouldBeTrue)
	})

	Convey("Given parameter flags", t, func() {
		init, err := initData(parsed(
			"--parallax", "-0.25",
			"--ghostbust", "0.5",
			"--crosstalk", "0.1, 0.2,0.3",
			"--fullscreen",
			"--audio-stream", "1",
		), nil)
		So(err, ShouldBeNil)

		So(init.Params.Parallax, ShouldEqual, -0.25)
		So(init.Params.Ghostbust, ShouldEqual, 0.5)
		So(init.Params.CrosstalkR, ShouldEqual, 0.1)
		So(init.Params.CrosstalkG, ShouldEqual, 0.2)
		So(init.Params.CrosstalkB, ShouldEqual, 0.3)
		So(init.Params.Fullscreen.OrElse(false), ShouldBeTrue)
		So(init.AudioStream, ShouldEqual, 1)
		So(math.IsNaN(init.Params.Contrast), ShouldBeTrue)
	})

	Convey("Out of range values are refused", t, func() {
		_, err := initData(parsed("--parallax", "2"), nil)
		So(err, ShouldNotBeNil)

		_, err = initData(parsed("--zoom", "-0.5"), nil)
		So(err, ShouldNotBeNil)

		_, err = initData(parsed("--input", "diagonal"), nil)
		So(err, ShouldNotBeNil)

		_, err = initData(parsed(), []string{"a", "b", "c"})
		So(err, ShouldNotBeNil)
	})

	Convey("Crosstalk outside [0,1] is passed on to be replaced later", t, func() {
		init, err := initData(parsed("--crosstalk", "-1,-1,-1"), nil)
		So(err, ShouldBeNil)
		So(init.Params.CrosstalkR, ShouldEqual, -1)
	})

	Convey("A device request is built from its flags", t, func() {
		init, err := initData(parsed("--device", "x11=:1.0", "--device-size", "1920x1080", "--device-rate", "30000/1001"), nil)
		So(err, ShouldBeNil)

		req, ok := init.Device.Get()
		So(ok, ShouldBeTrue)
		So(req.Kind, ShouldEqual, player.DeviceX11)
		So(req.Device, ShouldEqual, ":1.0")
		So(req.Width, ShouldEqual, 1920)
		So(req.Height, ShouldEqual, 1080)
		So(req.FrameRateNum, ShouldEqual, 30000)
		So(req.FrameRateDen, ShouldEqual, 1001)

		Convey("but not next to sources", func() {
			_, err := initData(parsed("--device", "default"), []string{"/videos/a.mkv"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseCrosstalk(t *testing.T) {
	Convey("Crosstalk needs exactly three numbers", t, func() {
		_, err := parseCrosstalk("0.1,0.2")
		So(err, ShouldNotBeNil)

		_, err = parseCrosstalk("0.1,x,0.2")
		So(err, ShouldNotBeNil)

		levels, err := parseCrosstalk("0,0.5,1")
		So(err, ShouldBeNil)
		So(levels, ShouldResemble, [3]float64{0, 0.5, 1})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Values take the type of the default", t, func() {
		v, err := parseValue(config.Field{Key: "a", Value: 0}, []string{"42"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 42)

		v, err = parseValue(config.Field{Key: "b", Value: false}, []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(config.Field{Key: "c", Value: ""}, []string{"mpv", "--no-config"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "mpv --no-config")

		v, err = parseValue(config.Field{Key: "d", Value: []string{}}, []string{"--vo=gpu", "--hwdec=auto"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"--vo=gpu", "--hwdec=auto"})

		_, err = parseValue(config.Field{Key: "e", Value: 0}, []string{"many"})
		So(err, ShouldNotBeNil)
	})
}

func TestInstallHint(t *testing.T) {
	Convey("Install hints exist for the desktop platforms", t, func() {
		So(installHint(constant.Linux), ShouldContainSubstring, "mpv")
		So(installHint(constant.Darwin), ShouldContainSubstring, "brew")
		So(installHint("plan9"), ShouldBeEmpty)
	})
}
