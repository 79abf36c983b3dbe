package stereo

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCodec(t *testing.T) {
	Convey("Every valid layout pair survives encoding", t, func() {
		for _, l := range Layouts() {
			for _, swap := range []bool{false, true} {
				if swap && !l.CanSwap() {
					continue
				}
				decoded, decodedSwap, err := DecodeLayout(EncodeLayout(l, swap))
				So(err, ShouldBeNil)
				So(decoded, ShouldEqual, l)
				So(decodedSwap, ShouldEqual, swap)
			}
		}
	})

	Convey("Every mode pair survives encoding", t, func() {
		for _, m := range Modes() {
			for _, swap := range []bool{false, true} {
				decoded, decodedSwap, err := DecodeMode(EncodeMode(m, swap))
				So(err, ShouldBeNil)
				So(decoded, ShouldEqual, m)
				So(decodedSwap, ShouldEqual, swap)
			}
		}
	})

	Convey("Encoded form is name with optional swap", t, func() {
		So(EncodeLayout(TopBottom, false), ShouldEqual, "top-bottom")
		So(EncodeLayout(LeftRightHalf, true), ShouldEqual, "left-right-half,swap")
		So(EncodeMode(RedCyanDubois, false), ShouldEqual, "red-cyan-dubois")
	})

	Convey("Malformed values are rejected", t, func() {
		for _, s := range []string{"", ",swap", "top-bottom,flip", "a,b,c", "diagonal", "mono,swap"} {
			_, _, err := DecodeLayout(s)
			So(err, ShouldNotBeNil)
		}
		_, _, err := DecodeMode("anaglyph-green")
		So(err, ShouldNotBeNil)
	})

	Convey("Aliases and loose spelling are accepted", t, func() {
		l, swap, err := DecodeLayout(" SBS , Swap ")
		So(err, ShouldBeNil)
		So(l, ShouldEqual, LeftRight)
		So(swap, ShouldBeTrue)

		m, err := ParseMode("red_cyan_half_color")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, RedCyanHalfColor)
	})
}

func TestDetect(t *testing.T) {
	Convey("Layouts are guessed from file names", t, func() {
		cases := map[string]struct {
			layout Layout
			swap   bool
		}{
			"/videos/holiday.mkv":            {Mono, false},
			"/videos/Avatar.2009.3D.HSBS.mkv": {LeftRightHalf, false},
			"/videos/Avatar.2009.3D.mkv":      {LeftRight, false},
			"clip-tb.mp4":                     {TopBottom, false},
			"clip_bt.mp4":                     {TopBottom, true},
			"movie.half-ou.mkv":               {TopBottomHalf, false},
			"tablet.mp4":                      {Mono, false},
		}
		for name, want := range cases {
			l, swap := Detect(name)
			So(l, ShouldEqual, want.layout)
			So(swap, ShouldEqual, want.swap)
		}
	})

	Convey("Two sources are separate streams", t, func() {
		l, swap := Detect("left.mp4", "right.mp4")
		So(l, ShouldEqual, Separate)
		So(swap, ShouldBeFalse)
	})
}

func TestFilter(t *testing.T) {
	Convey("Mono input needs no filter", t, func() {
		So(Filter(Mono, false, RedCyanDubois, false), ShouldBeEmpty)
	})

	Convey("Filters map layout and mode to stereo3d formats", t, func() {
		So(Filter(TopBottom, false, RedCyanDubois, false), ShouldEqual, "stereo3d=tbl:arcd")
		So(Filter(LeftRightHalf, false, MonoLeft, false), ShouldEqual, "stereo3d=sbs2l:ml")
	})

	Convey("Swaps flip the input eye order and cancel out", t, func() {
		So(Filter(TopBottom, true, ModeLeftRight, false), ShouldEqual, "stereo3d=tbr:sbsl")
		So(Filter(TopBottom, false, ModeLeftRight, true), ShouldEqual, "stereo3d=tbr:sbsl")
		So(Filter(TopBottom, true, ModeLeftRight, true), ShouldEqual, "stereo3d=tbl:sbsl")
	})
}
