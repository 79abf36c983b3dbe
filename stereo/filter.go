package stereo

import "fmt"

// ffmpeg stereo3d input format per layout, left eye first
var inputFormats = map[Layout][2]string{
	Separate:      {"sbsl", "sbsr"},
	TopBottom:     {"tbl", "tbr"},
	TopBottomHalf: {"tb2l", "tb2r"},
	LeftRight:     {"sbsl", "sbsr"},
	LeftRightHalf: {"sbs2l", "sbs2r"},
	EvenOddRows:   {"irl", "irr"},
}

// ffmpeg stereo3d output format per mode
var outputFormats = map[Mode]string{
	MonoLeft:          "ml",
	MonoRight:         "mr",
	ModeTopBottom:     "abl",
	ModeTopBottomHalf: "ab2l",
	ModeLeftRight:     "sbsl",
	ModeLeftRightHalf: "sbs2l",
	ModeEvenOddRows:   "irl",
	EvenOddColumns:    "icl",
	Checkerboard:      "chl",
	RedCyanDubois:     "arcd",
	RedCyanMonochrome: "arcg",
	RedCyanFullColor:  "arcc",
	RedCyanHalfColor:  "arch",
	Stereo:            "al",
}

// Filter returns the ffmpeg stereo3d filter converting the input layout
// into the output mode. Swapping either side flips the eye order of the
// input, which is equivalent for every output format. Mono input needs no
// conversion and yields an empty string.
func Filter(layout Layout, layoutSwap bool, mode Mode, modeSwap bool) string {
	in, ok := inputFormats[layout]
	if !ok {
		return ""
	}
	out, ok := outputFormats[mode]
	if !ok {
		return ""
	}

	eye := 0
	if layoutSwap != modeSwap {
		eye = 1
	}
	return fmt.Sprintf("stereo3d=%s:%s", in[eye], out)
}
