// Package stereo names the input frame layouts and output presentation modes
// of stereoscopic video and converts them to and from their persisted form.
package stereo

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Layout describes how the left and right views are packed in the input.
type Layout int

const (
	Mono Layout = iota
	Separate
	TopBottom
	TopBottomHalf
	LeftRight
	LeftRightHalf
	EvenOddRows
)

// Mode describes how the left and right views are presented on output.
type Mode int

const (
	MonoLeft Mode = iota
	MonoRight
	ModeTopBottom
	ModeTopBottomHalf
	ModeLeftRight
	ModeLeftRightHalf
	ModeEvenOddRows
	EvenOddColumns
	Checkerboard
	RedCyanDubois
	RedCyanMonochrome
	RedCyanFullColor
	RedCyanHalfColor
	Stereo
)

var layoutNames = []string{
	Mono:          "mono",
	Separate:      "separate",
	TopBottom:     "top-bottom",
	TopBottomHalf: "top-bottom-half",
	LeftRight:     "left-right",
	LeftRightHalf: "left-right-half",
	EvenOddRows:   "even-odd-rows",
}

var modeNames = []string{
	MonoLeft:          "mono-left",
	MonoRight:         "mono-right",
	ModeTopBottom:     "top-bottom",
	ModeTopBottomHalf: "top-bottom-half",
	ModeLeftRight:     "left-right",
	ModeLeftRightHalf: "left-right-half",
	ModeEvenOddRows:   "even-odd-rows",
	EvenOddColumns:    "even-odd-columns",
	Checkerboard:      "checkerboard",
	RedCyanDubois:     "red-cyan-dubois",
	RedCyanMonochrome: "red-cyan-monochrome",
	RedCyanFullColor:  "red-cyan-full-color",
	RedCyanHalfColor:  "red-cyan-half-color",
	Stereo:            "stereo",
}

// accepted spellings on top of the canonical names
var layoutAliases = map[string]Layout{
	"2d":         Mono,
	"tb":         TopBottom,
	"ab":         TopBottom,
	"tb-half":    TopBottomHalf,
	"htb":        TopBottomHalf,
	"lr":         LeftRight,
	"sbs":        LeftRight,
	"lr-half":    LeftRightHalf,
	"hsbs":       LeftRightHalf,
	"interlaced": EvenOddRows,
}

var modeAliases = map[string]Mode{
	"left":      MonoLeft,
	"right":     MonoRight,
	"anaglyph":  RedCyanDubois,
	"dubois":    RedCyanDubois,
	"opengl":    Stereo,
	"quadbuf":   Stereo,
	"alternate": Stereo,
}

const swapSuffix = "swap"

// Layouts lists every layout in presentation order.
func Layouts() []Layout {
	return lo.Map(layoutNames, func(_ string, i int) Layout { return Layout(i) })
}

// Modes lists every mode in presentation order.
func Modes() []Mode {
	return lo.Map(modeNames, func(_ string, i int) Mode { return Mode(i) })
}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("layout(%d)", int(l))
	}
	return layoutNames[l]
}

// IsMono reports whether the layout carries a single view.
func (l Layout) IsMono() bool {
	return l == Mono
}

// CanSwap reports whether swapping eyes is meaningful for the layout.
func (l Layout) CanSwap() bool {
	return l != Mono
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsMono reports whether the mode presents a single eye.
func (m Mode) IsMono() bool {
	return m == MonoLeft || m == MonoRight
}

// IsAnaglyph reports whether the mode is a red/cyan color mix, where
// ghostbusting has no effect.
func (m Mode) IsAnaglyph() bool {
	return m >= RedCyanDubois && m <= RedCyanHalfColor
}

// ParseLayout resolves a canonical name or alias.
func ParseLayout(name string) (Layout, error) {
	name = normalize(name)
	if i := lo.IndexOf(layoutNames, name); i >= 0 {
		return Layout(i), nil
	}
	if l, ok := layoutAliases[name]; ok {
		return l, nil
	}
	return Mono, fmt.Errorf("unknown stereo layout %q", name)
}

// ParseMode resolves a canonical name or alias.
func ParseMode(name string) (Mode, error) {
	name = normalize(name)
	if i := lo.IndexOf(modeNames, name); i >= 0 {
		return Mode(i), nil
	}
	if m, ok := modeAliases[name]; ok {
		return m, nil
	}
	return MonoLeft, fmt.Errorf("unknown stereo mode %q", name)
}

// EncodeLayout renders the persisted "layout[,swap]" form.
func EncodeLayout(l Layout, swap bool) string {
	return encode(l.String(), swap)
}

// DecodeLayout parses the persisted form written by EncodeLayout.
func DecodeLayout(s string) (Layout, bool, error) {
	name, swap, err := decode(s)
	if err != nil {
		return Mono, false, err
	}
	l, err := ParseLayout(name)
	if err != nil {
		return Mono, false, err
	}
	if swap && !l.CanSwap() {
		return Mono, false, fmt.Errorf("stereo layout %s cannot be swapped", l)
	}
	return l, swap, nil
}

// EncodeMode renders the persisted "mode[,swap]" form.
func EncodeMode(m Mode, swap bool) string {
	return encode(m.String(), swap)
}

// DecodeMode parses the persisted form written by EncodeMode.
func DecodeMode(s string) (Mode, bool, error) {
	name, swap, err := decode(s)
	if err != nil {
		return MonoLeft, false, err
	}
	m, err := ParseMode(name)
	if err != nil {
		return MonoLeft, false, err
	}
	return m, swap, nil
}

func encode(name string, swap bool) string {
	if swap {
		return name + "," + swapSuffix
	}
	return name
}

func decode(s string) (name string, swap bool, err error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		if normalize(parts[1]) != swapSuffix {
			return "", false, fmt.Errorf("malformed stereo value %q", s)
		}
		name, swap = parts[0], true
	default:
		return "", false, fmt.Errorf("malformed stereo value %q", s)
	}

	if normalize(name) == "" {
		return "", false, fmt.Errorf("empty stereo value")
	}
	return name, swap, nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}
