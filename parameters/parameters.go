// Package parameters holds the adjustable playback parameter set. Numeric
// fields use NaN and text fields the empty string to mean "not specified",
// so a partially filled set can be layered over persisted and default values.
package parameters

import (
	"math"

	"github.com/samber/mo"
)

// Parameters is the color, geometry, audio and subtitle adjustment set.
type Parameters struct {
	Contrast   float64 // [-1,1]
	Brightness float64 // [-1,1]
	Hue        float64 // [-1,1]
	Saturation float64 // [-1,1]

	Parallax   float64 // [-1,1]
	Ghostbust  float64 // [0,1]
	CrosstalkR float64 // [0,1]
	CrosstalkG float64 // [0,1]
	CrosstalkB float64 // [0,1]

	Zoom             float64 // [0,1]
	CropAspectRatio  float64 // 0 disables cropping
	SubtitleParallax float64 // [-1,1]

	AudioDelay  float64 // seconds
	AudioVolume float64 // [0,1]
	AudioMute   mo.Option[bool]
	AudioDevice string

	SubtitleEncoding string
	SubtitleFont     string
	SubtitleSize     float64 // points, negative keeps the stream default
	SubtitleScale    float64 // negative keeps the stream default
	SubtitleColor    string  // #rrggbb, empty keeps the stream default

	Loop                         mo.Option[bool]
	Fullscreen                   mo.Option[bool]
	FullscreenScreen             float64
	FullscreenInhibitScreensaver mo.Option[bool]
}

// Unset returns a set where nothing is specified.
func Unset() Parameters {
	nan := math.NaN()
	return Parameters{
		Contrast:                     nan,
		Brightness:                   nan,
		Hue:                          nan,
		Saturation:                   nan,
		Parallax:                     nan,
		Ghostbust:                    nan,
		CrosstalkR:                   nan,
		CrosstalkG:                   nan,
		CrosstalkB:                   nan,
		Zoom:                         nan,
		CropAspectRatio:              nan,
		SubtitleParallax:             nan,
		AudioDelay:                   nan,
		AudioVolume:                  nan,
		AudioMute:                    mo.None[bool](),
		SubtitleSize:                 nan,
		SubtitleScale:                nan,
		Loop:                         mo.None[bool](),
		Fullscreen:                   mo.None[bool](),
		FullscreenScreen:             nan,
		FullscreenInhibitScreensaver: mo.None[bool](),
	}
}

// Defaults returns the neutral parameter set.
func Defaults() Parameters {
	return Parameters{
		AudioVolume:                  1,
		AudioMute:                    mo.Some(false),
		SubtitleSize:                 -1,
		SubtitleScale:                -1,
		Loop:                         mo.Some(false),
		Fullscreen:                   mo.Some(false),
		FullscreenInhibitScreensaver: mo.Some(true),
	}
}

// IsSet reports whether a numeric field carries a value.
func IsSet(v float64) bool {
	return !math.IsNaN(v)
}

// SetDefaults fills every unspecified field with its default.
func (p *Parameters) SetDefaults() {
	*p = Defaults().Merge(*p)
}

// Merge returns p with every field specified in over replacing it.
func (p Parameters) Merge(over Parameters) Parameters {
	pick := func(dst *float64, src float64) {
		if IsSet(src) {
			*dst = src
		}
	}
	pickText := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pickFlag := func(dst *mo.Option[bool], src mo.Option[bool]) {
		if src.IsPresent() {
			*dst = src
		}
	}

	pick(&p.Contrast, over.Contrast)
	pick(&p.Brightness, over.Brightness)
	pick(&p.Hue, over.Hue)
	pick(&p.Saturation, over.Saturation)
	pick(&p.Parallax, over.Parallax)
	pick(&p.Ghostbust, over.Ghostbust)
	pick(&p.CrosstalkR, over.CrosstalkR)
	pick(&p.CrosstalkG, over.CrosstalkG)
	pick(&p.CrosstalkB, over.CrosstalkB)
	pick(&p.Zoom, over.Zoom)
	pick(&p.CropAspectRatio, over.CropAspectRatio)
	pick(&p.SubtitleParallax, over.SubtitleParallax)
	pick(&p.AudioDelay, over.AudioDelay)
	pick(&p.AudioVolume, over.AudioVolume)
	pickFlag(&p.AudioMute, over.AudioMute)
	pickText(&p.AudioDevice, over.AudioDevice)
	pickText(&p.SubtitleEncoding, over.SubtitleEncoding)
	pickText(&p.SubtitleFont, over.SubtitleFont)
	pick(&p.SubtitleSize, over.SubtitleSize)
	pick(&p.SubtitleScale, over.SubtitleScale)
	pickText(&p.SubtitleColor, over.SubtitleColor)
	pickFlag(&p.Loop, over.Loop)
	pickFlag(&p.Fullscreen, over.Fullscreen)
	pick(&p.FullscreenScreen, over.FullscreenScreen)
	pickFlag(&p.FullscreenInhibitScreensaver, over.FullscreenInhibitScreensaver)

	return p
}

// CrosstalkValid reports whether all three crosstalk levels lie in [0,1].
func (p Parameters) CrosstalkValid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(p.CrosstalkR) && in(p.CrosstalkG) && in(p.CrosstalkB)
}
