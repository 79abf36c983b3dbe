package player

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/mo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/parameters"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/util"
)

// numeric binds an adjustable parameter to its notification, valid range
// and playback property. An empty property keeps the value as state only.
type numeric struct {
	note     dispatch.NotificationType
	field    func(*parameters.Parameters) *float64
	min, max float64
	property string
	value    func(float64) (any, bool)
}

type flag struct {
	field    func(*parameters.Parameters) *mo.Option[bool]
	property string
	value    func(bool) any
}

type text struct {
	note     dispatch.NotificationType
	field    func(*parameters.Parameters) *string
	property string
}

// percent maps [-1,1] onto the integer percentages of the video equalizer.
func percent(v float64) (any, bool) { return int(math.Round(v * 100)), true }

func plain(v float64) (any, bool) { return v, true }

// positive skips values that select the stream default.
func positive(v float64) (any, bool) { return v, v > 0 }

func yesNo(b bool) any {
	if b {
		return "yes"
	}
	return "no"
}

var numerics = map[dispatch.NotificationType]numeric{
	dispatch.Contrast:         {dispatch.Contrast, func(p *parameters.Parameters) *float64 { return &p.Contrast }, -1, 1, "contrast", percent},
	dispatch.Brightness:       {dispatch.Brightness, func(p *parameters.Parameters) *float64 { return &p.Brightness }, -1, 1, "brightness", percent},
	dispatch.Hue:              {dispatch.Hue, func(p *parameters.Parameters) *float64 { return &p.Hue }, -1, 1, "hue", percent},
	dispatch.Saturation:       {dispatch.Saturation, func(p *parameters.Parameters) *float64 { return &p.Saturation }, -1, 1, "saturation", percent},
	dispatch.Parallax:         {dispatch.Parallax, func(p *parameters.Parameters) *float64 { return &p.Parallax }, -1, 1, "", nil},
	dispatch.Ghostbust:        {dispatch.Ghostbust, func(p *parameters.Parameters) *float64 { return &p.Ghostbust }, 0, 1, "", nil},
	dispatch.CrosstalkR:       {dispatch.CrosstalkR, func(p *parameters.Parameters) *float64 { return &p.CrosstalkR }, 0, 1, "", nil},
	dispatch.CrosstalkG:       {dispatch.CrosstalkG, func(p *parameters.Parameters) *float64 { return &p.CrosstalkG }, 0, 1, "", nil},
	dispatch.CrosstalkB:       {dispatch.CrosstalkB, func(p *parameters.Parameters) *float64 { return &p.CrosstalkB }, 0, 1, "", nil},
	dispatch.Zoom:             {dispatch.Zoom, func(p *parameters.Parameters) *float64 { return &p.Zoom }, 0, 1, "panscan", plain},
	dispatch.CropAspectRatio:  {dispatch.CropAspectRatio, func(p *parameters.Parameters) *float64 { return &p.CropAspectRatio }, 0, 4, "", nil},
	dispatch.SubtitleParallax: {dispatch.SubtitleParallax, func(p *parameters.Parameters) *float64 { return &p.SubtitleParallax }, -1, 1, "", nil},
	dispatch.AudioDelay:       {dispatch.AudioDelay, func(p *parameters.Parameters) *float64 { return &p.AudioDelay }, -10, 10, "audio-delay", plain},
	dispatch.AudioVolume:      {dispatch.AudioVolume, func(p *parameters.Parameters) *float64 { return &p.AudioVolume }, 0, 1, "volume", percent},
	dispatch.SubtitleSize:     {dispatch.SubtitleSize, func(p *parameters.Parameters) *float64 { return &p.SubtitleSize }, -1, 999, "sub-font-size", positive},
	dispatch.SubtitleScale:    {dispatch.SubtitleScale, func(p *parameters.Parameters) *float64 { return &p.SubtitleScale }, -1, 100, "sub-scale", positive},
	dispatch.FullscreenScreen: {dispatch.FullscreenScreen, func(p *parameters.Parameters) *float64 { return &p.FullscreenScreen }, -1, 16, "fs-screen", screen},
}

// screen maps -1 to the screen the window is on.
func screen(v float64) (any, bool) {
	if v < 0 {
		return "current", true
	}
	return int(v), true
}

type numericCommand struct {
	note     dispatch.NotificationType
	relative bool
}

var numericCommands = map[dispatch.CommandType]numericCommand{
	dispatch.AdjustContrast:      {dispatch.Contrast, true},
	dispatch.SetContrast:         {dispatch.Contrast, false},
	dispatch.AdjustBrightness:    {dispatch.Brightness, true},
	dispatch.SetBrightness:       {dispatch.Brightness, false},
	dispatch.AdjustHue:           {dispatch.Hue, true},
	dispatch.SetHue:              {dispatch.Hue, false},
	dispatch.AdjustSaturation:    {dispatch.Saturation, true},
	dispatch.SetSaturation:       {dispatch.Saturation, false},
	dispatch.AdjustParallax:      {dispatch.Parallax, true},
	dispatch.SetParallax:         {dispatch.Parallax, false},
	dispatch.AdjustGhostbust:     {dispatch.Ghostbust, true},
	dispatch.SetGhostbust:        {dispatch.Ghostbust, false},
	dispatch.AdjustZoom:          {dispatch.Zoom, true},
	dispatch.SetZoom:             {dispatch.Zoom, false},
	dispatch.SetCrosstalkR:       {dispatch.CrosstalkR, false},
	dispatch.SetCrosstalkG:       {dispatch.CrosstalkG, false},
	dispatch.SetCrosstalkB:       {dispatch.CrosstalkB, false},
	dispatch.SetCropAspectRatio:  {dispatch.CropAspectRatio, false},
	dispatch.SetSubtitleParallax: {dispatch.SubtitleParallax, false},
	dispatch.SetAudioDelay:       {dispatch.AudioDelay, false},
	dispatch.SetAudioVolume:      {dispatch.AudioVolume, false},
	dispatch.SetSubtitleSize:     {dispatch.SubtitleSize, false},
	dispatch.SetSubtitleScale:    {dispatch.SubtitleScale, false},
	dispatch.SetFullscreenScreen: {dispatch.FullscreenScreen, false},
}

var flags = map[dispatch.NotificationType]flag{
	dispatch.AudioMute: {func(p *parameters.Parameters) *mo.Option[bool] { return &p.AudioMute }, "mute", yesNo},
	dispatch.Loop: {func(p *parameters.Parameters) *mo.Option[bool] { return &p.Loop }, "loop-file", func(b bool) any {
		if b {
			return "inf"
		}
		return "no"
	}},
	dispatch.Fullscreen:                   {func(p *parameters.Parameters) *mo.Option[bool] { return &p.Fullscreen }, "fullscreen", yesNo},
	dispatch.FullscreenInhibitScreensaver: {func(p *parameters.Parameters) *mo.Option[bool] { return &p.FullscreenInhibitScreensaver }, "stop-screensaver", yesNo},
}

var texts = map[dispatch.CommandType]text{
	dispatch.SetAudioDevice:      {dispatch.AudioDevice, func(p *parameters.Parameters) *string { return &p.AudioDevice }, "audio-device"},
	dispatch.SetSubtitleEncoding: {dispatch.SubtitleEncoding, func(p *parameters.Parameters) *string { return &p.SubtitleEncoding }, "sub-codepage"},
	dispatch.SetSubtitleFont:     {dispatch.SubtitleFont, func(p *parameters.Parameters) *string { return &p.SubtitleFont }, "sub-font"},
	dispatch.SetSubtitleColor:    {dispatch.SubtitleColor, func(p *parameters.Parameters) *string { return &p.SubtitleColor }, "sub-color"},
}

// clampParameters forces every numeric parameter into its valid range.
func clampParameters(p *parameters.Parameters) {
	for _, prop := range numerics {
		field := prop.field(p)
		if parameters.IsSet(*field) {
			*field = util.Clamp(*field, prop.min, prop.max)
		}
	}
}

// filterChain builds the mpv video filter converting the input layout into
// the output mode, followed by the crop to aspect ratio when set. The crop
// applies to the presented frame.
func filterChain(layout stereo.Layout, layoutSwap bool, mode stereo.Mode, modeSwap bool, crop float64) string {
	var filters []string
	if f := stereo.Filter(layout, layoutSwap, mode, modeSwap); f != "" {
		filters = append(filters, f)
	}
	if crop > 0 {
		filters = append(filters, fmt.Sprintf("crop=w='min(iw,ih*%[1]g)':h='min(ih,iw/%[1]g)'", crop))
	}
	if len(filters) == 0 {
		return ""
	}
	return "lavfi=[" + strings.Join(filters, ",") + "]"
}

// properties renders the initial parameter set as mpv options.
func properties(p parameters.Parameters) []string {
	var opts []string
	for _, note := range []dispatch.NotificationType{
		dispatch.Contrast, dispatch.Brightness, dispatch.Hue, dispatch.Saturation,
		dispatch.Zoom, dispatch.AudioDelay, dispatch.AudioVolume,
		dispatch.SubtitleSize, dispatch.SubtitleScale, dispatch.FullscreenScreen,
	} {
		prop := numerics[note]
		v := *prop.field(&p)
		if !parameters.IsSet(v) {
			continue
		}
		if value, ok := prop.value(v); ok {
			opts = append(opts, fmt.Sprintf("--%s=%v", prop.property, value))
		}
	}

	for _, note := range []dispatch.NotificationType{
		dispatch.AudioMute, dispatch.Loop, dispatch.Fullscreen, dispatch.FullscreenInhibitScreensaver,
	} {
		prop := flags[note]
		if v, ok := prop.field(&p).Get(); ok {
			opts = append(opts, fmt.Sprintf("--%s=%v", prop.property, prop.value(v)))
		}
	}

	for _, cmd := range []dispatch.CommandType{
		dispatch.SetAudioDevice, dispatch.SetSubtitleEncoding, dispatch.SetSubtitleFont, dispatch.SetSubtitleColor,
	} {
		prop := texts[cmd]
		if v := *prop.field(&p); v != "" {
			opts = append(opts, fmt.Sprintf("--%s=%s", prop.property, v))
		}
	}
	return opts
}
