package dispatch

import "fmt"

// CommandType enumerates user intents understood by the player engine.
type CommandType int

const (
	TogglePlay CommandType = iota
	TogglePause
	ToggleLoop
	ToggleStereoModeSwap
	ToggleFullscreen
	Center
	Seek
	SetPos
	AdjustContrast
	SetContrast
	AdjustBrightness
	SetBrightness
	AdjustHue
	SetHue
	AdjustSaturation
	SetSaturation
	AdjustParallax
	SetParallax
	AdjustGhostbust
	SetGhostbust
	AdjustZoom
	SetZoom
	SetCrosstalkR
	SetCrosstalkG
	SetCrosstalkB
	SetCropAspectRatio
	SetSubtitleParallax
	SetAudioDelay
	SetAudioVolume
	ToggleAudioMute
	SetAudioDevice
	SetVideoStream
	SetAudioStream
	SetSubtitleStream
	SetSubtitleEncoding
	SetSubtitleFont
	SetSubtitleSize
	SetSubtitleScale
	SetSubtitleColor
	SetFullscreenScreen
	SetFullscreenInhibitScreensaver
)

var commandNames = map[CommandType]string{
	TogglePlay:                      "toggle_play",
	TogglePause:                     "toggle_pause",
	ToggleLoop:                      "toggle_loop",
	ToggleStereoModeSwap:            "toggle_stereo_mode_swap",
	ToggleFullscreen:                "toggle_fullscreen",
	Center:                          "center",
	Seek:                            "seek",
	SetPos:                          "set_pos",
	AdjustContrast:                  "adjust_contrast",
	SetContrast:                     "set_contrast",
	AdjustBrightness:                "adjust_brightness",
	SetBrightness:                   "set_brightness",
	AdjustHue:                       "adjust_hue",
	SetHue:                          "set_hue",
	AdjustSaturation:                "adjust_saturation",
	SetSaturation:                   "set_saturation",
	AdjustParallax:                  "adjust_parallax",
	SetParallax:                     "set_parallax",
	AdjustGhostbust:                 "adjust_ghostbust",
	SetGhostbust:                    "set_ghostbust",
	AdjustZoom:                      "adjust_zoom",
	SetZoom:                         "set_zoom",
	SetCrosstalkR:                   "set_crosstalk_r",
	SetCrosstalkG:                   "set_crosstalk_g",
	SetCrosstalkB:                   "set_crosstalk_b",
	SetCropAspectRatio:              "set_crop_aspect_ratio",
	SetSubtitleParallax:             "set_subtitle_parallax",
	SetAudioDelay:                   "set_audio_delay",
	SetAudioVolume:                  "set_audio_volume",
	ToggleAudioMute:                 "toggle_audio_mute",
	SetAudioDevice:                  "set_audio_device",
	SetVideoStream:                  "set_video_stream",
	SetAudioStream:                  "set_audio_stream",
	SetSubtitleStream:               "set_subtitle_stream",
	SetSubtitleEncoding:             "set_subtitle_encoding",
	SetSubtitleFont:                 "set_subtitle_font",
	SetSubtitleSize:                 "set_subtitle_size",
	SetSubtitleScale:                "set_subtitle_scale",
	SetSubtitleColor:                "set_subtitle_color",
	SetFullscreenScreen:             "set_fullscreen_screen",
	SetFullscreenInhibitScreensaver: "set_fullscreen_inhibit_screensaver",
}

func (t CommandType) String() string {
	if name, ok := commandNames[t]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(t))
}

// Command is an immutable user intent. Param semantics depend on Type:
// Seek carries relative seconds, SetPos an absolute fraction, Adjust* a delta.
type Command struct {
	Type  CommandType
	Param Value
}

// NewCommand returns a command without payload.
func NewCommand(t CommandType) Command {
	return Command{Type: t}
}

// NewNumberCommand returns a command carrying a numeric payload.
func NewNumberCommand(t CommandType, v float64) Command {
	return Command{Type: t, Param: Number(v)}
}

// NewFlagCommand returns a command carrying a boolean payload.
func NewFlagCommand(t CommandType, b bool) Command {
	return Command{Type: t, Param: Flag(b)}
}

// NewTextCommand returns a command carrying a string payload.
func NewTextCommand(t CommandType, s string) Command {
	return Command{Type: t, Param: Text(s)}
}

func (c Command) String() string {
	if c.Param.Kind == KindNone {
		return c.Type.String()
	}
	return fmt.Sprintf("%s(%s)", c.Type, c.Param)
}
