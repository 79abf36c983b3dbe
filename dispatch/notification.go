package dispatch

import "fmt"

// NotificationType names the state dimension a notification describes.
type NotificationType int

const (
	Play NotificationType = iota
	Pause
	Loop
	Pos
	StereoModeSwap
	Fullscreen
	Contrast
	Brightness
	Hue
	Saturation
	Parallax
	Ghostbust
	Zoom
	CrosstalkR
	CrosstalkG
	CrosstalkB
	CropAspectRatio
	SubtitleParallax
	AudioDelay
	AudioVolume
	AudioMute
	AudioDevice
	VideoStream
	AudioStream
	SubtitleStream
	SubtitleEncoding
	SubtitleFont
	SubtitleSize
	SubtitleScale
	SubtitleColor
	FullscreenScreen
	FullscreenInhibitScreensaver
)

var notificationNames = map[NotificationType]string{
	Play:                         "play",
	Pause:                        "pause",
	Loop:                         "loop",
	Pos:                          "pos",
	StereoModeSwap:               "stereo_mode_swap",
	Fullscreen:                   "fullscreen",
	Contrast:                     "contrast",
	Brightness:                   "brightness",
	Hue:                          "hue",
	Saturation:                   "saturation",
	Parallax:                     "parallax",
	Ghostbust:                    "ghostbust",
	Zoom:                         "zoom",
	CrosstalkR:                   "crosstalk_r",
	CrosstalkG:                   "crosstalk_g",
	CrosstalkB:                   "crosstalk_b",
	CropAspectRatio:              "crop_aspect_ratio",
	SubtitleParallax:             "subtitle_parallax",
	AudioDelay:                   "audio_delay",
	AudioVolume:                  "audio_volume",
	AudioMute:                    "audio_mute",
	AudioDevice:                  "audio_device",
	VideoStream:                  "video_stream",
	AudioStream:                  "audio_stream",
	SubtitleStream:               "subtitle_stream",
	SubtitleEncoding:             "subtitle_encoding",
	SubtitleFont:                 "subtitle_font",
	SubtitleSize:                 "subtitle_size",
	SubtitleScale:                "subtitle_scale",
	SubtitleColor:                "subtitle_color",
	FullscreenScreen:             "fullscreen_screen",
	FullscreenInhibitScreensaver: "fullscreen_inhibit_screensaver",
}

func (t NotificationType) String() string {
	if name, ok := notificationNames[t]; ok {
		return name
	}
	return fmt.Sprintf("notification(%d)", int(t))
}

// Notification describes a completed state transition. Previous holds the
// value immediately before the transition, Current the value after it.
type Notification struct {
	Type     NotificationType
	Previous Value
	Current  Value
}

// NewFlagNotification describes a boolean transition.
func NewFlagNotification(t NotificationType, previous, current bool) Notification {
	return Notification{Type: t, Previous: Flag(previous), Current: Flag(current)}
}

// NewNumberNotification describes a numeric transition.
func NewNumberNotification(t NotificationType, previous, current float64) Notification {
	return Notification{Type: t, Previous: Number(previous), Current: Number(current)}
}

// NewTextNotification describes a string transition.
func NewTextNotification(t NotificationType, previous, current string) Notification {
	return Notification{Type: t, Previous: Text(previous), Current: Text(current)}
}

// Changed reports whether the transition altered the value.
func (n Notification) Changed() bool {
	return !n.Previous.Equal(n.Current)
}

func (n Notification) String() string {
	return fmt.Sprintf("%s: %s -> %s", n.Type, n.Previous, n.Current)
}
