package panel

import (
	"math"

	"github.com/samber/mo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/parameters"
	"github.com/stereoplay/stereoplay/player"
)

const maxStream = math.MaxInt16

func number(name, label string, note dispatch.NotificationType, cmd dispatch.CommandType, low, high, scale float64, read func(player.InitData) float64) Field {
	return Field{
		Name: name, Label: label, Kind: dispatch.KindNumber, Note: note, Cmd: cmd,
		Min: low, Max: high, Scale: scale,
		read: func(init player.InitData) dispatch.Value {
			v := read(init)
			if !parameters.IsSet(v) {
				return dispatch.None()
			}
			return dispatch.Number(v)
		},
	}
}

func flag(name, label string, note dispatch.NotificationType, cmd dispatch.CommandType, toggle bool, read func(parameters.Parameters) mo.Option[bool]) Field {
	return Field{
		Name: name, Label: label, Kind: dispatch.KindFlag, Note: note, Cmd: cmd, Toggle: toggle,
		read: func(init player.InitData) dispatch.Value {
			if b, ok := read(init.Params).Get(); ok {
				return dispatch.Flag(b)
			}
			return dispatch.None()
		},
	}
}

func text(name, label string, note dispatch.NotificationType, cmd dispatch.CommandType, read func(parameters.Parameters) string) Field {
	return Field{
		Name: name, Label: label, Kind: dispatch.KindText, Note: note, Cmd: cmd,
		read: func(init player.InitData) dispatch.Value {
			return dispatch.Text(read(init.Params))
		},
	}
}

func stream(name, label string, note dispatch.NotificationType, cmd dispatch.CommandType, low float64, read func(player.InitData) int) Field {
	return number(name, label, note, cmd, low, maxStream, 0, func(init player.InitData) float64 {
		return float64(read(init))
	})
}

// ColorDialog adjusts the video equalizer.
func ColorDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "color", "Display color adjustments",
		number("contrast", "Contrast", dispatch.Contrast, dispatch.SetContrast, -1, 1, 100,
			func(init player.InitData) float64 { return init.Params.Contrast }),
		number("brightness", "Brightness", dispatch.Brightness, dispatch.SetBrightness, -1, 1, 100,
			func(init player.InitData) float64 { return init.Params.Brightness }),
		number("hue", "Hue", dispatch.Hue, dispatch.SetHue, -1, 1, 100,
			func(init player.InitData) float64 { return init.Params.Hue }),
		number("saturation", "Saturation", dispatch.Saturation, dispatch.SetSaturation, -1, 1, 100,
			func(init player.InitData) float64 { return init.Params.Saturation }),
	)
}

// CrosstalkDialog sets the crosstalk levels of the display, in percent.
func CrosstalkDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "crosstalk", "Display crosstalk calibration",
		number("red", "Red", dispatch.CrosstalkR, dispatch.SetCrosstalkR, 0, 1, 100,
			func(init player.InitData) float64 { return init.Params.CrosstalkR }),
		number("green", "Green", dispatch.CrosstalkG, dispatch.SetCrosstalkG, 0, 1, 100,
			func(init player.InitData) float64 { return init.Params.CrosstalkG }),
		number("blue", "Blue", dispatch.CrosstalkB, dispatch.SetCrosstalkB, 0, 1, 100,
			func(init player.InitData) float64 { return init.Params.CrosstalkB }),
	)
}

// ZoomDialog adjusts how wide videos fill the screen.
func ZoomDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "zoom", "Zoom for wide videos",
		number("zoom", "Zoom", dispatch.Zoom, dispatch.SetZoom, 0, 1, 100,
			func(init player.InitData) float64 { return init.Params.Zoom }),
	)
}

// AudioDialog selects the audio output and adjusts playback.
func AudioDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "audio", "Audio settings",
		text("device", "Device", dispatch.AudioDevice, dispatch.SetAudioDevice,
			func(p parameters.Parameters) string { return p.AudioDevice }),
		number("delay", "Delay (s)", dispatch.AudioDelay, dispatch.SetAudioDelay, -10, 10, 0,
			func(init player.InitData) float64 { return init.Params.AudioDelay }),
		number("volume", "Volume", dispatch.AudioVolume, dispatch.SetAudioVolume, 0, 1, 100,
			func(init player.InitData) float64 { return init.Params.AudioVolume }),
		flag("mute", "Mute", dispatch.AudioMute, dispatch.ToggleAudioMute, true,
			func(p parameters.Parameters) mo.Option[bool] { return p.AudioMute }),
	)
}

// SubtitleDialog selects the subtitle stream and its rendering.
func SubtitleDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "subtitle", "Subtitle settings",
		stream("stream", "Stream", dispatch.SubtitleStream, dispatch.SetSubtitleStream, -1,
			func(init player.InitData) int { return init.SubtitleStream }),
		text("encoding", "Encoding", dispatch.SubtitleEncoding, dispatch.SetSubtitleEncoding,
			func(p parameters.Parameters) string { return p.SubtitleEncoding }),
		text("font", "Font", dispatch.SubtitleFont, dispatch.SetSubtitleFont,
			func(p parameters.Parameters) string { return p.SubtitleFont }),
		number("size", "Size", dispatch.SubtitleSize, dispatch.SetSubtitleSize, -1, 999, 0,
			func(init player.InitData) float64 { return init.Params.SubtitleSize }),
		number("scale", "Scale", dispatch.SubtitleScale, dispatch.SetSubtitleScale, -1, 100, 0,
			func(init player.InitData) float64 { return init.Params.SubtitleScale }),
		text("color", "Color", dispatch.SubtitleColor, dispatch.SetSubtitleColor,
			func(p parameters.Parameters) string { return p.SubtitleColor }),
		number("parallax", "Parallax", dispatch.SubtitleParallax, dispatch.SetSubtitleParallax, -1, 1, 0,
			func(init player.InitData) float64 { return init.Params.SubtitleParallax }),
	)
}

// VideoDialog selects the video stream and crops the picture.
func VideoDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "video", "Video settings",
		stream("stream", "Stream", dispatch.VideoStream, dispatch.SetVideoStream, 0,
			func(init player.InitData) int { return init.VideoStream }),
		number("crop", "Crop to aspect ratio", dispatch.CropAspectRatio, dispatch.SetCropAspectRatio, 0, 4, 0,
			func(init player.InitData) float64 { return init.Params.CropAspectRatio }),
		flag("loop", "Loop", dispatch.Loop, dispatch.ToggleLoop, true,
			func(p parameters.Parameters) mo.Option[bool] { return p.Loop }),
	)
}

// FullscreenDialog configures fullscreen presentation.
func FullscreenDialog(bus *dispatch.Bus) *Dialog {
	return NewDialog(bus, "fullscreen", "Fullscreen settings",
		number("screen", "Screen (-1 for current)", dispatch.FullscreenScreen, dispatch.SetFullscreenScreen, -1, 16, 0,
			func(init player.InitData) float64 { return init.Params.FullscreenScreen }),
		flag("inhibit-screensaver", "Inhibit screensaver", dispatch.FullscreenInhibitScreensaver, dispatch.SetFullscreenInhibitScreensaver, false,
			func(p parameters.Parameters) mo.Option[bool] { return p.FullscreenInhibitScreensaver }),
	)
}
