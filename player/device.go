package player

import (
	"fmt"
	"strings"
)

// DeviceKind selects a capture backend.
type DeviceKind int

const (
	DeviceDefault DeviceKind = iota
	DeviceFirewire
	DeviceX11
)

var deviceKinds = map[string]DeviceKind{
	"default":  DeviceDefault,
	"firewire": DeviceFirewire,
	"x11":      DeviceX11,
}

// ParseDeviceKind resolves "default", "firewire" or "x11".
func ParseDeviceKind(name string) (DeviceKind, error) {
	if k, ok := deviceKinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return DeviceDefault, fmt.Errorf("unknown device type %q", name)
}

func (k DeviceKind) String() string {
	for name, kind := range deviceKinds {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// DeviceRequest asks for a capture device instead of a file.
// Zero size and frame rate leave the choice to the device.
type DeviceRequest struct {
	Kind          DeviceKind
	Device        string // device node or display, empty for the default
	Width, Height int
	FrameRateNum  int
	FrameRateDen  int
	RequestMJPEG  bool
}

// ParseFrameSize parses "WxH".
func ParseFrameSize(s string) (width, height int, err error) {
	if _, err = fmt.Sscanf(strings.ToLower(s), "%dx%d", &width, &height); err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid frame size %q, expected WxH", s)
	}
	return width, height, nil
}

// ParseFrameRate parses "N/D" or "N".
func ParseFrameRate(s string) (num, den int, err error) {
	if strings.Contains(s, "/") {
		_, err = fmt.Sscanf(s, "%d/%d", &num, &den)
	} else {
		den = 1
		_, err = fmt.Sscanf(s, "%d", &num)
	}
	if err != nil || num <= 0 || den <= 0 {
		return 0, 0, fmt.Errorf("invalid frame rate %q, expected N/D", s)
	}
	return num, den, nil
}

// Source returns the mpv av:// locator of the requested device.
func (r DeviceRequest) Source() string {
	device := r.Device
	switch r.Kind {
	case DeviceFirewire:
		if device == "" {
			device = "auto"
		}
		return "av://iec61883:" + device
	case DeviceX11:
		if device == "" {
			device = ":0.0"
		}
		return "av://x11grab:" + device
	default:
		if device == "" {
			device = "/dev/video0"
		}
		return "av://v4l2:" + device
	}
}

// DemuxerOptions returns the libavdevice options for the request.
func (r DeviceRequest) DemuxerOptions() []string {
	var opts []string
	if r.Width > 0 && r.Height > 0 {
		opts = append(opts, fmt.Sprintf("video_size=%dx%d", r.Width, r.Height))
	}
	if r.FrameRateNum > 0 && r.FrameRateDen > 0 {
		opts = append(opts, fmt.Sprintf("framerate=%d/%d", r.FrameRateNum, r.FrameRateDen))
	}
	if r.RequestMJPEG && r.Kind == DeviceDefault {
		opts = append(opts, "input_format=mjpeg")
	}
	return opts
}
