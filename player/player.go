// Package player implements the playback engine: a backend-agnostic state machine
// that applies commands, tracks authoritative session state and emits notifications,
// with the primary backend targeting 'mpv' via its JSON-IPC interface.
package player

import (
	"errors"

	"github.com/samber/mo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/parameters"
	"github.com/stereoplay/stereoplay/stereo"
)

// ErrNoSources is returned when opening without any source or device.
var ErrNoSources = errors.New("no sources to open")

// Engine is the authoritative owner of the playback session.
type Engine interface {
	dispatch.Receiver

	// Open starts a session. Any previous session must be closed first.
	Open(InitData) error

	// Close releases the session. Closing a closed engine is a no-op.
	Close() error

	// ForceStop makes the next Step report the end of playback.
	ForceStop()

	// Step advances playback by one unit of work. False means playback is over.
	Step() (bool, error)

	// InitData returns the session setup with detected values resolved.
	InitData() InitData

	// Parameters returns the live parameter set.
	Parameters() parameters.Parameters

	// Media describes the opened source.
	Media() Media
}

// InitData describes how a session is to be opened.
type InitData struct {
	Sources []string
	Device  mo.Option[DeviceRequest]

	StereoLayout         stereo.Layout
	StereoLayoutSwap     bool
	StereoLayoutOverride bool

	StereoMode         stereo.Mode
	StereoModeSwap     bool
	StereoModeOverride bool

	VideoStream    int
	AudioStream    int
	SubtitleStream int // -1 disables subtitles

	Params parameters.Parameters

	// SessionID tags log lines of one playback session.
	SessionID string
}

// NewInitData returns setup data with nothing specified.
func NewInitData() InitData {
	return InitData{
		SubtitleStream: -1,
		Params:         parameters.Unset(),
	}
}

// Clone returns a copy that shares no slices with d.
func (d InitData) Clone() InitData {
	d.Sources = append([]string(nil), d.Sources...)
	return d
}

// HasInput reports whether there is anything to open.
func (d InitData) HasInput() bool {
	return len(d.Sources) > 0 || d.Device.IsPresent()
}

// Media describes an opened source.
type Media struct {
	Title           string
	Duration        float64 // seconds, 0 when unknown
	VideoStreams    int
	AudioStreams    int
	SubtitleStreams int
}
