package player

import "github.com/stereoplay/stereoplay/dispatch"

// Observed property and event names reported by backends.
const (
	EventTimePos  = "time-pos"
	EventDuration = "duration"
	EventPause    = "pause"
	EventEOF      = "eof-reached"
	EventExit     = "exit"
)

// Event is an asynchronous report from a backend.
type Event struct {
	Name  string
	Value dispatch.Value
}

// Backend drives the process that decodes and presents media.
type Backend interface {
	// Start launches playback of the resolved setup, paused.
	Start(InitData) (Media, error)

	// Set changes a named playback property.
	Set(property string, value any) error

	// Command runs a named playback command.
	Command(args ...any) error

	// Events delivers observed changes. It is closed when the backend exits.
	Events() <-chan Event

	// Close stops the backend and releases its resources.
	Close() error
}
