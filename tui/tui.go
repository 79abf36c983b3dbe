package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/window"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Window must already be running.
	Window *window.Window
	// Errors are shown in the error view as they arrive.
	Errors <-chan error
	// Refresh is how often the view polls the window.
	Refresh time.Duration
	// Recent starts on the recently opened files.
	Recent bool
}

// Reporter queues window errors for the terminal user interface.
type Reporter chan error

func NewReporter() Reporter {
	return make(Reporter, 16)
}

func (r Reporter) Report(err error) {
	log.Error(err)
	select {
	case r <- err:
	default:
		log.Warn("error queue is full, dropping error")
	}
}

// Run blocks until the user quits or the window stops.
func Run(options *Options) error {
	bubble := newBubble(options)

	if options.Recent {
		if err := bubble.loadRecent(); err != nil {
			return err
		}
		bubble.newState(recentState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
