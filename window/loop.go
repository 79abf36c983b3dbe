package window

import (
	"context"
	"time"
)

// Run drives the window until ctx is done: posted actions and playback
// steps all execute on the calling goroutine. The window is closed on
// return.
func (w *Window) Run(ctx context.Context) error {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.Close()
		case fn := <-w.actions:
			fn()
		case <-ticker.C:
			w.Tick()
		}
	}
}

// Post schedules fn on the window goroutine. It reports false once the
// window stopped running.
func (w *Window) Post(fn func()) bool {
	select {
	case <-w.done:
		return false
	default:
	}
	select {
	case w.actions <- fn:
		return true
	case <-w.done:
		return false
	}
}

// Do runs fn on the window goroutine and waits for it.
func (w *Window) Do(fn func()) bool {
	finished := make(chan struct{})
	if !w.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-w.done:
		return false
	}
}
