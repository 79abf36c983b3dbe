package tui

import "github.com/stereoplay/stereoplay/player"

// fakeBackend stands in for mpv. It is only touched on the window goroutine.
type fakeBackend struct {
	events chan player.Event
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{events: make(chan player.Event, 16)}
}

func (f *fakeBackend) Start(init player.InitData) (player.Media, error) {
	title := "device"
	if len(init.Sources) > 0 {
		title = init.Sources[0]
	}
	return player.Media{Title: title, Duration: 3600, VideoStreams: 1, AudioStreams: 2}, nil
}

func (f *fakeBackend) Set(string, any) error { return nil }

func (f *fakeBackend) Command(...any) error { return nil }

func (f *fakeBackend) Events() <-chan player.Event { return f.events }

func (f *fakeBackend) Close() error { return nil }
