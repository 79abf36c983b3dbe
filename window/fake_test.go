package window

import (
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/player"
)

type fakeBackend struct {
	startErr error
	started  []player.InitData
	sets     map[string]any
	events   chan player.Event
	closed   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		sets:   make(map[string]any),
		events: make(chan player.Event, 64),
	}
}

func (f *fakeBackend) Start(init player.InitData) (player.Media, error) {
	if f.startErr != nil {
		return player.Media{}, f.startErr
	}
	f.started = append(f.started, init)
	title := "device"
	if len(init.Sources) > 0 {
		title = init.Sources[0]
	}
	return player.Media{Title: title, Duration: 100, VideoStreams: 1, AudioStreams: 3}, nil
}

func (f *fakeBackend) Set(property string, value any) error {
	f.sets[property] = value
	return nil
}

func (f *fakeBackend) Command(...any) error { return nil }

func (f *fakeBackend) Events() <-chan player.Event { return f.events }

func (f *fakeBackend) Close() error {
	f.closed++
	return nil
}

func (f *fakeBackend) last() player.InitData {
	return f.started[len(f.started)-1]
}

type fakeRecents struct {
	added     [][]string
	positions map[string]float64
}

func (r *fakeRecents) Add(sources []string, _ string) error {
	r.added = append(r.added, sources)
	return nil
}

func (r *fakeRecents) SavePosition(sources []string, position float64) error {
	if r.positions == nil {
		r.positions = make(map[string]float64)
	}
	r.positions[sources[0]] = position
	return nil
}

type notes struct {
	seen []dispatch.Notification
}

func (n *notes) ReceiveNotification(note dispatch.Notification) {
	n.seen = append(n.seen, note)
}

func (n *notes) of(t dispatch.NotificationType) []dispatch.Notification {
	var out []dispatch.Notification
	for _, note := range n.seen {
		if note.Type == t {
			out = append(out, note)
		}
	}
	return out
}
