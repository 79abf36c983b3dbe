package player

import "github.com/stereoplay/stereoplay/dispatch"

// fakeBackend records what the engine asks of it.
type fakeBackend struct {
	media    Media
	startErr error
	started  []InitData
	sets     map[string]any
	commands [][]any
	events   chan Event
	closed   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		media:  Media{Title: "movie.mkv", Duration: 100, VideoStreams: 1, AudioStreams: 2, SubtitleStreams: 1},
		sets:   make(map[string]any),
		events: make(chan Event, 128),
	}
}

func (f *fakeBackend) Start(init InitData) (Media, error) {
	if f.startErr != nil {
		return Media{}, f.startErr
	}
	f.started = append(f.started, init)
	return f.media, nil
}

func (f *fakeBackend) Set(property string, value any) error {
	f.sets[property] = value
	return nil
}

func (f *fakeBackend) Command(args ...any) error {
	f.commands = append(f.commands, args)
	return nil
}

func (f *fakeBackend) Events() <-chan Event { return f.events }

func (f *fakeBackend) Close() error {
	f.closed++
	return nil
}

// notes collects notifications.
type notes struct {
	seen []dispatch.Notification
}

func (n *notes) Notify(note dispatch.Notification) {
	n.seen = append(n.seen, note)
}

func (n *notes) ReceiveNotification(note dispatch.Notification) {
	n.seen = append(n.seen, note)
}

func (n *notes) last() dispatch.Notification {
	return n.seen[len(n.seen)-1]
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
