package player

import (
	"bufio"
	"fmt"
	"net"
	"sync"

	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/log"
	"github.com/tidwall/gjson"
)

// observed lists the properties mpv reports changes of.
var observed = []string{EventTimePos, EventDuration, EventPause, EventEOF}

// eventListener turns mpv property-change events into Events.
type eventListener struct {
	conn   net.Conn
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// listen opens a persistent connection, subscribes to the observed properties
// and forwards their changes until the connection closes.
func listen(socketPath string, buffer int) (*eventListener, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("event listener connect: %w", err)
	}

	// observers belong to the connection that registers them
	for i, name := range observed {
		line := fmt.Sprintf(`{"command":["observe_property",%d,%q]}`+"\n", i+1, name)
		if _, err := conn.Write([]byte(line)); err != nil {
			conn.Close()
			return nil, fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el := &eventListener{
		conn:   conn,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go el.readLoop()

	log.Infof("mpv event listener started on %s", socketPath)
	return el, nil
}

// Stop closes the connection; the read loop then closes the event channel.
func (el *eventListener) Stop() {
	el.once.Do(func() {
		close(el.done)
		_ = el.conn.Close()
	})
}

func (el *eventListener) readLoop() {
	defer close(el.events)

	scanner := bufio.NewScanner(el.conn)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		if event, ok := parseEvent(scanner.Bytes()); ok {
			el.publish(event)
		}
	}
	el.publish(Event{Name: EventExit})
}

// publish drops position updates while the consumer lags. Other events wait
// for room until the listener is stopped.
func (el *eventListener) publish(event Event) {
	if event.Name == EventTimePos {
		select {
		case el.events <- event:
		default:
		}
		return
	}

	select {
	case el.events <- event:
	case <-el.done:
	}
}

// parseEvent converts one line of mpv output into an Event.
func parseEvent(line []byte) (Event, bool) {
	msg := gjson.ParseBytes(line)

	switch msg.Get("event").String() {
	case "property-change":
		data := msg.Get("data")
		event := Event{Name: msg.Get("name").String()}
		switch data.Type {
		case gjson.Number:
			event.Value = dispatch.Number(data.Float())
		case gjson.True, gjson.False:
			event.Value = dispatch.Flag(data.Bool())
		case gjson.Null:
			return Event{}, false
		default:
			event.Value = dispatch.Text(data.String())
		}
		return event, event.Name != ""
	case "end-file":
		if msg.Get("reason").String() == "error" {
			log.Warnf("mpv failed to play: %s", msg.Get("file_error").String())
		}
		return Event{Name: EventEOF, Value: dispatch.Flag(true)}, true
	case "shutdown":
		return Event{Name: EventExit}, true
	default:
		return Event{}, false
	}
}
