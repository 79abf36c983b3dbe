// Package dispatch routes user commands to the player engine and broadcasts
// engine state transitions to every registered controller.
package dispatch

import (
	"sync"

	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/log"
)

// Controller observes player state transitions.
type Controller interface {
	ReceiveNotification(Notification)
}

// Receiver consumes commands. At most one is attached to a bus.
type Receiver interface {
	ReceiveCmd(Command)
}

// Bus is the dispatcher. Notify delivers synchronously in registration
// order; controllers registered or removed during a broadcast only affect
// later broadcasts.
type Bus struct {
	mu          sync.Mutex
	controllers []Controller
	receiver    Receiver
}

// NewBus returns an empty dispatcher.
func NewBus() *Bus {
	return &Bus{}
}

// Register appends c to the broadcast list. Registering twice is a no-op.
func (b *Bus) Register(c Controller) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if lo.Contains(b.controllers, c) {
		return
	}
	b.controllers = append(b.controllers, c)
}

// Unregister removes c. Unknown controllers are ignored.
func (b *Bus) Unregister(c Controller) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.controllers = lo.Filter(b.controllers, func(item Controller, _ int) bool {
		return item != c
	})
}

// Controllers returns the number of registered controllers.
func (b *Bus) Controllers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.controllers)
}

// Attach makes r the command sink, replacing any previous one.
func (b *Bus) Attach(r Receiver) {
	b.mu.Lock()
	b.receiver = r
	b.mu.Unlock()
}

// Detach clears the command sink if it is r.
func (b *Bus) Detach(r Receiver) {
	b.mu.Lock()
	if b.receiver == r {
		b.receiver = nil
	}
	b.mu.Unlock()
}

// Send forwards cmd to the attached receiver. Without one it is dropped.
func (b *Bus) Send(cmd Command) {
	b.mu.Lock()
	r := b.receiver
	b.mu.Unlock()

	if r == nil {
		log.Debugf("dropping %s: no receiver attached", cmd)
		return
	}
	r.ReceiveCmd(cmd)
}

// Notify delivers n to a snapshot of the registered controllers.
func (b *Bus) Notify(n Notification) {
	b.mu.Lock()
	snapshot := make([]Controller, len(b.controllers))
	copy(snapshot, b.controllers)
	b.mu.Unlock()

	for _, c := range snapshot {
		c.ReceiveNotification(n)
	}
}

// Close detaches the receiver and forgets every controller.
func (b *Bus) Close() {
	b.mu.Lock()
	b.controllers = nil
	b.receiver = nil
	b.mu.Unlock()
}

// Link ties a controller to a bus and lets it issue commands. Embed it in
// panels so they can call SendCmd.
type Link struct {
	bus *Bus
}

// NewLink returns a link bound to bus.
func NewLink(bus *Bus) Link {
	return Link{bus: bus}
}

// SendCmd issues cmd on the linked bus.
func (l Link) SendCmd(cmd Command) {
	if l.bus == nil {
		return
	}
	l.bus.Send(cmd)
}

// Bus returns the linked bus.
func (l Link) Bus() *Bus {
	return l.bus
}
