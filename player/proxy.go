package player

import "github.com/stereoplay/stereoplay/dispatch"

// Proxy is the command receiver attached to the bus. It turns a play request
// into a play notification for the window to act on, and only lets other
// commands through while playing.
type Proxy struct {
	Engine
	bus     *dispatch.Bus
	playing bool
}

// NewProxy wraps engine and registers the proxy with bus.
func NewProxy(bus *dispatch.Bus, engine Engine) *Proxy {
	p := &Proxy{Engine: engine, bus: bus}
	bus.Register(p)
	bus.Attach(p)
	return p
}

func (p *Proxy) ReceiveCmd(cmd dispatch.Command) {
	switch {
	case cmd.Type == dispatch.TogglePlay && !p.playing:
		p.bus.Notify(dispatch.NewFlagNotification(dispatch.Play, false, true))
	case p.playing:
		p.Engine.ReceiveCmd(cmd)
	}
}

func (p *Proxy) ReceiveNotification(n dispatch.Notification) {
	if n.Type == dispatch.Play {
		p.playing = n.Current.Flag
	}
}

// Playing reports the play state as last notified.
func (p *Proxy) Playing() bool {
	return p.playing
}

// ForceStop notifies that playback stopped and asks the engine to halt on
// its next step.
func (p *Proxy) ForceStop() {
	p.Engine.ForceStop()
	p.bus.Notify(dispatch.NewFlagNotification(dispatch.Play, p.playing, false))
}

// Release detaches the proxy from the bus.
func (p *Proxy) Release() {
	p.bus.Detach(p)
	p.bus.Unregister(p)
}
