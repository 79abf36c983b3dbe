package panel

import (
	"math"

	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/util"
)

// SliderMax is the resolution of the seek slider.
const SliderMax = 2000

// SeekStep selects one of the configured seek distances.
type SeekStep int

const (
	SeekShort SeekStep = iota
	SeekMedium
	SeekLong
)

var seekDefaults = map[SeekStep]struct {
	key     string
	seconds float64
}{
	SeekShort:  {key.SeekShort, 10},
	SeekMedium: {key.SeekMedium, 60},
	SeekLong:   {key.SeekLong, 600},
}

// Seconds returns the configured distance of the step.
func (s SeekStep) Seconds() float64 {
	d := seekDefaults[s]
	if v := viper.GetFloat64(d.key); v > 0 {
		return v
	}
	return d.seconds
}

// ControlsState tells which transport controls accept user input.
type ControlsState struct {
	Play   bool
	Pause  bool
	Stop   bool
	Seek   bool
	Slider bool
}

// Controls is the transport panel: play, pause, stop, seek buttons and the
// seek slider.
type Controls struct {
	link dispatch.Link

	playing  bool
	slider   int
	dragging bool
	state    ControlsState
}

// NewControls returns a disabled panel registered with bus.
func NewControls(bus *dispatch.Bus) *Controls {
	c := &Controls{link: dispatch.NewLink(bus)}
	bus.Register(c)
	return c
}

// Update mirrors the play state without sending anything.
func (c *Controls) Update(_ player.InitData, validInput, playing bool) {
	if validInput {
		c.ReceiveNotification(dispatch.NewFlagNotification(dispatch.Play, !playing, playing))
		return
	}
	c.playing = false
	c.slider = 0
	c.state = ControlsState{}
}

func (c *Controls) ReceiveNotification(n dispatch.Notification) {
	switch n.Type {
	case dispatch.Play:
		playing := n.Current.Flag
		c.playing = playing
		c.state = ControlsState{
			Play:   !playing,
			Pause:  playing,
			Stop:   playing,
			Seek:   playing,
			Slider: playing,
		}
		if !playing {
			c.slider = 0
		}
	case dispatch.Pause:
		c.state.Play = n.Current.Flag
		c.state.Pause = !n.Current.Flag
	case dispatch.Pos:
		if !c.dragging {
			c.slider = int(math.Round(n.Current.Number * SliderMax))
		}
	}
}

func (c *Controls) State() ControlsState { return c.state }

func (c *Controls) Playing() bool { return c.playing }

// Slider returns the slider position in [0,SliderMax].
func (c *Controls) Slider() int { return c.slider }

// Play starts playback, or resumes it when paused.
func (c *Controls) Play() error {
	if !c.state.Play {
		return ErrDisabled
	}
	if c.playing {
		c.link.SendCmd(dispatch.NewCommand(dispatch.TogglePause))
	} else {
		c.link.SendCmd(dispatch.NewCommand(dispatch.TogglePlay))
	}
	return nil
}

func (c *Controls) Pause() error {
	if !c.state.Pause {
		return ErrDisabled
	}
	c.link.SendCmd(dispatch.NewCommand(dispatch.TogglePause))
	return nil
}

func (c *Controls) Stop() error {
	if !c.state.Stop {
		return ErrDisabled
	}
	c.link.SendCmd(dispatch.NewCommand(dispatch.TogglePlay))
	return nil
}

// Seek jumps by step, backwards unless forward is set.
func (c *Controls) Seek(step SeekStep, forward bool) error {
	if !c.state.Seek {
		return ErrDisabled
	}
	seconds := step.Seconds()
	if !forward {
		seconds = -seconds
	}
	c.link.SendCmd(dispatch.NewNumberCommand(dispatch.Seek, seconds))
	return nil
}

// BeginDrag holds the slider: position updates no longer move it.
func (c *Controls) BeginDrag() error {
	if !c.state.Slider {
		return ErrDisabled
	}
	c.dragging = true
	return nil
}

// Drag moves the held slider without seeking.
func (c *Controls) Drag(value int) {
	if c.dragging {
		c.slider = util.Clamp(value, 0, SliderMax)
	}
}

// EndDrag releases the slider and seeks to where it was left.
func (c *Controls) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.sendPos()
}

// SetSlider moves the slider and seeks there.
func (c *Controls) SetSlider(value int) error {
	if !c.state.Slider {
		return ErrDisabled
	}
	c.slider = util.Clamp(value, 0, SliderMax)
	c.sendPos()
	return nil
}

func (c *Controls) sendPos() {
	c.link.SendCmd(dispatch.NewNumberCommand(dispatch.SetPos, float64(c.slider)/SliderMax))
}
