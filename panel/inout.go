package panel

import (
	"math"

	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/util"
)

// InOutState tells which in/out controls accept user input.
type InOutState struct {
	Input      bool
	Audio      bool
	Output     bool
	Swap       bool
	Fullscreen bool
	Center     bool
	Parallax   bool
	Ghostbust  bool
}

// InOut selects the input layout, output mode and audio stream before
// playback, and adjusts swap, parallax and ghostbusting during playback.
type InOut struct {
	link  dispatch.Link
	prefs settings.Preferences

	layout      stereo.Layout
	layoutSwap  bool
	mode        stereo.Mode
	modeSwap    bool
	audioStream int
	parallax    float64
	ghostbust   float64

	state InOutState
}

// NewInOut returns a disabled panel registered with bus.
func NewInOut(bus *dispatch.Bus, prefs settings.Preferences) *InOut {
	w := &InOut{
		link:  dispatch.NewLink(bus),
		prefs: prefs,
		mode:  stereo.MonoLeft,
	}
	bus.Register(w)
	return w
}

// Update mirrors init without sending anything.
func (w *InOut) Update(init player.InitData, validInput, playing bool) {
	w.layout, w.layoutSwap = init.StereoLayout, init.StereoLayoutSwap
	w.mode, w.modeSwap = init.StereoMode, init.StereoModeSwap
	w.audioStream = init.AudioStream
	w.parallax = orZero(init.Params.Parallax)
	w.ghostbust = orZero(init.Params.Ghostbust)

	if validInput {
		w.ReceiveNotification(dispatch.NewFlagNotification(dispatch.Play, !playing, playing))
	} else {
		w.state = InOutState{}
	}
}

func (w *InOut) ReceiveNotification(n dispatch.Notification) {
	switch n.Type {
	case dispatch.Play:
		playing := n.Current.Flag
		w.state = InOutState{
			Input:      !playing,
			Audio:      !playing,
			Output:     !playing,
			Swap:       playing,
			Fullscreen: playing,
			Center:     playing,
			Parallax:   playing,
			Ghostbust:  playing,
		}
	case dispatch.StereoModeSwap:
		w.modeSwap = n.Current.Flag
	case dispatch.Parallax:
		w.parallax = n.Current.Number
	case dispatch.Ghostbust:
		w.ghostbust = n.Current.Number
	case dispatch.AudioStream:
		w.audioStream = int(n.Current.Number)
	}
}

func (w *InOut) State() InOutState { return w.state }

func (w *InOut) Input() (stereo.Layout, bool) { return w.layout, w.layoutSwap }

func (w *InOut) Output() (stereo.Mode, bool) { return w.mode, w.modeSwap }

func (w *InOut) AudioStream() int { return w.audioStream }

func (w *InOut) Parallax() float64 { return w.parallax }

func (w *InOut) Ghostbust() float64 { return w.ghostbust }

// GhostbustPercent is the ghostbusting level as shown to the user.
func (w *InOut) GhostbustPercent() int {
	return int(math.Round(w.ghostbust * 100))
}

// SelectInput chooses the input layout. Switching between mono and stereo
// input replaces an output mode that no longer fits with the one last used
// for that kind of input.
func (w *InOut) SelectInput(layout stereo.Layout, swap bool) error {
	if !w.state.Input {
		return ErrDisabled
	}
	w.layout, w.layoutSwap = layout, swap

	switch {
	case layout.IsMono() && !w.mode.IsMono():
		w.mode, w.modeSwap = w.sessionMode(settings.Mode2D, stereo.MonoLeft)
	case !layout.IsMono() && w.mode.IsMono():
		w.mode, w.modeSwap = w.sessionMode(settings.Mode3D, stereo.RedCyanDubois)
	}
	return nil
}

func (w *InOut) sessionMode(k string, fallback stereo.Mode) (stereo.Mode, bool) {
	value := w.prefs.String(k, "")
	if value == "" {
		return fallback, false
	}
	mode, swap, err := stereo.DecodeMode(value)
	if err != nil {
		log.Warnf("%s: %s", k, err)
		return fallback, false
	}
	return mode, swap
}

// SelectOutput chooses the output mode.
func (w *InOut) SelectOutput(mode stereo.Mode, swap bool) error {
	if !w.state.Output {
		return ErrDisabled
	}
	w.mode, w.modeSwap = mode, swap
	return nil
}

// SelectAudioStream chooses the zero based audio stream.
func (w *InOut) SelectAudioStream(stream int) error {
	if !w.state.Audio {
		return ErrDisabled
	}
	w.audioStream = util.Clamp(stream, 0, math.MaxInt32)
	return nil
}

// ToggleSwap swaps the eyes of the output.
func (w *InOut) ToggleSwap() error {
	if !w.state.Swap {
		return ErrDisabled
	}
	w.modeSwap = !w.modeSwap
	w.link.SendCmd(dispatch.NewCommand(dispatch.ToggleStereoModeSwap))
	return nil
}

func (w *InOut) ToggleFullscreen() error {
	if !w.state.Fullscreen {
		return ErrDisabled
	}
	w.link.SendCmd(dispatch.NewCommand(dispatch.ToggleFullscreen))
	return nil
}

func (w *InOut) Center() error {
	if !w.state.Center {
		return ErrDisabled
	}
	w.link.SendCmd(dispatch.NewCommand(dispatch.Center))
	return nil
}

// SetParallax adjusts the parallax in [-1,1].
func (w *InOut) SetParallax(v float64) error {
	if !w.state.Parallax {
		return ErrDisabled
	}
	w.parallax = util.Clamp(v, -1, 1)
	w.link.SendCmd(dispatch.NewNumberCommand(dispatch.SetParallax, w.parallax))
	return nil
}

// SetGhostbustPercent adjusts the ghostbusting level in percent.
func (w *InOut) SetGhostbustPercent(percent int) error {
	if !w.state.Ghostbust {
		return ErrDisabled
	}
	w.ghostbust = float64(util.Clamp(percent, 0, 100)) / 100
	w.link.SendCmd(dispatch.NewNumberCommand(dispatch.SetGhostbust, w.ghostbust))
	return nil
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
