package tui

import (
	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/window"
)

// snapshot is a copy of the window state taken on the window goroutine.
// The bubble only ever renders snapshots.
type snapshot struct {
	title    string
	hasInput bool
	device   bool
	media    player.Media
	position float64
	playing  bool
	paused   bool
	looping  bool
	lastDir  string

	inout      panel.InOutState
	layout     stereo.Layout
	layoutSwap bool
	mode       stereo.Mode
	modeSwap   bool
	audio      int
	parallax   float64
	ghostbust  int

	controls panel.ControlsState
	slider   int

	dialogs []dialogView
}

type dialogView struct {
	name   string
	title  string
	fields []fieldView
}

type fieldView struct {
	field panel.Field
	value dispatch.Value
}

// takeSnapshot must run on the window goroutine.
func takeSnapshot(w *window.Window) snapshot {
	init := w.InitData()
	s := snapshot{
		hasInput: init.HasInput(),
		device:   init.Device.IsPresent(),
		media:    w.Media(),
		position: w.Position(),
		playing:  w.Playing(),
		looping:  w.Looping(),
		lastDir:  w.LastDir(""),

		inout:     w.InOut.State(),
		audio:     w.InOut.AudioStream(),
		parallax:  w.InOut.Parallax(),
		ghostbust: w.InOut.GhostbustPercent(),

		controls: w.Controls.State(),
		slider:   w.Controls.Slider(),
	}
	s.title = s.media.Title
	s.layout, s.layoutSwap = w.InOut.Input()
	s.mode, s.modeSwap = w.InOut.Output()
	s.paused = s.playing && s.controls.Play

	s.dialogs = lo.Map(w.Dialogs, func(d *panel.Dialog, _ int) dialogView {
		return dialogView{
			name:  d.Name,
			title: d.Title,
			fields: lo.Map(d.Fields(), func(f panel.Field, _ int) fieldView {
				return fieldView{field: f, value: d.Value(f.Name)}
			}),
		}
	})
	return s
}

func (s snapshot) dialog(name string) (dialogView, bool) {
	return lo.Find(s.dialogs, func(d dialogView) bool { return d.name == name })
}

// next returns the element after current in all, wrapping around.
func next[T comparable](all []T, current T) T {
	_, i, ok := lo.FindIndexOf(all, func(v T) bool { return v == current })
	if !ok {
		return all[0]
	}
	return all[(i+1)%len(all)]
}
