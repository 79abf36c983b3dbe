// Package window is the composition root of a playback session. It owns the
// bus, the engine proxy and every panel, reconciles per-file and session
// preferences, and drives the playback loop.
package window

import (
	"context"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/parameters"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/stereo"
)

// Reporter shows errors to the user.
type Reporter interface {
	Report(error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(error)

func (f ReporterFunc) Report(err error) { f(err) }

// Recents records opened sources and where their playback stopped.
type Recents interface {
	Add(sources []string, title string) error
	SavePosition(sources []string, position float64) error
}

// Options configure a Window. Backend and Store are required.
type Options struct {
	Init     player.InitData
	Backend  player.Backend
	Store    settings.Store
	Reporter Reporter
	Recents  Recents
	Interval time.Duration
}

// Window ties the engine to the panels.
type Window struct {
	bus      *dispatch.Bus
	core     *player.Core
	proxy    *player.Proxy
	prefs    settings.Preferences
	reporter Reporter
	recents  Recents

	InOut    *panel.InOut
	Controls *panel.Controls
	Dialogs  []*panel.Dialog

	given    parameters.Parameters // as passed to New
	template player.InitData
	init     player.InitData
	pos      float64

	looping bool
	played  bool // playback ran since the last halt
	token   context.Context
	stop    context.CancelFunc

	interval time.Duration
	actions  chan func()
	done     chan struct{}
	closed   bool
}

// New builds the window and its controllers. Crosstalk levels outside
// [0,1] in opts.Init are replaced by the remembered session values.
func New(opts Options) *Window {
	bus := dispatch.NewBus()
	core := player.NewCore(bus, opts.Backend)

	w := &Window{
		bus:      bus,
		core:     core,
		proxy:    player.NewProxy(bus, core),
		prefs:    settings.NewPreferences(opts.Store),
		reporter: opts.Reporter,
		recents:  opts.Recents,
		interval: opts.Interval,
		actions:  make(chan func(), 64),
		done:     make(chan struct{}),
	}
	if w.reporter == nil {
		w.reporter = ReporterFunc(func(err error) { log.Error(err) })
	}
	if w.interval <= 0 {
		w.interval = time.Duration(viper.GetInt(key.PlayerStepInterval)) * time.Millisecond
	}
	if w.interval <= 0 {
		w.interval = 10 * time.Millisecond
	}
	w.token, w.stop = context.WithCancel(context.Background())

	bus.Register(w)
	w.InOut = panel.NewInOut(bus, w.prefs)
	w.Controls = panel.NewControls(bus)

	crosstalk := panel.CrosstalkDialog(bus)
	crosstalk.OnChange(w.crosstalkChanged)
	w.Dialogs = []*panel.Dialog{
		panel.ColorDialog(bus),
		crosstalk,
		panel.ZoomDialog(bus),
		panel.AudioDialog(bus),
		panel.SubtitleDialog(bus),
		panel.VideoDialog(bus),
		panel.FullscreenDialog(bus),
	}

	w.given = opts.Init.Params
	template := opts.Init.Clone()
	for _, c := range []struct {
		field *float64
		key   string
	}{
		{&template.Params.CrosstalkR, settings.CrosstalkR},
		{&template.Params.CrosstalkG, settings.CrosstalkG},
		{&template.Params.CrosstalkB, settings.CrosstalkB},
	} {
		if !(*c.field >= 0 && *c.field <= 1) {
			*c.field = w.prefs.Float(c.key, 0)
		}
	}
	template.Params.SetDefaults()
	w.template = template
	w.init = template.Clone()

	w.update(false, false)
	return w
}

// Bus returns the bus the window's controllers are registered with.
func (w *Window) Bus() *dispatch.Bus { return w.bus }

// Link returns a handle for sending commands as the user.
func (w *Window) Link() dispatch.Link { return dispatch.NewLink(w.bus) }

// Dialog returns the dialog called name, or nil.
func (w *Window) Dialog(name string) *panel.Dialog {
	d, _ := lo.Find(w.Dialogs, func(d *panel.Dialog) bool { return d.Name == name })
	return d
}

// InitData returns the setup the next playback will use.
func (w *Window) InitData() player.InitData { return w.init.Clone() }

// Media describes the opened source.
func (w *Window) Media() player.Media { return w.core.Media() }

// Playing reports whether playback is running.
func (w *Window) Playing() bool { return w.proxy.Playing() }

// Position is the last notified playback position.
func (w *Window) Position() float64 { return w.pos }

// Open probes sources and restores the preferences remembered for them.
// Nothing plays until the user asks for it.
func (w *Window) Open(sources ...string) error {
	if len(sources) == 0 {
		return player.ErrNoSources
	}
	init := w.template.Clone()
	init.Sources = sources
	init.Device = mo.None[player.DeviceRequest]()
	return w.open(init)
}

// OpenDevice probes a capture device.
func (w *Window) OpenDevice(req player.DeviceRequest) error {
	init := w.template.Clone()
	init.Sources = nil
	init.Device = mo.Some(req)
	return w.open(init)
}

func (w *Window) open(init player.InitData) error {
	w.proxy.ForceStop()
	w.closeEngine()
	w.init = init
	w.pos = 0

	if err := w.core.Open(w.init); err != nil {
		w.reporter.Report(err)
		w.update(false, false)
		return err
	}
	probed := w.core.InitData()

	// settings given on the command line win over remembered ones
	source, hasFile := w.source()
	if !w.template.StereoLayoutOverride {
		w.init.StereoLayout, w.init.StereoLayoutSwap = probed.StereoLayout, probed.StereoLayoutSwap
		if hasFile {
			w.init.StereoLayout, w.init.StereoLayoutSwap = w.layoutOf(source, probed)
		}
	}
	w.init.StereoLayoutOverride = true

	if hasFile {
		w.init.AudioStream = w.prefs.Int(settings.VideoKey(source, settings.AudioStream), w.init.AudioStream)
		if !parameters.IsSet(w.given.Parallax) {
			w.init.Params.Parallax = w.prefs.Float(settings.VideoKey(source, settings.Parallax), w.init.Params.Parallax)
		}
		if !parameters.IsSet(w.given.Ghostbust) {
			w.init.Params.Ghostbust = w.prefs.Float(settings.VideoKey(source, settings.Ghostbust), w.init.Params.Ghostbust)
		}
	}

	if !w.template.StereoModeOverride {
		w.init.StereoMode, w.init.StereoModeSwap = w.sessionMode(w.init.StereoLayout, probed)
	}
	w.init.StereoModeOverride = true
	w.init.Params.SetDefaults()

	w.update(true, false)

	if w.recents != nil && len(w.init.Sources) > 0 {
		if err := w.recents.Add(w.init.Sources, w.core.Media().Title); err != nil {
			log.Warnf("remember %s: %s", source, err)
		}
	}
	return nil
}

// source returns the file preferences are keyed by, if any.
func (w *Window) source() (string, bool) {
	if len(w.init.Sources) == 0 {
		return "", false
	}
	return w.init.Sources[0], true
}

func (w *Window) layoutOf(source string, probed player.InitData) (stereo.Layout, bool) {
	fallback := stereo.EncodeLayout(probed.StereoLayout, probed.StereoLayoutSwap)
	value := w.prefs.String(settings.VideoKey(source, settings.StereoLayout), fallback)
	layout, swap, err := stereo.DecodeLayout(value)
	if err != nil {
		log.Warnf("remembered layout of %s: %s", source, err)
		return probed.StereoLayout, probed.StereoLayoutSwap
	}
	if (layout == stereo.Separate) != (len(w.init.Sources) == 2) {
		return probed.StereoLayout, probed.StereoLayoutSwap
	}
	return layout, swap
}

func (w *Window) sessionMode(layout stereo.Layout, probed player.InitData) (stereo.Mode, bool) {
	fallback := stereo.EncodeMode(probed.StereoMode, probed.StereoModeSwap)
	value := w.prefs.String(modeKey(layout), fallback)
	mode, swap, err := stereo.DecodeMode(value)
	if err != nil {
		log.Warnf("%s: %s", modeKey(layout), err)
		return probed.StereoMode, probed.StereoModeSwap
	}
	return mode, swap
}

func modeKey(layout stereo.Layout) string {
	if layout.IsMono() {
		return settings.Mode2D
	}
	return settings.Mode3D
}

func (w *Window) update(validInput, playing bool) {
	w.InOut.Update(w.init, validInput, playing)
	w.Controls.Update(w.init, validInput, playing)
	for _, d := range w.Dialogs {
		d.Update(w.init)
	}
}

func (w *Window) ReceiveNotification(n dispatch.Notification) {
	switch n.Type {
	case dispatch.Play:
		if n.Current.Flag {
			w.play()
		} else {
			w.halt()
		}
	case dispatch.Pos:
		w.pos = n.Current.Number
	case dispatch.Contrast:
		w.init.Params.Contrast = n.Current.Number
	case dispatch.Brightness:
		w.init.Params.Brightness = n.Current.Number
	case dispatch.Hue:
		w.init.Params.Hue = n.Current.Number
	case dispatch.Saturation:
		w.init.Params.Saturation = n.Current.Number
	case dispatch.CrosstalkR, dispatch.CrosstalkG, dispatch.CrosstalkB:
		w.setCrosstalk(n.Type, n.Current.Number)
	case dispatch.Parallax:
		w.init.Params.Parallax = n.Current.Number
		w.remember(settings.Parallax, n.Current.Number)
	case dispatch.Ghostbust:
		w.init.Params.Ghostbust = n.Current.Number
		w.remember(settings.Ghostbust, n.Current.Number)
	}
}

func (w *Window) remember(name string, v float64) {
	if source, ok := w.source(); ok {
		w.prefs.SetFloat(settings.VideoKey(source, name), v)
	}
}

// play reopens the engine with the panel selections and starts the loop.
// A failed open is reported and stops playback on the next tick.
func (w *Window) play() {
	w.closeEngine()

	w.init.StereoLayoutOverride = true
	w.init.StereoLayout, w.init.StereoLayoutSwap = w.InOut.Input()
	w.init.AudioStream = w.InOut.AudioStream()
	w.init.StereoModeOverride = true
	w.init.StereoMode, w.init.StereoModeSwap = w.InOut.Output()

	w.stop()
	w.token, w.stop = context.WithCancel(context.Background())
	if err := w.core.Open(w.init); err != nil {
		w.reporter.Report(err)
		w.stop()
	} else {
		w.played = true
	}

	if source, ok := w.source(); ok {
		w.prefs.SetString(settings.VideoKey(source, settings.StereoLayout), stereo.EncodeLayout(w.init.StereoLayout, w.init.StereoLayoutSwap))
		w.prefs.SetInt(settings.VideoKey(source, settings.AudioStream), w.init.AudioStream)
	}
	w.prefs.SetString(modeKey(w.init.StereoLayout), stereo.EncodeMode(w.init.StereoMode, w.init.StereoModeSwap))

	w.update(true, true)
	w.looping = true
}

// halt stops the loop and closes the engine.
func (w *Window) halt() {
	w.looping = false
	w.closeEngine()
	// a probe alone leaves the remembered position alone
	if !w.played {
		return
	}
	w.played = false
	if w.recents != nil && len(w.init.Sources) > 0 {
		if err := w.recents.SavePosition(w.init.Sources, w.pos); err != nil {
			log.Warn(err)
		}
	}
}

func (w *Window) closeEngine() {
	if err := w.core.Close(); err != nil {
		w.reporter.Report(err)
	}
}

// Tick runs one unit of the playback loop.
func (w *Window) Tick() {
	if !w.looping {
		return
	}
	if w.token.Err() != nil {
		w.looping = false
		w.proxy.ForceStop()
		return
	}

	ok, err := w.core.Step()
	if err != nil {
		w.reporter.Report(err)
	}
	if !ok {
		w.looping = false
		if w.proxy.Playing() {
			w.proxy.ForceStop()
		}
	}
}

// Stop requests the loop to halt at the next tick.
func (w *Window) Stop() {
	w.stop()
}

// Looping reports whether the playback loop is running.
func (w *Window) Looping() bool { return w.looping }

// crosstalkChanged applies crosstalk edits even while stopped. They are
// saved when the window closes.
func (w *Window) crosstalkChanged(f panel.Field, v dispatch.Value) {
	w.setCrosstalk(f.Note, v.Number)
}

// setCrosstalk keeps a crosstalk level across reopening.
func (w *Window) setCrosstalk(note dispatch.NotificationType, v float64) {
	for _, p := range []*parameters.Parameters{&w.init.Params, &w.template.Params} {
		switch note {
		case dispatch.CrosstalkR:
			p.CrosstalkR = v
		case dispatch.CrosstalkG:
			p.CrosstalkG = v
		case dispatch.CrosstalkB:
			p.CrosstalkB = v
		}
	}
}

// LastDir returns the directory files were last opened from.
func (w *Window) LastDir(fallback string) string {
	return w.prefs.String(settings.FileOpenDir, fallback)
}

// SetLastDir remembers the directory files were opened from.
func (w *Window) SetLastDir(dir string) {
	w.prefs.SetString(settings.FileOpenDir, dir)
}

// Close saves the crosstalk levels, closes the engine and releases every
// controller. It is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	for k, v := range map[string]float64{
		settings.CrosstalkR: w.init.Params.CrosstalkR,
		settings.CrosstalkG: w.init.Params.CrosstalkG,
		settings.CrosstalkB: w.init.Params.CrosstalkB,
	} {
		if !math.IsNaN(v) {
			w.prefs.SetFloat(k, v)
		}
	}

	w.looping = false
	w.stop()
	err := w.core.Close()
	w.bus.Close()
	return err
}
