package player

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/parameters"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/util"
)

// maxEventsPerStep bounds the work done by a single Step.
const maxEventsPerStep = 64

// Notifier receives the state transitions of an engine.
type Notifier interface {
	Notify(dispatch.Notification)
}

// Core is the backend-agnostic engine. It owns the authoritative session
// state, applies commands to the backend and notifies every transition.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Core struct {
	notifier Notifier
	backend  Backend
	log      *logrus.Entry

	init   InitData
	media  Media
	params parameters.Parameters

	open     bool
	playing  bool
	paused   bool
	stopping bool
	pos      float64
}

// NewCore returns a closed engine driving backend.
func NewCore(notifier Notifier, backend Backend) *Core {
	return &Core{
		notifier: notifier,
		backend:  backend,
		log:      log.Session("-"),
		init:     NewInitData(),
		params:   parameters.Defaults(),
	}
}

// defaultMode is the output used when none was chosen for the input.
func defaultMode(layout stereo.Layout) stereo.Mode {
	if layout.IsMono() {
		return stereo.MonoLeft
	}
	return stereo.RedCyanDubois
}

func (c *Core) Open(init InitData) error {
	if err := c.Close(); err != nil {
		c.log.Warn(err)
	}

	if !init.HasInput() {
		return ErrNoSources
	}

	resolved := init.Clone()
	if resolved.SessionID == "" {
		resolved.SessionID = uuid.NewString()
	}
	c.log = log.Session(resolved.SessionID)

	if len(resolved.Sources) > 0 {
		if resolved.Device.IsPresent() {
			return fmt.Errorf("cannot open files and a device at once")
		}
		sources, err := validateSources(resolved.Sources)
		if err != nil {
			return err
		}
		resolved.Sources = sources
	}

	if !resolved.StereoLayoutOverride {
		resolved.StereoLayout, resolved.StereoLayoutSwap = stereo.Detect(resolved.Sources...)
	}
	if err := checkLayout(resolved); err != nil {
		return err
	}
	if !resolved.StereoModeOverride {
		resolved.StereoMode, resolved.StereoModeSwap = defaultMode(resolved.StereoLayout), false
	}

	resolved.Params.SetDefaults()
	clampParameters(&resolved.Params)

	media, err := c.backend.Start(resolved)
	if err != nil {
		return fmt.Errorf("open %s: %w", strings.Join(resolved.Sources, ", "), err)
	}
	clampStreams(&resolved, media)

	c.init = resolved
	c.media = media
	c.params = resolved.Params
	c.open = true
	c.playing = false
	c.paused = false
	c.stopping = false
	c.pos = 0

	c.log.WithFields(logrus.Fields{
		"layout": stereo.EncodeLayout(resolved.StereoLayout, resolved.StereoLayoutSwap),
		"mode":   stereo.EncodeMode(resolved.StereoMode, resolved.StereoModeSwap),
	}).Infof("opened %s", media.Title)
	return nil
}

func checkLayout(d InitData) error {
	separate := d.StereoLayout == stereo.Separate
	switch {
	case len(d.Sources) > 2:
		return fmt.Errorf("at most two sources can be played together, got %d", len(d.Sources))
	case len(d.Sources) == 2 && !separate:
		return fmt.Errorf("two sources require the %s layout", stereo.Separate)
	case len(d.Sources) < 2 && separate:
		return fmt.Errorf("the %s layout requires two sources", stereo.Separate)
	}
	return nil
}

func clampStreams(d *InitData, m Media) {
	if m.VideoStreams > 0 {
		d.VideoStream = util.Clamp(d.VideoStream, 0, m.VideoStreams-1)
	}
	if m.AudioStreams > 0 {
		d.AudioStream = util.Clamp(d.AudioStream, 0, m.AudioStreams-1)
	}
	d.SubtitleStream = util.Clamp(d.SubtitleStream, -1, m.SubtitleStreams-1)
}

func (c *Core) Close() error {
	if !c.open {
		return nil
	}
	c.open = false
	c.playing = false

	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	c.log.Info("closed")
	return nil
}

func (c *Core) ForceStop() {
	c.stopping = true
}

func (c *Core) Step() (bool, error) {
	if !c.open {
		return false, nil
	}
	if c.stopping {
		c.stopping = false
		return false, nil
	}

	if !c.playing {
		c.playing = true
		if err := c.backend.Set("pause", false); err != nil {
			return false, fmt.Errorf("start playback: %w", err)
		}
	}

	for i := 0; i < maxEventsPerStep; i++ {
		select {
		case event, ok := <-c.backend.Events():
			if !ok || c.handle(event) {
				c.log.Info("end of playback")
				return false, nil
			}
		default:
			return true, nil
		}
	}
	return true, nil
}

// handle applies a backend event and reports whether playback is over.
func (c *Core) handle(event Event) bool {
	switch event.Name {
	case EventTimePos:
		if c.media.Duration > 0 && event.Value.Kind == dispatch.KindNumber {
			c.setPos(event.Value.Number/c.media.Duration, false)
		}
	case EventDuration:
		if event.Value.Kind == dispatch.KindNumber {
			c.media.Duration = event.Value.Number
		}
	case EventPause:
		if event.Value.Flag != c.paused {
			c.paused = event.Value.Flag
			c.notify(dispatch.NewFlagNotification(dispatch.Pause, !c.paused, c.paused))
		}
	case EventEOF:
		return event.Value.Flag && !c.params.Loop.OrElse(false)
	case EventExit:
		return true
	}
	return false
}

func (c *Core) InitData() InitData {
	d := c.init.Clone()
	d.Params = c.params
	return d
}

func (c *Core) Parameters() parameters.Parameters {
	return c.params
}

func (c *Core) Media() Media {
	return c.media
}

// Position returns the playback position as a fraction of the duration.
func (c *Core) Position() float64 {
	return c.pos
}

// Playing reports whether the session has started playing.
func (c *Core) Playing() bool {
	return c.open && c.playing
}

func (c *Core) notify(n dispatch.Notification) {
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
}

func (c *Core) apply(property string, value any) {
	if err := c.backend.Set(property, value); err != nil {
		c.log.Warnf("set %s: %s", property, err)
	}
}

func (c *Core) command(args ...any) {
	if err := c.backend.Command(args...); err != nil {
		c.log.Warnf("%v: %s", args, err)
	}
}

// setPos records a new position. Explicit requests always notify, playback
// progress only when the position moved.
func (c *Core) setPos(fraction float64, explicit bool) {
	fraction = util.Clamp(fraction, 0, 1)
	if !explicit && fraction == c.pos {
		return
	}
	prev := c.pos
	c.pos = fraction
	c.notify(dispatch.NewNumberNotification(dispatch.Pos, prev, fraction))
}

func (c *Core) ReceiveCmd(cmd dispatch.Command) {
	if !c.open {
		c.log.Debugf("ignoring %s: player is closed", cmd)
		return
	}
	c.log.Debugf("command %s", cmd)

	switch cmd.Type {
	case dispatch.TogglePlay:
		// listeners react by closing the engine
		c.notify(dispatch.NewFlagNotification(dispatch.Play, true, false))
	case dispatch.TogglePause:
		c.paused = !c.paused
		c.apply("pause", c.paused)
		c.notify(dispatch.NewFlagNotification(dispatch.Pause, !c.paused, c.paused))
	case dispatch.ToggleStereoModeSwap:
		c.init.StereoModeSwap = !c.init.StereoModeSwap
		c.apply("vf", filterChain(c.init.StereoLayout, c.init.StereoLayoutSwap, c.init.StereoMode, c.init.StereoModeSwap, c.params.CropAspectRatio))
		c.notify(dispatch.NewFlagNotification(dispatch.StereoModeSwap, !c.init.StereoModeSwap, c.init.StereoModeSwap))
	case dispatch.ToggleFullscreen:
		c.setFlag(dispatch.Fullscreen, !c.params.Fullscreen.OrElse(false))
	case dispatch.ToggleLoop:
		c.setFlag(dispatch.Loop, !c.params.Loop.OrElse(false))
	case dispatch.ToggleAudioMute:
		c.setFlag(dispatch.AudioMute, !c.params.AudioMute.OrElse(false))
	case dispatch.SetFullscreenInhibitScreensaver:
		c.setFlag(dispatch.FullscreenInhibitScreensaver, cmd.Param.Flag)
	case dispatch.Center:
		c.apply("video-pan-x", 0.0)
		c.apply("video-pan-y", 0.0)
	case dispatch.Seek:
		c.command("seek", cmd.Param.Number, "relative")
		if c.media.Duration > 0 {
			c.setPos(c.pos+cmd.Param.Number/c.media.Duration, true)
		} else {
			c.setPos(c.pos, true)
		}
	case dispatch.SetPos:
		fraction := util.Clamp(cmd.Param.Number, 0, 1)
		c.command("seek", fraction*100, "absolute-percent")
		c.setPos(fraction, true)
	case dispatch.SetVideoStream:
		c.setStream(dispatch.VideoStream, &c.init.VideoStream, int(cmd.Param.Number), 0, c.media.VideoStreams-1)
	case dispatch.SetAudioStream:
		c.setStream(dispatch.AudioStream, &c.init.AudioStream, int(cmd.Param.Number), 0, c.media.AudioStreams-1)
	case dispatch.SetSubtitleStream:
		c.setStream(dispatch.SubtitleStream, &c.init.SubtitleStream, int(cmd.Param.Number), -1, c.media.SubtitleStreams-1)
	default:
		if t, ok := texts[cmd.Type]; ok {
			c.setText(t, cmd.Param.Text)
			return
		}
		if target, ok := numericCommands[cmd.Type]; ok {
			prop := numerics[target.note]
			v := cmd.Param.Number
			if target.relative {
				v += *prop.field(&c.params)
			}
			c.setNumber(prop, v)
			return
		}
		c.log.Warnf("unhandled command %s", cmd)
	}
}

func (c *Core) setFlag(note dispatch.NotificationType, v bool) {
	prop := flags[note]
	field := prop.field(&c.params)
	prev := field.OrElse(false)
	*field = mo.Some(v)
	c.apply(prop.property, prop.value(v))
	c.notify(dispatch.NewFlagNotification(note, prev, v))
}

func (c *Core) setText(prop text, v string) {
	field := prop.field(&c.params)
	prev := *field
	*field = v
	if v != "" {
		c.apply(prop.property, v)
	}
	c.notify(dispatch.NewTextNotification(prop.note, prev, v))
}

func (c *Core) setNumber(prop numeric, v float64) {
	if math.IsNaN(v) {
		return
	}
	field := prop.field(&c.params)
	prev := *field
	v = util.Clamp(v, prop.min, prop.max)
	*field = v

	if prop.property != "" {
		if value, ok := prop.value(v); ok {
			c.apply(prop.property, value)
		}
	}
	if prop.note == dispatch.CropAspectRatio {
		c.apply("vf", filterChain(c.init.StereoLayout, c.init.StereoLayoutSwap, c.init.StereoMode, c.init.StereoModeSwap, v))
	}
	c.notify(dispatch.NewNumberNotification(prop.note, prev, v))
}

func (c *Core) setStream(note dispatch.NotificationType, field *int, v, lo, hi int) {
	if hi >= lo {
		v = util.Clamp(v, lo, hi)
	}
	prev := *field
	*field = v

	switch note {
	case dispatch.VideoStream:
		c.apply("vid", v+1)
	case dispatch.AudioStream:
		c.apply("aid", v+1)
	case dispatch.SubtitleStream:
		if v < 0 {
			c.apply("sid", "no")
		} else {
			c.apply("sid", v+1)
		}
	}
	c.notify(dispatch.NewNumberNotification(note, float64(prev), float64(v)))
}
