package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/request"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/where"
	"github.com/stereoplay/stereoplay/window"
)

// addSessionFlags registers the flags describing how the first session is
// opened. Anything left unset is detected or taken from the preferences.
func addSessionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "Input layout, optionally followed by \",swap\"")
	f.StringP("output", "o", "", "Output mode, optionally followed by \",swap\"")
	f.BoolP("swap", "s", false, "Swap the left and right eye on output")
	f.Float64("parallax", 0, "Parallax adjustment in [-1,1]")
	f.Float64("ghostbust", 0, "Ghostbusting amount in [0,1]")
	f.Float64("contrast", 0, "Contrast in [-1,1]")
	f.Float64("brightness", 0, "Brightness in [-1,1]")
	f.Float64("hue", 0, "Hue in [-1,1]")
	f.Float64("saturation", 0, "Saturation in [-1,1]")
	f.String("crosstalk", "", "Display crosstalk levels as r,g,b in [0,1]")
	f.Float64("zoom", 0, "Zoom for wide videos in [0,1]")
	f.Int("audio-stream", 0, "Zero based audio stream")
	f.Int("video-stream", 0, "Zero based video stream")
	f.Int("subtitle-stream", -1, "Zero based subtitle stream, -1 disables subtitles")
	f.BoolP("fullscreen", "f", false, "Start in fullscreen")
	f.BoolP("loop", "l", false, "Loop playback")
	f.String("device", "", "Capture from a device instead: default, firewire or x11, optionally followed by =<device>")
	f.String("device-size", "", "Requested device frame size as WxH")
	f.String("device-rate", "", "Requested device frame rate as N/D")
	f.Bool("device-mjpeg", false, "Request MJPEG frames from the default device")

	lo.Must0(cmd.RegisterFlagCompletionFunc("input", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(stereo.Layouts(), func(l stereo.Layout, _ int) string { return l.String() }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(stereo.Modes(), func(m stereo.Mode, _ int) string { return m.String() }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("device", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"default", "firewire", "x11"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// initData turns the session flags and sources into the setup of the first
// session.
func initData(cmd *cobra.Command, sources []string) (player.InitData, error) {
	f := cmd.Flags()
	init := player.NewInitData()
	init.Sources = sources

	if f.Changed("input") {
		layout, swap, err := stereo.DecodeLayout(lo.Must(f.GetString("input")))
		if err != nil {
			return init, err
		}
		init.StereoLayout, init.StereoLayoutSwap, init.StereoLayoutOverride = layout, swap, true
	}
	if f.Changed("output") {
		mode, swap, err := stereo.DecodeMode(lo.Must(f.GetString("output")))
		if err != nil {
			return init, err
		}
		init.StereoMode, init.StereoModeSwap, init.StereoModeOverride = mode, swap, true
	}
	if lo.Must(f.GetBool("swap")) {
		init.StereoModeSwap = !init.StereoModeSwap
		init.StereoModeOverride = true
	}

	for _, p := range []struct {
		flag   string
		field  *float64
		lo, hi float64
	}{
		{"parallax", &init.Params.Parallax, -1, 1},
		{"ghostbust", &init.Params.Ghostbust, 0, 1},
		{"contrast", &init.Params.Contrast, -1, 1},
		{"brightness", &init.Params.Brightness, -1, 1},
		{"hue", &init.Params.Hue, -1, 1},
		{"saturation", &init.Params.Saturation, -1, 1},
		{"zoom", &init.Params.Zoom, 0, 1},
	} {
		if !f.Changed(p.flag) {
			continue
		}
		v := lo.Must(f.GetFloat64(p.flag))
		if v < p.lo || v > p.hi {
			return init, fmt.Errorf("--%s must be in [%g,%g], got %g", p.flag, p.lo, p.hi, v)
		}
		*p.field = v
	}

	// levels outside [0,1] are replaced by the remembered ones
	if f.Changed("crosstalk") {
		levels, err := parseCrosstalk(lo.Must(f.GetString("crosstalk")))
		if err != nil {
			return init, err
		}
		init.Params.CrosstalkR, init.Params.CrosstalkG, init.Params.CrosstalkB = levels[0], levels[1], levels[2]
	}

	init.AudioStream = lo.Must(f.GetInt("audio-stream"))
	init.VideoStream = lo.Must(f.GetInt("video-stream"))
	init.SubtitleStream = lo.Must(f.GetInt("subtitle-stream"))
	if init.AudioStream < 0 || init.VideoStream < 0 {
		return init, fmt.Errorf("stream indices must not be negative")
	}

	if f.Changed("fullscreen") {
		init.Params.Fullscreen = mo.Some(lo.Must(f.GetBool("fullscreen")))
	}
	if f.Changed("loop") {
		init.Params.Loop = mo.Some(lo.Must(f.GetBool("loop")))
	}

	if f.Changed("device") {
		req, err := deviceRequest(
			lo.Must(f.GetString("device")),
			lo.Must(f.GetString("device-size")),
			lo.Must(f.GetString("device-rate")),
			lo.Must(f.GetBool("device-mjpeg")),
		)
		if err != nil {
			return init, err
		}
		if len(sources) > 0 {
			return init, fmt.Errorf("--device cannot be combined with sources")
		}
		init.Device = mo.Some(req)
	}

	if len(init.Sources) > 2 {
		return init, fmt.Errorf("at most two sources can be opened, got %d", len(init.Sources))
	}
	return init, nil
}

func parseCrosstalk(s string) ([3]float64, error) {
	var levels [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return levels, fmt.Errorf("crosstalk must be given as r,g,b, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return levels, fmt.Errorf("crosstalk level %q: %w", p, err)
		}
		levels[i] = v
	}
	return levels, nil
}

// deviceRequest parses "kind[=device]" plus the optional frame size and rate.
func deviceRequest(device, size, rate string, mjpeg bool) (player.DeviceRequest, error) {
	var req player.DeviceRequest

	name, node, _ := strings.Cut(device, "=")
	kind, err := player.ParseDeviceKind(name)
	if err != nil {
		return req, err
	}
	req.Kind, req.Device, req.RequestMJPEG = kind, node, mjpeg

	if size != "" {
		if req.Width, req.Height, err = player.ParseFrameSize(size); err != nil {
			return req, err
		}
	}
	if rate != "" {
		if req.FrameRateNum, req.FrameRateDen, err = player.ParseFrameRate(rate); err != nil {
			return req, err
		}
	}
	return req, nil
}

// session is a window running on its own goroutine.
type session struct {
	window *window.Window
	store  settings.Store
	done   chan struct{}
}

// startSession creates the window for init and runs it until ctx is done.
// The sources or device of init are opened on the window goroutine; open
// failures go to reporter.
func startSession(ctx context.Context, init player.InitData, reporter window.Reporter) (*session, error) {
	store, err := settings.Open()
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}

	w := window.New(window.Options{
		Init:     init,
		Backend:  player.NewMPV(),
		Store:    store,
		Reporter: reporter,
		Recents:  history.Recorder{},
	})

	s := &session{window: w, store: store, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		if err := w.Run(ctx); err != nil {
			log.Error(err)
		}
	}()

	if init.HasInput() {
		w.Post(func() { _ = openInitial(w, init) })
	}

	if viper.GetBool(key.RequestsWatch) {
		go func() {
			err := request.Watch(ctx, where.Requests(), func(r request.Request) {
				log.Infof("open request %s: %s", r.ID, strings.Join(r.Sources, ", "))
				w.Post(func() { _ = w.Open(r.Sources...) })
			})
			if err != nil {
				log.Warn(err)
			}
		}()
	}

	return s, nil
}

// openInitial opens the device or sources of init. It must run on the
// window goroutine.
func openInitial(w *window.Window, init player.InitData) error {
	if req, ok := init.Device.Get(); ok {
		return w.OpenDevice(req)
	}
	if err := w.Open(init.Sources...); err != nil {
		return err
	}
	if !player.IsRemote(init.Sources[0]) {
		if dir, err := filepath.Abs(filepath.Dir(init.Sources[0])); err == nil {
			w.SetLastDir(dir)
		}
	}
	return nil
}

// Wait blocks until the window stopped and releases the settings store.
func (s *session) Wait() error {
	<-s.done
	return s.store.Close()
}
