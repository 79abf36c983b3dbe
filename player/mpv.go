package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/where"
)

const (
	socketWaitDelay = 100 * time.Millisecond
	eventBuffer     = 256
	quitTimeout     = 3 * time.Second
)

// MPV implements Backend by running mpv with its JSON-IPC interface.
type MPV struct {
	binary     string
	extraArgs  []string
	socketWait time.Duration

	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits
	listener   *eventListener
	mu         sync.Mutex // serializes socket requests
}

// NewMPV returns a backend configured from the player.* settings.
func NewMPV() *MPV {
	return &MPV{
		binary:     viper.GetString(key.PlayerBinary),
		extraArgs:  viper.GetStringSlice(key.PlayerExtraArgs),
		socketWait: time.Duration(viper.GetInt(key.PlayerSocketWait)) * time.Millisecond,
	}
}

// Start launches mpv paused on the resolved setup and probes the media.
func (m *MPV) Start(init InitData) (Media, error) {
	if m.cmd != nil {
		return Media{}, fmt.Errorf("mpv is already running")
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return Media{}, fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.App, randomBytes))

	args := append(Arguments(init, m.socketPath), m.extraArgs...)
	args = append(args, "--")
	args = append(args, inputs(init)...)

	binary := m.binary
	if binary == "" {
		binary = "mpv"
	}
	m.cmd = exec.Command(binary, args...)
	detach(m.cmd)

	log.Debugf("starting %s %s", binary, strings.Join(args, " "))
	if err := m.cmd.Start(); err != nil {
		m.cmd = nil
		return Media{}, fmt.Errorf("start mpv: %w", err)
	}

	// reap the process to prevent zombies
	m.exited = make(chan struct{})
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd, m.exited)

	if err := m.waitForSocket(); err != nil {
		m.kill()
		return Media{}, fmt.Errorf("mpv socket not ready: %w", err)
	}

	listener, err := listen(m.socketPath, eventBuffer)
	if err != nil {
		m.kill()
		return Media{}, err
	}
	m.listener = listener

	return m.probe(init), nil
}

// waitForSocket polls until the IPC socket accepts connections.
func (m *MPV) waitForSocket() error {
	deadline := time.Now().Add(m.socketWait)
	for time.Now().Before(deadline) {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %s", m.socketPath, m.socketWait)
}

// probe reads the media description. Properties that are not known yet are
// left zero and arrive later as events.
func (m *MPV) probe(init InitData) Media {
	media := Media{Title: title(init)}

	if duration, err := m.sendCommand("get_property", "duration"); err == nil {
		media.Duration = duration.Float()
	}

	tracks, err := m.sendCommand("get_property", "track-list")
	if err != nil {
		log.Warnf("read track list: %s", err)
		return media
	}
	for _, track := range tracks.Array() {
		switch track.Get("type").String() {
		case "video":
			media.VideoStreams++
		case "audio":
			media.AudioStreams++
		case "sub":
			media.SubtitleStreams++
		}
	}
	return media
}

func (m *MPV) Set(property string, value any) error {
	if m.cmd == nil {
		return fmt.Errorf("mpv is not running")
	}
	_, err := m.sendCommand("set_property", property, value)
	return err
}

func (m *MPV) Command(args ...any) error {
	if m.cmd == nil {
		return fmt.Errorf("mpv is not running")
	}
	_, err := m.sendCommand(args...)
	return err
}

func (m *MPV) Events() <-chan Event {
	if m.listener == nil {
		return nil
	}
	return m.listener.events
}

// Close asks mpv to quit, kills it when it does not, and removes the socket.
func (m *MPV) Close() error {
	if m.cmd == nil {
		return nil
	}

	if m.listener != nil {
		m.listener.Stop()
		m.listener = nil
	}

	_, _ = m.sendCommand("quit")
	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		log.Warn("mpv did not quit, killing it")
		_ = killProcess(m.cmd)
	}

	m.cmd = nil
	return m.removeSocket()
}

// removeSocket deletes the IPC socket. mpv usually unlinks it on quit.
func (m *MPV) removeSocket() error {
	if m.socketPath == "" {
		return nil
	}
	if err := os.Remove(m.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove mpv socket: %w", err)
	}
	return nil
}

func (m *MPV) kill() {
	select {
	case <-m.exited:
	default:
		log.Warn("killing mpv: socket never became ready")
		_ = killProcess(m.cmd)
	}
	m.cmd = nil
	if err := m.removeSocket(); err != nil {
		log.Warn(err)
	}
}

// Arguments returns the mpv options for a resolved setup, excluding inputs.
func Arguments(init InitData, socketPath string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socketPath,
		"--title=" + constant.App + ": " + title(init),
		"--force-window=yes",
		"--keep-open=yes",
		"--pause",
	}

	if init.StereoLayout == stereo.Separate && len(init.Sources) == 2 {
		args = append(args,
			"--external-file="+init.Sources[1],
			"--lavfi-complex=[vid1][vid2]hstack[vo];[aid1]anull[ao]",
		)
	} else {
		args = append(args,
			fmt.Sprintf("--vid=%d", init.VideoStream+1),
			fmt.Sprintf("--aid=%d", init.AudioStream+1),
		)
	}
	if init.SubtitleStream < 0 {
		args = append(args, "--sid=no")
	} else {
		args = append(args, fmt.Sprintf("--sid=%d", init.SubtitleStream+1))
	}

	if vf := filterChain(init.StereoLayout, init.StereoLayoutSwap, init.StereoMode, init.StereoModeSwap, init.Params.CropAspectRatio); vf != "" {
		args = append(args, "--vf="+vf)
	}

	if device, ok := init.Device.Get(); ok {
		if opts := device.DemuxerOptions(); len(opts) > 0 {
			args = append(args, "--demuxer-lavf-o="+strings.Join(opts, ","))
		}
		args = append(args, "--cache=no")
	}

	return append(args, properties(init.Params)...)
}

// inputs lists what mpv should open. The second source of a separate
// layout is attached as an external file instead.
func inputs(init InitData) []string {
	if device, ok := init.Device.Get(); ok {
		return []string{device.Source()}
	}
	if len(init.Sources) == 2 {
		return init.Sources[:1]
	}
	return init.Sources
}

func title(init InitData) string {
	if device, ok := init.Device.Get(); ok {
		return sanitizeTitle(device.Kind.String() + " device")
	}
	if len(init.Sources) == 0 {
		return ""
	}
	return sanitizeTitle(filepath.Base(init.Sources[0]))
}
