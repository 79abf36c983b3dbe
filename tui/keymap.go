package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	play, stop,
	seekBack, seekForward,
	seekBackMedium, seekForwardMedium,
	seekBackLong, seekForwardLong,
	input, output, swap, audio,
	parallaxDown, parallaxUp,
	ghostbustDown, ghostbustUp,
	fullscreen, center, loop,
	open, recent, dialogs,
	confirm, remove, back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		play: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "seek back"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "seek forward"),
		),
		seekBackMedium: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "seek back 1m"),
		),
		seekForwardMedium: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "seek forward 1m"),
		),
		seekBackLong: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "seek back 10m"),
		),
		seekForwardLong: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "seek forward 10m"),
		),
		input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input layout"),
		),
		output: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "output mode"),
		),
		swap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "swap eyes"),
		),
		audio: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "audio stream"),
		),
		parallaxDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "parallax down"),
		),
		parallaxUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "parallax up"),
		),
		ghostbustDown: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "ghostbust down"),
		),
		ghostbustUp: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "ghostbust up"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center"),
		),
		loop: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loop"),
		),
		open: key.NewBinding(
			key.WithKeys("O", "ctrl+o"),
			key.WithHelp("O", "open"),
		),
		recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recent"),
		),
		dialogs: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "adjustments"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case playerState:
		return h(k.play, k.stop, k.seekForward, k.open, k.recent, k.dialogs, k.showHelp, k.quit),
			h(k.play, k.stop,
				k.seekBack, k.seekForward, k.seekBackMedium, k.seekForwardMedium, k.seekBackLong, k.seekForwardLong,
				k.input, k.output, k.swap, k.audio,
				k.parallaxDown, k.parallaxUp, k.ghostbustDown, k.ghostbustUp,
				k.fullscreen, k.center, k.loop,
				k.open, k.recent, k.dialogs, k.quit)
	case recentState:
		return to2(h(k.confirm, k.remove, k.back))
	case openState, editState:
		return to2(h(k.confirm, k.back))
	case dialogsState, fieldsState:
		return to2(h(k.confirm, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
