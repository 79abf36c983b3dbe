package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
	"github.com/stereoplay/stereoplay/window"
)

const defaultRefresh = 200 * time.Millisecond

type (
	tickMsg         struct{}
	windowClosedMsg struct{}
	reportedMsg     struct{ err error }
)

// statefulBubble renders window snapshots and turns keys into window actions.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	window  *window.Window
	errors  <-chan error
	refresh time.Duration

	snap   snapshot
	dialog string
	field  panel.Field

	// components
	recentC   list.Model
	dialogsC  list.Model
	fieldsC   list.Model
	inputC    textinput.Model
	progressC progress.Model
	helpC     help.Model

	lastError     error
	width, height int
	notifier      *notifier
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{errorState, editState, openState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
		return
	}
	b.setState(playerState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.recentC, &b.dialogsC, &b.fieldsC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.progressC.Width = listWidth
	b.inputC.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

// act runs fn on the window goroutine and answers with a fresh snapshot.
// Disabled controls become a notice instead of an error.
func (b *statefulBubble) act(fn func(w *window.Window) error) tea.Cmd {
	w := b.window
	return func() tea.Msg {
		var (
			err  error
			snap snapshot
		)
		if !w.Do(func() {
			err = fn(w)
			snap = takeSnapshot(w)
		}) {
			return windowClosedMsg{}
		}

		switch {
		case errors.Is(err, panel.ErrDisabled):
			return noticeMsg(err.Error())
		case err != nil:
			return err
		default:
			return snap
		}
	}
}

func (b *statefulBubble) refreshSnapshot() tea.Cmd {
	return b.act(func(*window.Window) error { return nil })
}

func (b *statefulBubble) tick() tea.Cmd {
	return tea.Tick(b.refresh, func(time.Time) tea.Msg { return tickMsg{} })
}

// waitForError blocks until the window reports an error.
func (b *statefulBubble) waitForError() tea.Cmd {
	errs := b.errors
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return reportedMsg{err: err}
	}
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		window:        options.Window,
		errors:        options.Errors,
		refresh:       options.Refresh,
		notifier:      &notifier{},
	}
	if bubble.refresh <= 0 {
		bubble.refresh = defaultRefresh
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.CharLimit = 4096

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	bubble.recentC = makeList("Recent", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Yellow).Padding(0, 1),
		),
	})
	bubble.recentC.SetStatusBarItemName("file", "files")

	bubble.dialogsC = makeList("Adjustments", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1),
		),
	})

	bubble.fieldsC = makeList("Settings", false, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
		),
	})

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		log.Debugf("terminal size: %s", err)
	}

	bubble.setState(playerState)
	return &bubble
}
