package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/window"
)

func init() {
	filesystem.SetMemMapFs()
	for _, name := range []string{"/videos/avatar.sbs.mkv", "/videos/left.mkv", "/videos/right.mkv"} {
		if err := filesystem.API().WriteFile(name, []byte("data"), 0644); err != nil {
			panic(err)
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

// send feeds msg to the bubble and then feeds back what its command
// produces, one level deep. Timers are not waited for.
func send(b *statefulBubble, msg tea.Msg) {
	_, cmd := b.Update(msg)
	for _, msg := range collect(cmd) {
		_, _ = b.Update(msg)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func newTestBubble() (*statefulBubble, *window.Window, func()) {
	viper.Set(key.RecentEnable, true)
	viper.Set(key.RecentLimit, 10)

	reporter := NewReporter()
	w := window.New(window.Options{
		Init:     player.NewInitData(),
		Backend:  newFakeBackend(),
		Store:    settings.NewMemory(),
		Reporter: reporter,
		Recents:  history.Recorder{},
		Interval: time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = w.Run(ctx)
	}()

	b := newBubble(&Options{Window: w, Errors: reporter, Refresh: time.Hour})
	send(b, b.refreshSnapshot()())
	return b, w, func() {
		cancel()
		<-stopped
	}
}

func TestPlayerView(t *testing.T) {
	Convey("Given a terminal front end on an empty window", t, func() {
		b, _, stop := newTestBubble()
		defer stop()

		So(b.state, ShouldEqual, playerState)
		So(b.snap.hasInput, ShouldBeFalse)
		So(b.View(), ShouldContainSubstring, "Nothing is open")

		Convey("Play is refused with a notice", func() {
			send(b, space)
			So(b.notifier.notice, ShouldContainSubstring, "disabled")
		})

		Convey("Opening a file shows it", func() {
			send(b, runes("O"))
			So(b.state, ShouldEqual, openState)

			b.inputC.SetValue("/videos/avatar.sbs.mkv")
			send(b, enter)
			So(b.state, ShouldEqual, playerState)
			So(b.snap.hasInput, ShouldBeTrue)
			So(b.snap.layout, ShouldEqual, stereo.LeftRight)
			So(b.snap.lastDir, ShouldEqual, "/videos")
			So(b.View(), ShouldContainSubstring, "left-right")

			Convey("Space starts playback, then pauses it", func() {
				send(b, space)
				So(b.snap.playing, ShouldBeTrue)
				So(b.snap.paused, ShouldBeFalse)

				send(b, space)
				So(b.snap.paused, ShouldBeTrue)

				send(b, space)
				So(b.snap.paused, ShouldBeFalse)
				So(b.snap.playing, ShouldBeTrue)
			})

			Convey("The input layout cycles and skips separate", func() {
				send(b, runes("i"))
				So(b.snap.layout, ShouldEqual, stereo.LeftRightHalf)
				send(b, runes("i"))
				So(b.snap.layout, ShouldEqual, stereo.EvenOddRows)
				send(b, runes("i"))
				So(b.snap.layout, ShouldEqual, stereo.Mono)
				send(b, runes("i"))
				So(b.snap.layout, ShouldEqual, stereo.TopBottom)
			})

			Convey("Parallax is disabled until playback starts", func() {
				send(b, runes("+"))
				So(b.notifier.notice, ShouldContainSubstring, "disabled")
				So(b.snap.parallax, ShouldEqual, 0)
			})

			Convey("Parallax and ghostbust move in small steps", func() {
				send(b, space)
				send(b, runes("+"))
				send(b, runes("+"))
				So(b.snap.parallax, ShouldAlmostEqual, 0.02, 1e-9)
				send(b, runes(">"))
				So(b.snap.ghostbust, ShouldEqual, 1)
			})

			Convey("Swap toggles the output eyes while playing", func() {
				send(b, space)
				send(b, runes("w"))
				So(b.snap.modeSwap, ShouldBeTrue)
				So(b.snap.layoutSwap, ShouldBeFalse)
			})

			Convey("Audio streams wrap around", func() {
				send(b, runes("a"))
				So(b.snap.audio, ShouldEqual, 1)
				send(b, runes("a"))
				So(b.snap.audio, ShouldEqual, 0)
			})

			Convey("The recent list has the file", func() {
				send(b, runes("r"))
				So(b.state, ShouldEqual, recentState)
				So(len(b.recentC.Items()), ShouldBeGreaterThan, 0)

				entry, ok := selected[*history.Entry](&b.recentC)
				So(ok, ShouldBeTrue)
				So(entry.Sources, ShouldResemble, []string{"/videos/avatar.sbs.mkv"})

				send(b, esc)
				So(b.state, ShouldEqual, playerState)
			})
		})

		Convey("Two sources open as separate streams", func() {
			send(b, runes("O"))
			b.inputC.SetValue("/videos/left.mkv ; /videos/right.mkv")
			send(b, enter)
			So(b.snap.layout, ShouldEqual, stereo.Separate)

			send(b, runes("i"))
			So(b.snap.layout, ShouldEqual, stereo.Separate)
		})

		Convey("A missing file ends in the error view", func() {
			send(b, runes("O"))
			b.inputC.SetValue("/videos/missing.mkv")
			send(b, enter)
			send(b, b.waitForError()())
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "missing.mkv")

			send(b, esc)
			So(b.state, ShouldEqual, playerState)
		})
	})
}

func TestDialogs(t *testing.T) {
	Convey("Given an open file", t, func() {
		b, _, stop := newTestBubble()
		defer stop()

		send(b, runes("O"))
		b.inputC.SetValue("/videos/avatar.sbs.mkv")
		send(b, enter)

		Convey("The adjustments list every dialog", func() {
			send(b, runes("d"))
			So(b.state, ShouldEqual, dialogsState)
			So(len(b.dialogsC.Items()), ShouldEqual, len(b.snap.dialogs))

			Convey("A number is edited in its displayed unit", func() {
				send(b, enter)
				So(b.state, ShouldEqual, fieldsState)
				So(b.dialog, ShouldEqual, "color")

				send(b, enter)
				So(b.state, ShouldEqual, editState)
				So(b.field.Name, ShouldEqual, "contrast")

				b.inputC.SetValue("25")
				send(b, enter)
				So(b.state, ShouldEqual, fieldsState)

				d, ok := b.snap.dialog("color")
				So(ok, ShouldBeTrue)
				So(d.fields[0].value, ShouldResemble, dispatch.Number(0.25))
			})

			Convey("Garbage is refused with a notice", func() {
				send(b, enter)
				send(b, enter)
				b.inputC.SetValue("a lot")
				send(b, enter)
				So(b.state, ShouldEqual, editState)
				So(b.notifier.notice, ShouldContainSubstring, "not a number")

				send(b, esc)
				So(b.state, ShouldEqual, fieldsState)
				send(b, esc)
				So(b.state, ShouldEqual, dialogsState)
				send(b, esc)
				So(b.state, ShouldEqual, playerState)
			})
		})
	})
}

func TestNotifier(t *testing.T) {
	Convey("Given a notifier", t, func() {
		n := &notifier{}
		So(n.View("a\nb"), ShouldEqual, "a\nb")

		cmd := n.Update(noticeMsg("saved"))
		So(cmd, ShouldNotBeNil)
		So(n.View("a\nb"), ShouldContainSubstring, "saved")

		Convey("An outdated clear keeps a newer notice", func() {
			n.Update(clearNoticeMsg{at: n.notifiedAt.Add(-time.Second)})
			So(n.notice, ShouldEqual, "saved")

			n.Update(clearNoticeMsg{at: n.notifiedAt})
			So(n.notice, ShouldBeEmpty)
		})
	})
}

func TestNext(t *testing.T) {
	Convey("next wraps around", t, func() {
		So(next([]int{1, 2, 3}, 2), ShouldEqual, 3)
		So(next([]int{1, 2, 3}, 3), ShouldEqual, 1)
		So(next([]int{1, 2, 3}, 7), ShouldEqual, 1)
	})
}
