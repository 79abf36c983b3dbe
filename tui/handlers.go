package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/window"
)

const (
	parallaxStep  = 0.01
	ghostbustStep = 1
)

// sourceSeparator splits the two sources of a separate left/right input.
const sourceSeparator = ";"

func (b *statefulBubble) loadRecent() error {
	entries, err := history.List()
	if err != nil {
		return err
	}

	b.recentC.SetItems(lo.Map(entries, func(e *history.Entry, _ int) list.Item {
		return &listItem{internal: e}
	}))
	return nil
}

func (b *statefulBubble) loadDialogs() {
	b.dialogsC.SetItems(lo.Map(b.snap.dialogs, func(d dialogView, _ int) list.Item {
		return &listItem{internal: d}
	}))
}

// loadFields lists the fields of the selected dialog, keeping the cursor.
func (b *statefulBubble) loadFields() {
	d, ok := b.snap.dialog(b.dialog)
	if !ok {
		return
	}
	b.fieldsC.Title = d.title
	b.fieldsC.SetItems(lo.Map(d.fields, func(f fieldView, _ int) list.Item {
		return &listItem{internal: f}
	}))
}

// togglePlay starts, resumes or pauses, whichever the controls allow.
func (b *statefulBubble) togglePlay() tea.Cmd {
	return b.act(func(w *window.Window) error {
		if w.Controls.State().Play {
			return w.Controls.Play()
		}
		return w.Controls.Pause()
	})
}

func (b *statefulBubble) stop() tea.Cmd {
	return b.act(func(w *window.Window) error { return w.Controls.Stop() })
}

func (b *statefulBubble) seek(step panel.SeekStep, forward bool) tea.Cmd {
	return b.act(func(w *window.Window) error { return w.Controls.Seek(step, forward) })
}

// cycleInput steps through the layouts the open sources can have: two
// sources are always separate, a single one never is.
func (b *statefulBubble) cycleInput() tea.Cmd {
	return b.act(func(w *window.Window) error {
		separate := len(w.InitData().Sources) == 2
		layouts := lo.Filter(stereo.Layouts(), func(l stereo.Layout, _ int) bool {
			return (l == stereo.Separate) == separate
		})
		layout, swap := w.InOut.Input()
		return w.InOut.SelectInput(next(layouts, layout), swap)
	})
}

func (b *statefulBubble) cycleOutput() tea.Cmd {
	return b.act(func(w *window.Window) error {
		mode, swap := w.InOut.Output()
		return w.InOut.SelectOutput(next(stereo.Modes(), mode), swap)
	})
}

func (b *statefulBubble) cycleAudio() tea.Cmd {
	return b.act(func(w *window.Window) error {
		streams := w.Media().AudioStreams
		if streams < 2 {
			return fmt.Errorf("%w: only one audio stream", panel.ErrDisabled)
		}
		return w.InOut.SelectAudioStream((w.InOut.AudioStream() + 1) % streams)
	})
}

func (b *statefulBubble) nudgeParallax(delta float64) tea.Cmd {
	return b.act(func(w *window.Window) error {
		return w.InOut.SetParallax(w.InOut.Parallax() + delta)
	})
}

func (b *statefulBubble) nudgeGhostbust(delta int) tea.Cmd {
	return b.act(func(w *window.Window) error {
		return w.InOut.SetGhostbustPercent(w.InOut.GhostbustPercent() + delta)
	})
}

func (b *statefulBubble) toggleLoop() tea.Cmd {
	return b.act(func(w *window.Window) error {
		if !w.Playing() {
			return panel.ErrDisabled
		}
		w.Link().SendCmd(dispatch.NewCommand(dispatch.ToggleLoop))
		return nil
	})
}

// openSources opens what the user typed. Failures reach the error view
// through the window reporter.
func (b *statefulBubble) openSources(input string) tea.Cmd {
	sources := lo.Compact(lo.Map(strings.Split(input, sourceSeparator), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(sources) == 0 {
		return func() tea.Msg { return noticeMsg("nothing to open") }
	}

	return b.act(func(w *window.Window) error {
		if err := w.Open(sources...); err == nil && !player.IsRemote(sources[0]) {
			w.SetLastDir(filepath.Dir(sources[0]))
		}
		return nil
	})
}

func (b *statefulBubble) openEntry(entry *history.Entry) tea.Cmd {
	sources := entry.Sources
	return b.act(func(w *window.Window) error {
		_ = w.Open(sources...)
		return nil
	})
}

func (b *statefulBubble) removeEntry(entry *history.Entry) tea.Cmd {
	if err := history.Remove(entry); err != nil {
		return func() tea.Msg { return err }
	}
	if err := b.loadRecent(); err != nil {
		return func() tea.Msg { return err }
	}
	return func() tea.Msg { return noticeMsg("removed " + entry.Title) }
}

// setField changes a dialog field on the window goroutine.
func (b *statefulBubble) setField(dialog, name string, v dispatch.Value) tea.Cmd {
	return b.act(func(w *window.Window) error {
		d := w.Dialog(dialog)
		if d == nil {
			return fmt.Errorf("unknown dialog %q", dialog)
		}
		return d.Set(name, v)
	})
}

// editValue converts the edit input into a value of the edited field.
func (b *statefulBubble) editValue(input string) (dispatch.Value, error) {
	input = strings.TrimSpace(input)
	switch b.field.Kind {
	case dispatch.KindText:
		return dispatch.Text(input), nil
	case dispatch.KindNumber:
		f, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return dispatch.None(), fmt.Errorf("%s: %q is not a number", b.field.Label, input)
		}
		return dispatch.Number(b.field.Parse(f)), nil
	default:
		return dispatch.None(), fmt.Errorf("%s cannot be edited", b.field.Label)
	}
}

// startEdit fills the input with the displayed value of f.
func (b *statefulBubble) startEdit(f fieldView) tea.Cmd {
	if f.field.Kind == dispatch.KindFlag {
		return b.setField(b.dialog, f.field.Name, dispatch.Flag(!f.value.Flag))
	}

	b.field = f.field
	b.inputC.Prompt = f.field.Label + ": "
	b.inputC.Placeholder = ""
	switch f.value.Kind {
	case dispatch.KindNumber:
		b.inputC.SetValue(strconv.FormatFloat(f.field.Display(f.value.Number), 'f', -1, 64))
	case dispatch.KindText:
		b.inputC.SetValue(f.value.Text)
	default:
		b.inputC.SetValue("")
	}
	b.inputC.CursorEnd()
	b.newState(editState)
	return b.inputC.Focus()
}

func (b *statefulBubble) startOpen() tea.Cmd {
	b.inputC.Prompt = "Open: "
	b.inputC.Placeholder = "file, URL or left" + sourceSeparator + "right"
	b.inputC.SetValue("")
	if b.snap.lastDir != "" {
		b.inputC.SetValue(b.snap.lastDir + string(filepath.Separator))
	}
	b.inputC.CursorEnd()
	b.newState(openState)
	return b.inputC.Focus()
}
