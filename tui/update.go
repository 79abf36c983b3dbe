package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/window"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.refreshSnapshot(), b.waitForError(), b.tick())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case snapshot:
		b.snap = msg
		switch b.state {
		case dialogsState:
			b.loadDialogs()
		case fieldsState:
			b.loadFields()
		}
		return b, cmd
	case tickMsg:
		return b, tea.Batch(b.refreshSnapshot(), b.tick())
	case windowClosedMsg:
		return b, tea.Quit
	case reportedMsg:
		b.raiseError(msg.err)
		return b, b.waitForError()
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back) && b.state != playerState:
			b.inputC.Blur()
			b.previousState()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case playerState:
		stateCmd = b.updatePlayer(msg)
	case recentState:
		stateCmd = b.updateRecent(msg)
	case openState:
		stateCmd = b.updateOpen(msg)
	case dialogsState:
		stateCmd = b.updateDialogs(msg)
	case fieldsState:
		stateCmd = b.updateFields(msg)
	case editState:
		stateCmd = b.updateEdit(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	k := b.keymap
	switch {
	case bubblesKey.Matches(keyMsg, k.quit):
		return tea.Quit
	case bubblesKey.Matches(keyMsg, k.play):
		return b.togglePlay()
	case bubblesKey.Matches(keyMsg, k.stop):
		return b.stop()
	case bubblesKey.Matches(keyMsg, k.seekBack):
		return b.seek(panel.SeekShort, false)
	case bubblesKey.Matches(keyMsg, k.seekForward):
		return b.seek(panel.SeekShort, true)
	case bubblesKey.Matches(keyMsg, k.seekBackMedium):
		return b.seek(panel.SeekMedium, false)
	case bubblesKey.Matches(keyMsg, k.seekForwardMedium):
		return b.seek(panel.SeekMedium, true)
	case bubblesKey.Matches(keyMsg, k.seekBackLong):
		return b.seek(panel.SeekLong, false)
	case bubblesKey.Matches(keyMsg, k.seekForwardLong):
		return b.seek(panel.SeekLong, true)
	case bubblesKey.Matches(keyMsg, k.input):
		return b.cycleInput()
	case bubblesKey.Matches(keyMsg, k.output):
		return b.cycleOutput()
	case bubblesKey.Matches(keyMsg, k.swap):
		return b.act(func(w *window.Window) error { return w.InOut.ToggleSwap() })
	case bubblesKey.Matches(keyMsg, k.audio):
		return b.cycleAudio()
	case bubblesKey.Matches(keyMsg, k.parallaxDown):
		return b.nudgeParallax(-parallaxStep)
	case bubblesKey.Matches(keyMsg, k.parallaxUp):
		return b.nudgeParallax(parallaxStep)
	case bubblesKey.Matches(keyMsg, k.ghostbustDown):
		return b.nudgeGhostbust(-ghostbustStep)
	case bubblesKey.Matches(keyMsg, k.ghostbustUp):
		return b.nudgeGhostbust(ghostbustStep)
	case bubblesKey.Matches(keyMsg, k.fullscreen):
		return b.act(func(w *window.Window) error { return w.InOut.ToggleFullscreen() })
	case bubblesKey.Matches(keyMsg, k.center):
		return b.act(func(w *window.Window) error { return w.InOut.Center() })
	case bubblesKey.Matches(keyMsg, k.loop):
		return b.toggleLoop()
	case bubblesKey.Matches(keyMsg, k.open):
		return b.startOpen()
	case bubblesKey.Matches(keyMsg, k.recent):
		if err := b.loadRecent(); err != nil {
			b.raiseError(err)
			return nil
		}
		b.newState(recentState)
	case bubblesKey.Matches(keyMsg, k.dialogs):
		b.loadDialogs()
		b.newState(dialogsState)
	case bubblesKey.Matches(keyMsg, k.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}
	return nil
}

// selected returns the internal value of the selected list item.
func selected[T any](l *list.Model) (T, bool) {
	var zero T
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return zero, false
	}
	v, ok := item.internal.(T)
	return v, ok
}

func (b *statefulBubble) updateRecent(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			entry, ok := selected[*history.Entry](&b.recentC)
			if !ok {
				return nil
			}
			b.previousState()
			return b.openEntry(entry)
		case bubblesKey.Matches(msg, b.keymap.remove):
			entry, ok := selected[*history.Entry](&b.recentC)
			if !ok {
				return nil
			}
			return b.removeEntry(entry)
		}
	}

	var cmd tea.Cmd
	b.recentC, cmd = b.recentC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateOpen(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		input := b.inputC.Value()
		b.inputC.Blur()
		b.previousState()
		return b.openSources(input)
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDialogs(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		d, ok := selected[dialogView](&b.dialogsC)
		if !ok {
			return nil
		}
		b.dialog = d.name
		b.fieldsC.ResetSelected()
		b.loadFields()
		b.newState(fieldsState)
		return nil
	}

	var cmd tea.Cmd
	b.dialogsC, cmd = b.dialogsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateFields(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		f, ok := selected[fieldView](&b.fieldsC)
		if !ok {
			return nil
		}
		return b.startEdit(f)
	}

	var cmd tea.Cmd
	b.fieldsC, cmd = b.fieldsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateEdit(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		v, err := b.editValue(b.inputC.Value())
		if err != nil {
			return func() tea.Msg { return noticeMsg(err.Error()) }
		}
		b.inputC.Blur()
		b.previousState()
		return b.setField(b.dialog, b.field.Name, v)
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
