package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stereoplay/stereoplay/style"
)

const noticeLifetime = 3 * time.Second

// noticeMsg is a short message shown next to the view.
type noticeMsg string

type clearNoticeMsg struct {
	at time.Time
}

// notifier displays non-blocking notices that fade after a while.
type notifier struct {
	notice     string
	notifiedAt time.Time
}

func clearNotice(at time.Time) tea.Cmd {
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return clearNoticeMsg{at: at}
	})
}

func (n *notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case noticeMsg:
		n.notice = string(msg)
		n.notifiedAt = time.Now()
		return clearNotice(n.notifiedAt)
	case clearNoticeMsg:
		// a newer notice keeps its own timer
		if msg.at.Equal(n.notifiedAt) {
			n.notice = ""
		}
	}
	return nil
}

// View appends the current notice to the last line of content.
func (n *notifier) View(content string) string {
	if n.notice == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(n.notice)
	return strings.Join(lines, "\n")
}
