package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/style"
)

// listItem implements the list.Item interface, wrapping the models shown in lists.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *history.Entry:
		title := e.Title
		if len(e.Sources) > 0 && player.IsRemote(e.Sources[0]) {
			title = icon.Get(icon.Link) + " " + title
		}
		return title
	case dialogView:
		return e.title
	case fieldView:
		return fmt.Sprintf("%s: %s", e.field.Label, formatValue(e.field, e.value))
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *history.Entry:
		var sb strings.Builder
		sb.WriteString("opened " + humanize.Time(e.OpenedAt))
		if e.Position > 0 {
			sb.WriteString(fmt.Sprintf(", stopped at %d%%", int(e.Position*100)))
		}
		if len(e.Sources) > 1 {
			sb.WriteString(style.Faint(fmt.Sprintf(" (%d sources)", len(e.Sources))))
		}
		return sb.String()
	case dialogView:
		return fmt.Sprintf("%d settings", len(e.fields))
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *history.Entry:
		return e.Title
	case dialogView:
		return e.title
	case fieldView:
		return e.field.Label
	default:
		return ""
	}
}

// formatValue renders a field value in its displayed unit.
func formatValue(f panel.Field, v dispatch.Value) string {
	switch v.Kind {
	case dispatch.KindNone:
		return style.Faint("default")
	case dispatch.KindFlag:
		if v.Flag {
			return "on"
		}
		return "off"
	case dispatch.KindText:
		if v.Text == "" {
			return style.Faint("default")
		}
		return v.Text
	default:
		return humanize.FtoaWithDigits(f.Display(v.Number), 2)
	}
}
