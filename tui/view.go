package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/panel"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case playerState:
		output = b.viewPlayer()
	case recentState:
		output = listExtraPaddingStyle.Render(b.recentC.View())
	case openState:
		output = b.viewInput("Open")
	case dialogsState:
		output = listExtraPaddingStyle.Render(b.dialogsC.View())
	case fieldsState:
		output = listExtraPaddingStyle.Render(b.fieldsC.View())
	case editState:
		output = b.viewEdit()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

// enabled renders s faint when the control behind it is disabled.
func enabled(on bool, s string) string {
	if on {
		return s
	}
	return style.Faint(s)
}

func swapped(swap bool) string {
	if swap {
		return " " + icon.Get(icon.Swap)
	}
	return ""
}

func (b *statefulBubble) viewPlayer() string {
	s := b.snap

	if !s.hasInput {
		return b.renderLines(true, []string{
			style.Title(constant.App),
			"",
			style.Faint("Nothing is open."),
		})
	}

	status := icon.Get(icon.Stop) + " stopped"
	switch {
	case s.paused:
		status = icon.Get(icon.Pause) + " paused"
	case s.playing:
		status = icon.Get(icon.Play) + " playing"
	}

	title := s.title
	if s.device {
		title = icon.Get(icon.Device) + " " + title
	}

	elapsed := s.position * s.media.Duration
	progress := b.progressC.ViewAs(float64(s.slider) / panel.SliderMax)

	lines := []string{
		style.Title(constant.App),
		"",
		style.Truncate(b.width)(style.Fg(color.Purple)(title)),
		"",
		fmt.Sprintf("%s  %s / %s", status, util.Timestamp(elapsed), util.Timestamp(s.media.Duration)),
		enabled(s.controls.Slider, progress),
		"",
		enabled(s.inout.Input, fmt.Sprintf("Input      %s%s", s.layout, swapped(s.layoutSwap))),
		enabled(s.inout.Output, fmt.Sprintf("Output     %s%s", s.mode, swapped(s.modeSwap))),
		enabled(s.inout.Audio, fmt.Sprintf("Audio      %d of %d", s.audio+1, max(s.media.AudioStreams, 1))),
		enabled(s.inout.Parallax, fmt.Sprintf("Parallax   %+.2f", s.parallax)),
		enabled(s.inout.Ghostbust, fmt.Sprintf("Ghostbust  %d%%", s.ghostbust)),
	}
	if s.looping {
		lines = append(lines, "", style.Faint(icon.Get(icon.Eye)+" rendering"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewInput(title string) string {
	return b.renderLines(true, []string{
		style.Title(title),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewEdit() string {
	lines := []string{
		style.Title(b.field.Label),
		"",
		b.inputC.View(),
	}
	if b.field.Kind == dispatch.KindNumber {
		lines = append(lines, "", style.Faint(fmt.Sprintf("from %g to %g", b.field.Display(b.field.Min), b.field.Display(b.field.Max))))
	}
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp && viper.GetBool(key.TUIShowHelp) {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
