package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/style"
)

// CheckDependencies exits unless the configured player binary is found.
func CheckDependencies() {
	binary := viper.GetString(key.PlayerBinary)
	if _, err := exec.LookPath(binary); err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

func installHint(goos string) string {
	switch goos {
	case constant.Darwin:
		return "brew install mpv"
	case constant.Linux:
		return "sudo apt install mpv"
	case constant.Windows:
		return "scoop install mpv"
	}
	return ""
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(icon.Get(icon.Fail) + " Missing player")
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf(
		"%q was not found in your PATH. Install mpv or point %s at it.", dep, key.PlayerBinary,
	))

	suggestion := ""
	if hint := installHint(runtime.GOOS); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, suggestion)))
}
