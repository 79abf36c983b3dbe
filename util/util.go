// Package util holds small helpers shared by the command line and the TUI.
package util

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/stereoplay/stereoplay/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify renders n followed by the matching noun form, e.g. "1 file" or "3 files".
func Quantify(n int, one, many string) string {
	noun := many
	if n == 1 {
		noun = one
	}
	return fmt.Sprint(n, " ", noun)
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize is the size of the terminal attached to stdout.
func TerminalSize() (columns, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable writes msg at the start of the current line. Calling the
// returned func blanks it out again so the next line can reuse the row.
func PrintErasable(msg string) func() {
	fmt.Print("\r" + msg)
	return func() {
		fmt.Print("\r" + strings.Repeat(" ", len(msg)) + "\r")
	}
}

// Ignore is for deferred calls whose error has nowhere to go.
func Ignore(fn func() error) { _ = fn() }

// Clamp limits v to [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	return max(low, min(v, high))
}

// Timestamp formats a playback offset in seconds as h:mm:ss.
// Negative and NaN offsets render as 0:00:00.
func Timestamp(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(time.Duration(seconds * float64(time.Second)).Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// Delete removes path, recursing into directories.
func Delete(path string) error {
	info, err := filesystem.API().Stat(path)
	switch {
	case err != nil:
		return err
	case info.IsDir():
		return filesystem.API().RemoveAll(path)
	default:
		return filesystem.API().Remove(path)
	}
}
