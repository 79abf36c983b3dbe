package history

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Entry is one recently opened set of sources.
type Entry struct {
	Sources  []string  `json:"sources"`
	Title    string    `json:"title"`
	Position float64   `json:"position"`
	OpenedAt time.Time `json:"opened_at"`
}

func encode(sources []string) string {
	return strings.Join(sources, "\n")
}

func (e *Entry) encode() string {
	return encode(e.Sources)
}

func (e *Entry) String() string {
	s := fmt.Sprintf("%s (%s)", e.Title, humanize.Time(e.OpenedAt))
	if e.Position > 0 {
		s += fmt.Sprintf(" at %.0f%%", e.Position*100)
	}
	return s
}

func newEntry(sources []string, title string) *Entry {
	if title == "" {
		title = filepath.Base(sources[0])
	}
	return &Entry{
		Sources:  append([]string(nil), sources...),
		Title:    title,
		OpenedAt: now(),
	}
}
