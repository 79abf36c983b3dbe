// Package history keeps the registry of recently opened sources.
package history

import (
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/where"
	"golang.org/x/exp/slices"
)

// cacher provides a disk-backed registry of recent entries.
var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is replaced in tests.
var now = time.Now

// Get returns every recorded entry by identity.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// List returns the entries, most recently opened first.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}
	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})
	return entries, nil
}

// Add records that sources were opened. The oldest entries beyond the
// configured limit are dropped.
func Add(sources []string, title string) error {
	if !viper.GetBool(key.RecentEnable) || len(sources) == 0 {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	record := newEntry(sources, title)
	if existing, ok := saved[record.encode()]; ok {
		record.Position = existing.Position
	}
	saved[record.encode()] = record

	trim(saved, viper.GetInt(key.RecentLimit))
	return cacher.Set(saved)
}

// SavePosition remembers where playback of sources stopped.
func SavePosition(sources []string, position float64) error {
	if !viper.GetBool(key.RecentEnable) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}
	record, ok := saved[encode(sources)]
	if !ok {
		return nil
	}
	record.Position = position
	return cacher.Set(saved)
}

// Remove deletes an entry.
func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return cacher.Set(saved)
}

// Find returns the entries whose title or first source matches query.
func Find(query string) ([]*Entry, error) {
	entries, err := List()
	if err != nil {
		return nil, err
	}
	return lo.Filter(entries, func(e *Entry, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, e.Title) || fuzzy.MatchNormalizedFold(query, e.Sources[0])
	}), nil
}

func trim(saved map[string]*Entry, limit int) {
	if limit <= 0 || len(saved) <= limit {
		return
	}
	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})
	for _, e := range entries[limit:] {
		delete(saved, e.encode())
	}
}

// Recorder exposes the registry to the window.
type Recorder struct{}

func (Recorder) Add(sources []string, title string) error { return Add(sources, title) }

func (Recorder) SavePosition(sources []string, position float64) error {
	return SavePosition(sources, position)
}
