// Package request passes open requests to a running player through a spool
// directory: "stereoplay send" drops a file, the player picks it up.
package request

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/filesystem"
	"golang.org/x/exp/slices"
)

const (
	extension = ".json"
	partial   = ".part"
)

// Request asks the player to open sources.
type Request struct {
	ID      string    `json:"id"`
	Sources []string  `json:"sources"`
	SentAt  time.Time `json:"sent_at"`
}

// New returns a request for sources.
func New(sources ...string) (Request, error) {
	sources = lo.Filter(lo.Map(sources, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool { return s != "" })
	if len(sources) == 0 {
		return Request{}, fmt.Errorf("nothing to open")
	}
	return Request{ID: uuid.NewString(), Sources: sources, SentAt: time.Now()}, nil
}

// Send writes r into dir. The file only appears under its final name once
// complete.
func Send(dir string, r Request) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	name := filepath.Join(dir, r.ID+extension)
	if err := fs.WriteFile(name+partial, data, 0600); err != nil {
		return "", err
	}
	if err := fs.Rename(name+partial, name); err != nil {
		return "", err
	}
	return name, nil
}

// Read loads the request stored in path.
func Read(path string) (Request, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return Request{}, err
	}

	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if len(r.Sources) == 0 {
		return Request{}, fmt.Errorf("%s: no sources", filepath.Base(path))
	}
	return r, nil
}

// Take reads the request in path and removes the file.
func Take(path string) (Request, error) {
	r, err := Read(path)
	if rmErr := filesystem.API().Remove(path); rmErr != nil && err == nil {
		err = rmErr
	}
	return r, err
}

// Pending lists the complete request files in dir, oldest first.
func Pending(dir string) ([]string, error) {
	infos, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	infos = lo.Filter(infos, func(info os.FileInfo, _ int) bool {
		return !info.IsDir() && isRequest(info.Name())
	})
	slices.SortFunc(infos, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	return lo.Map(infos, func(info os.FileInfo, _ int) string {
		return filepath.Join(dir, info.Name())
	}), nil
}

func isRequest(name string) bool {
	return filepath.Ext(name) == extension
}
