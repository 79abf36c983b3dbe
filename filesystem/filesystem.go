// Package filesystem is the single point of file access, so preference
// files, logs and open requests can be tested against memory.
package filesystem

import "github.com/spf13/afero"

var backend afero.Afero

func init() { SetOsFs() }

func use(fs afero.Fs) { backend = afero.Afero{Fs: fs} }

func API() afero.Afero { return backend }

// IsOs reports whether paths refer to the real disk. Code that hands paths
// to something outside afero (mpv, bbolt, fsnotify) checks it first.
func IsOs() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}

func SetOsFs() { use(afero.NewOsFs()) }

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() { use(afero.NewMemMapFs()) }
