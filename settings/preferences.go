package settings

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"math"
	"path/filepath"
	"strconv"

	"github.com/stereoplay/stereoplay/log"
)

const (
	groupSession = "Session"
	groupVideo   = "Video"
)

// Session-wide preference keys.
const (
	CrosstalkR  = groupSession + "/crosstalk_r"
	CrosstalkG  = groupSession + "/crosstalk_g"
	CrosstalkB  = groupSession + "/crosstalk_b"
	Mode2D      = groupSession + "/2d-stereo-mode"
	Mode3D      = groupSession + "/3d-stereo-mode"
	FileOpenDir = groupSession + "/file-open-dir"
)

// Per-file preference names under Video/<hash>/.
const (
	StereoLayout = "stereo-layout"
	AudioStream  = "audio-stream"
	Parallax     = "parallax"
	Ghostbust    = "ghostbust"
)

// FileHash returns the stable identifier of a source: the hex encoded SHA-1
// of its base name. Files sharing a base name in different directories share
// their preferences, which keeps previously written records readable.
func FileHash(source string) string {
	sum := sha1.Sum([]byte(filepath.Base(source)))
	return hex.EncodeToString(sum[:])
}

// VideoKey returns the per-file key for name.
func VideoKey(source, name string) string {
	return groupVideo + "/" + FileHash(source) + "/" + name
}

// VideoGroup returns the group holding every preference of source.
func VideoGroup(source string) string {
	return groupVideo + "/" + FileHash(source)
}

// Preferences wraps a Store with typed accessors. Read and write failures
// are logged and answered with the fallback, never returned.
type Preferences struct {
	Store Store
}

// NewPreferences wraps store.
func NewPreferences(store Store) Preferences {
	return Preferences{Store: store}
}

// String returns the value of k or fallback.
func (p Preferences) String(k, fallback string) string {
	if v, ok := p.Store.Value(k); ok {
		return v
	}
	return fallback
}

// Float returns the numeric value of k, or fallback when missing or malformed.
func (p Preferences) Float(k string, fallback float64) float64 {
	v, ok := p.Store.Value(k)
	if !ok {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		log.Warnf("malformed value %q for %s: %s", v, k, err)
		return fallback
	}
	return f
}

// Int returns the integer value of k, or fallback when missing or malformed.
func (p Preferences) Int(k string, fallback int) int {
	v, ok := p.Store.Value(k)
	if !ok {
		return fallback
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("malformed value %q for %s: %s", v, k, err)
		return fallback
	}
	return i
}

// SetString stores v under k.
func (p Preferences) SetString(k, v string) {
	if err := p.Store.SetValue(k, v); err != nil {
		log.Errorf("write %s: %s", k, err)
	}
}

// SetFloat stores f under k.
func (p Preferences) SetFloat(k string, f float64) {
	p.SetString(k, strconv.FormatFloat(f, 'g', -1, 64))
}

// SetInt stores i under k.
func (p Preferences) SetInt(k string, i int) {
	p.SetString(k, strconv.Itoa(i))
}

// Forget removes every per-file preference of source.
func (p Preferences) Forget(source string) error {
	return p.Store.Remove(VideoGroup(source))
}
