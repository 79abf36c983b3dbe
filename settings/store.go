// Package settings persists user preferences in a grouped key/value store.
// Keys are slash separated paths such as "Session/crosstalk_r" or
// "Video/<hash>/parallax"; every segment but the last names a group.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/where"
)

// ErrInvalidKey is returned for keys without a name segment.
var ErrInvalidKey = errors.New("invalid settings key")

// Store is a grouped string key/value store.
type Store interface {
	// Value returns the value stored under key.
	Value(key string) (string, bool)
	// SetValue stores value under key, creating groups as needed.
	SetValue(key, value string) error
	// Remove deletes a key or a whole group.
	Remove(key string) error
	// All returns every stored key with its value.
	All() (map[string]string, error)
	Close() error
}

// Open returns the configured store: a bbolt database under where.Settings()
// when persistence is enabled, an in-memory store otherwise.
func Open() (Store, error) {
	if !viper.GetBool(key.SettingsPersist) || !filesystem.IsOs() {
		log.Debug("settings are not persisted")
		return NewMemory(), nil
	}

	timeout := time.Duration(viper.GetInt(key.SettingsTimeout)) * time.Millisecond
	return NewBolt(where.Settings(), timeout)
}

func split(k string) ([]string, error) {
	parts := strings.Split(strings.Trim(k, "/"), "/")
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidKey
		}
	}
	return parts, nil
}

// Memory is a Store kept in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Value(k string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[strings.Trim(k, "/")]
	return v, ok
}

func (m *Memory) SetValue(k, value string) error {
	parts, err := split(k)
	if err != nil {
		return err
	}
	if len(parts) == 1 {
		return fmt.Errorf("%w: %q has no group", ErrInvalidKey, k)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[strings.Join(parts, "/")] = value
	return nil
}

func (m *Memory) Remove(k string) error {
	parts, err := split(k)
	if err != nil {
		return err
	}
	k = strings.Join(parts, "/")

	m.mu.Lock()
	defer m.mu.Unlock()
	for stored := range m.values {
		if stored == k || strings.HasPrefix(stored, k+"/") {
			delete(m.values, stored)
		}
	}
	return nil
}

func (m *Memory) All() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make(map[string]string, len(m.values))
	for k, v := range m.values {
		all[k] = v
	}
	return all, nil
}

func (m *Memory) Close() error {
	return nil
}

// Keys returns the sorted keys of store, or nil when it cannot be read.
func Keys(store Store) []string {
	all, err := store.All()
	if err != nil {
		log.Warnf("list settings: %s", err)
		return nil
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
