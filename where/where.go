// Package where resolves the directories and files stereoplay reads and writes.
//
// Directories are created on first lookup. The configuration directory can be
// moved with STEREOPLAY_CONFIG_PATH; settings, recent files and logs follow it.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/filesystem"
)

const EnvConfigPath = "STEREOPLAY_CONFIG_PATH"

// dir joins elem and makes sure the directory exists.
func dir(elem ...string) string {
	path := filepath.Join(elem...)
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return dir(custom)
	}
	return dir(lo.Must(os.UserConfigDir()), constant.App)
}

// Cache falls back to ./cache when the platform has no user cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}
	return dir(base, constant.App)
}

func Logs() string { return dir(Config(), "logs") }

// Settings is the bbolt database with the Session and Video groups.
func Settings() string { return filepath.Join(Config(), "settings.db") }

// Recent is the registry of recently opened sources.
func Recent() string { return filepath.Join(Config(), "recent.json") }

// Requests is the spool directory other processes drop open requests into.
func Requests() string { return dir(Cache(), "requests") }

// Temp holds IPC sockets and other files that do not outlive a session.
func Temp() string { return dir(os.TempDir(), constant.App) }
