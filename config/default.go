package config

import "github.com/stereoplay/stereoplay/key"

// Default holds every configuration field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to STEREOPLAY_* variables.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.PlayerBinary, "mpv", "Path or name of the mpv executable used as playback engine")
	register(key.PlayerExtraArgs, []string{}, "Additional arguments passed verbatim to mpv")
	register(key.PlayerStepInterval, 10, "Delay in milliseconds between two playback steps")
	register(key.PlayerSocketWait, 3000, "Maximum time in milliseconds to wait for the mpv IPC socket")
	register(key.PlayerProbeRemote, true, "Check that http(s) sources are reachable before opening them")
	register(key.SeekShort, 10, "Seconds skipped by the short seek controls")
	register(key.SeekMedium, 60, "Seconds skipped by the medium seek controls")
	register(key.SeekLong, 600, "Seconds skipped by the long seek controls")
	register(key.SettingsPersist, true, "Remember per-file and session preferences between runs.\nWhen disabled, preferences only live for the current process")
	register(key.SettingsTimeout, 1000, "Milliseconds to wait for the preference database lock")
	register(key.RecentEnable, true, "Remember recently opened sources")
	register(key.RecentLimit, 10, "Maximum number of recently opened sources to keep")
	register(key.RequestsWatch, true, "Watch the requests directory for sources sent by \"stereoplay send\"")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIShowHelp, true, "Show the key bindings help under the player")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

