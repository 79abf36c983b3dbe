// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 20

// Media Playback - these keys configure the external mpv engine and the playback driver.
const (
	PlayerBinary       = "player.binary"
	PlayerExtraArgs    = "player.extra_args"
	PlayerStepInterval = "player.step_interval"
	PlayerSocketWait   = "player.socket_wait"
	PlayerProbeRemote  = "player.probe_remote"
)

// Seeking - these keys define the relative jumps of the transport controls.
const (
	SeekShort  = "seek.short"
	SeekMedium = "seek.medium"
	SeekLong   = "seek.long"
)

// Preference Persistence - these keys govern where and whether per-file preferences are remembered.
const (
	SettingsPersist = "settings.persist"
	SettingsTimeout = "settings.timeout"
)

// Recent Files - these keys configure the recently opened sources registry.
const (
	RecentEnable = "recent.enable"
	RecentLimit  = "recent.limit"
)

// External Requests - these keys configure the spool directory watched for open requests.
const (
	RequestsWatch = "requests.watch"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's behavior.
const (
	TUIShowHelp = "tui.show_help"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
