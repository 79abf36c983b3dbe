// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "stereoplay"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Website is the project home page opened by the help commands.
	Website = "https://github.com/stereoplay/stereoplay"

	// UserAgent is the HTTP User-Agent string used when probing remote sources.
	UserAgent = App + "/" + Version
)

// Build metadata, overridden at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// runtime.GOOS values with platform specific handling.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
