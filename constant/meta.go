// Package constant holds the application name, version and build metadata.
package constant

import _ "embed"

const (
	App     = "tapedeck"
	Version = "0.3.0"
)

// Build metadata, set at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the banner shown in the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string

// GOOS values the player treats specially.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
