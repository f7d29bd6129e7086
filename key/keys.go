// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Behavior - these keys seed the initial state and the media surface overrides.
const (
	PlayerAutoplay     = "player.autoplay"
	PlayerDefaultMuted = "player.default_muted"
	PlayerMuted        = "player.muted"
	PlayerPaused       = "player.paused"
	PlayerLoop         = "player.loop"
	PlayerVideoWidth   = "player.video_width"
	PlayerVideoHeight  = "player.video_height"
	PlayerBackend      = "player.backend"
)

// Overlay Controls - these keys govern which controls are rendered and how they react.
const (
	ControlsTimeout               = "controls.timeout"
	ControlsDisableAutoHide       = "controls.disable_auto_hide"
	ControlsHideOnStart           = "controls.hide_on_start"
	ControlsHideCurrentTime       = "controls.hide_current_time"
	ControlsDisableSeek           = "controls.disable_seek"
	ControlsDisableFullscreen     = "controls.disable_fullscreen"
	ControlsPauseOnPress          = "controls.pause_on_press"
	ControlsFullscreenOnLongPress = "controls.fullscreen_on_long_press"
	ControlsSeekBarPadding        = "controls.seekbar_padding"
)

// Thumbnails
const (
	ThumbnailEndWithThumbnail = "thumbnail.end_with_thumbnail"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
