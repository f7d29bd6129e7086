// Package player defines the media surface abstraction the controls component drives.
// The primary implementation targets 'mpv' via its JSON-IPC interface.
package player

// Surface is the minimal command set a media backend must accept.
// Commands are fire-and-forget: callers do not wait for the media to settle.
type Surface interface {
	// Seek jumps playback to an absolute offset in seconds.
	Seek(seconds float64) error

	// PresentFullscreen asks the backend to enter fullscreen.
	PresentFullscreen() error

	// DismissFullscreen asks the backend to leave fullscreen.
	DismissFullscreen() error
}

// Controls is implemented by surfaces whose paused and muted properties are
// driven from the component state.
type Controls interface {
	SetPaused(paused bool) error
	SetMuted(muted bool) error
}

// EventSink receives playback callbacks from a backend.
type EventSink interface {
	// OnProgress reports the current playback position in seconds.
	OnProgress(currentTime float64)

	// OnLoad reports the media duration in seconds once it is known.
	OnLoad(duration float64)

	// OnEnd reports that playback reached the end of the media.
	OnEnd()

	// OnFullscreenDismissed reports that the backend left fullscreen on its own.
	OnFullscreenDismissed()
}
