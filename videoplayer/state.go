package videoplayer

// PlayerState is the presentational state owned by a Controller.
type PlayerState struct {
	IsStarted         bool `json:"is_started"`
	IsPlaying         bool `json:"is_playing"`
	HasEnded          bool `json:"has_ended"`
	IsMuted           bool `json:"is_muted"`
	IsSeeking         bool `json:"is_seeking"`
	IsControlsVisible bool `json:"is_controls_visible"`

	// Progress is the normalized position in [0,1].
	Progress float64 `json:"progress"`
	// Duration and CurrentTime are in seconds.
	Duration    float64 `json:"duration"`
	CurrentTime float64 `json:"current_time"`
	// Width is the last measured layout width.
	Width float64 `json:"width"`
}

// initialState derives the mount-time state from the host configuration.
func initialState(cfg *Config) PlayerState {
	return PlayerState{
		IsStarted:         cfg.Autoplay,
		IsPlaying:         cfg.Autoplay,
		IsMuted:           cfg.DefaultMuted,
		IsControlsVisible: !cfg.HideControlsOnStart,
		Width:             initialWidth,
	}
}
