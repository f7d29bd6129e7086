package videoplayer

// Screen is the top-level content chosen by the render selector.
type Screen int

const (
	ScreenPlaceholder Screen = iota
	ScreenThumbnail
	ScreenEndThumbnail
	ScreenVideo
)

func (s Screen) String() string {
	switch s {
	case ScreenPlaceholder:
		return "placeholder"
	case ScreenThumbnail:
		return "thumbnail"
	case ScreenEndThumbnail:
		return "end-thumbnail"
	case ScreenVideo:
		return "video"
	default:
		return "unknown"
	}
}

// ControlsMode says how much of the overlay is drawn over the video.
type ControlsMode int

const (
	ControlsNone ControlsMode = iota
	ControlsFull
	ControlsMinimal
)

func (m ControlsMode) String() string {
	switch m {
	case ControlsFull:
		return "full"
	case ControlsMinimal:
		return "minimal"
	default:
		return "none"
	}
}

// View is a render-ready description of the component.
type View struct {
	Screen Screen
	// Image is the thumbnail to draw on the thumbnail screens.
	Image string
	// StartButton is set on screens that offer a start affordance.
	StartButton bool

	Controls ControlsMode
	Playing  bool
	Muted    bool
	Seeking  bool
	Progress float64
	Time     string

	ShowTime       bool
	ShowMute       bool
	ShowFullscreen bool
	ShowKnob       bool

	Width, Height float64
}

// View runs the render selector against the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	width, height := c.sizeLocked()
	v := View{
		Screen:   c.screenLocked(),
		Playing:  c.state.IsPlaying,
		Muted:    c.cfg.Muted || c.state.IsMuted,
		Seeking:  c.state.IsSeeking,
		Progress: c.state.Progress,
		Time:     FormatTime(c.state.CurrentTime),
		Width:    width,
		Height:   height,
	}

	switch v.Screen {
	case ScreenEndThumbnail:
		v.Image = c.cfg.EndThumbnail.OrEmpty()
		v.StartButton = true
	case ScreenThumbnail:
		v.Image = c.cfg.Thumbnail.OrEmpty()
		v.StartButton = true
	case ScreenPlaceholder:
		v.StartButton = true
	case ScreenVideo:
		if !c.state.IsPlaying || c.state.IsControlsVisible {
			v.Controls = ControlsFull
			v.ShowTime = !c.cfg.HideCurrentTime
			v.ShowMute = !c.cfg.Muted
			v.ShowFullscreen = c.fullscreenAvailable()
			v.ShowKnob = !c.cfg.DisableSeek
		} else {
			v.Controls = ControlsMinimal
		}
	}

	return v
}

// Screen returns the render selector's choice without building a full View.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screenLocked()
}

func (c *Controller) screenLocked() Screen {
	switch {
	case c.state.HasEnded && c.cfg.EndThumbnail.IsPresent():
		return ScreenEndThumbnail
	case !c.state.IsStarted && c.cfg.Thumbnail.IsPresent():
		return ScreenThumbnail
	case !c.state.IsStarted:
		return ScreenPlaceholder
	default:
		return ScreenVideo
	}
}

// SetWidth records the measured layout width of the component.
func (c *Controller) SetWidth(width float64) {
	if !c.begin() {
		return
	}
	defer c.end()

	c.state.Width = width
}

// Size returns the component size for the measured width, keeping the
// configured video aspect ratio.
func (c *Controller) Size() (width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sizeLocked()
}

func (c *Controller) sizeLocked() (float64, float64) {
	ratio := c.cfg.VideoHeight / c.cfg.VideoWidth
	return c.state.Width, c.state.Width * ratio
}
