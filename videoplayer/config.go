package videoplayer

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/mo"
)

// Factory defaults mirrored by the config registry.
const (
	DefaultVideoWidth      = 1280
	DefaultVideoHeight     = 720
	DefaultControlsTimeout = 2000 * time.Millisecond
	DefaultSeekBarPadding  = 10
)

// Padding describes the horizontal padding of the seek track. Horizontal wins
// over Left/Right when set.
type Padding struct {
	Horizontal  mo.Option[float64]
	Left, Right float64
}

// Sides returns the left and right padding of the seek track.
func (p *Padding) Sides() (left, right float64) {
	if p == nil {
		return DefaultSeekBarPadding, DefaultSeekBarPadding
	}
	if h, ok := p.Horizontal.Get(); ok {
		return h, h
	}
	return p.Left, p.Right
}

// total returns the number of units to subtract from the measured track width.
func (p *Padding) total() float64 {
	left, right := p.Sides()
	return left + right
}

// Config is everything the host supplies on mount. Only Source is required.
type Config struct {
	Source       string `validate:"required"`
	Thumbnail    mo.Option[string]
	EndThumbnail mo.Option[string]

	// VideoWidth and VideoHeight only drive aspect-ratio layout.
	VideoWidth  float64 `validate:"gt=0"`
	VideoHeight float64 `validate:"gt=0"`

	// Duration overrides the duration reported by the surface when positive.
	Duration float64

	Autoplay                bool
	Paused                  bool
	Muted                   bool
	DefaultMuted            bool
	Loop                    bool
	DisableSeek             bool
	DisableFullscreen       bool
	DisableControlsAutoHide bool
	HideControlsOnStart     bool
	HideCurrentTime         bool
	PauseOnPress            bool
	FullScreenOnLongPress   bool
	EndWithThumbnail        bool

	ControlsTimeout time.Duration `validate:"gte=0"`

	// SeekBarPadding is nil for the default 10 units on each side.
	SeekBarPadding *Padding

	// Platform is a runtime.GOOS value; fullscreen is unavailable on android.
	Platform string
}

// Defaults returns a Config populated with factory defaults for the given source.
func Defaults(source string) Config {
	return Config{
		Source:          source,
		VideoWidth:      DefaultVideoWidth,
		VideoHeight:     DefaultVideoHeight,
		ControlsTimeout: DefaultControlsTimeout,
		Platform:        runtime.GOOS,
	}
}

var validate = validator.New()

// Validate reports configuration that cannot produce a usable player.
// Only the first failing field is reported.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) || len(invalid) == 0 {
		return err
	}

	field := invalid[0]
	switch field.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field.Field())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", field.Field(), field.Param())
	case "gte":
		return fmt.Errorf("%s must not be negative", field.Field())
	default:
		return fmt.Errorf("%s is invalid", field.Field())
	}
}

// endsWithThumbnail reports whether playback completion swaps the video for a thumbnail.
func (c *Config) endsWithThumbnail() bool {
	return c.EndWithThumbnail || c.EndThumbnail.IsPresent()
}

// Callbacks are optional host hooks. They run outside the controller lock,
// so they may call back into the controller.
type Callbacks struct {
	OnStart        func()
	OnEnd          func()
	OnProgress     func(currentTime float64)
	OnLoad         func(duration float64)
	OnPlayPress    func()
	OnMutePress    func(muted bool)
	OnShowControls func()
	// OnHideControls runs when the controls are actually hidden, not when
	// the hide is scheduled, so it never fires with auto-hide disabled.
	OnHideControls func()

	// OnChange receives a snapshot after every event that touched the state.
	OnChange func(PlayerState)
}
