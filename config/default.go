package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/color"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/key"
	"github.com/tapedeck/tapedeck/style"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty describes the field for the terminal: description, key, env
// variable, current and default value, and type.
func (f *Field) Pretty() string {
	rows := []lo.Tuple2[string, string]{
		{A: "Key", B: style.Fg(color.Purple)(f.Key)},
		{A: "Env", B: f.Env()},
		{A: "Value", B: highlight(viper.Get(f.Key))},
		{A: "Default", B: highlight(f.Value)},
		{A: "Type", B: f.typeName()},
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", style.Fg(color.Blue)(fmt.Sprintf("%-8s", row.A+":")), row.B)
	}
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	// player
	register(key.PlayerAutoplay, false, "Start playback as soon as the player is mounted")
	register(key.PlayerDefaultMuted, false, "Start muted. The mute button can still unmute")
	register(key.PlayerMuted, false, "Force the media muted and hide the mute button")
	register(key.PlayerPaused, false, "Force the media paused regardless of the play button")
	register(key.PlayerLoop, false, "Rewind and keep playing when the media ends")
	register(key.PlayerVideoWidth, videoplayer.DefaultVideoWidth, "Video width, used only for the aspect ratio")
	register(key.PlayerVideoHeight, videoplayer.DefaultVideoHeight, "Video height, used only for the aspect ratio")
	register(key.PlayerBackend, "mpv", "Media backend to drive.\nAvailable options are: mpv")

	// controls
	register(key.ControlsTimeout, int(videoplayer.DefaultControlsTimeout.Milliseconds()), "Milliseconds of inactivity before the controls hide")
	register(key.ControlsDisableAutoHide, false, "Keep the controls visible while playing")
	register(key.ControlsHideOnStart, false, "Start with the controls hidden")
	register(key.ControlsHideCurrentTime, false, "Hide the current time label")
	register(key.ControlsDisableSeek, false, "Hide the seek knob and ignore seek gestures")
	register(key.ControlsDisableFullscreen, false, "Hide the fullscreen button")
	register(key.ControlsPauseOnPress, false, "Toggle playback when the video area is clicked")
	register(key.ControlsFullscreenOnLongPress, false, "Enter fullscreen on a long press (right click) of the video area")
	register(key.ControlsSeekBarPadding, 2, "Horizontal padding of the seek bar, in cells, on each side")

	// thumbnail
	register(key.ThumbnailEndWithThumbnail, false, "Return to the thumbnail when the media ends")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

// highlight colors a value by its type.
func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}
