package config

import (
	"runtime"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/key"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// PlayerConfig builds the controller configuration for source from the
// active settings. Thumbnails are per-invocation and left unset.
func PlayerConfig(source string) videoplayer.Config {
	padding := float64(viper.GetInt(key.ControlsSeekBarPadding))

	return videoplayer.Config{
		Source:                  source,
		VideoWidth:              float64(viper.GetInt(key.PlayerVideoWidth)),
		VideoHeight:             float64(viper.GetInt(key.PlayerVideoHeight)),
		Autoplay:                viper.GetBool(key.PlayerAutoplay),
		Paused:                  viper.GetBool(key.PlayerPaused),
		Muted:                   viper.GetBool(key.PlayerMuted),
		DefaultMuted:            viper.GetBool(key.PlayerDefaultMuted),
		Loop:                    viper.GetBool(key.PlayerLoop),
		DisableSeek:             viper.GetBool(key.ControlsDisableSeek),
		DisableFullscreen:       viper.GetBool(key.ControlsDisableFullscreen),
		DisableControlsAutoHide: viper.GetBool(key.ControlsDisableAutoHide),
		HideControlsOnStart:     viper.GetBool(key.ControlsHideOnStart),
		HideCurrentTime:         viper.GetBool(key.ControlsHideCurrentTime),
		PauseOnPress:            viper.GetBool(key.ControlsPauseOnPress),
		FullScreenOnLongPress:   viper.GetBool(key.ControlsFullscreenOnLongPress),
		EndWithThumbnail:        viper.GetBool(key.ThumbnailEndWithThumbnail),
		ControlsTimeout:         time.Duration(viper.GetInt(key.ControlsTimeout)) * time.Millisecond,
		SeekBarPadding:          &videoplayer.Padding{Horizontal: mo.Some(padding)},
		Platform:                runtime.GOOS,
	}
}
