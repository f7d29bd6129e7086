// Package tui renders the player as a full-screen terminal interface driving an external media backend.
package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/config"
	"github.com/tapedeck/tapedeck/internal/ui"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/util"
)

// Options describe the media to play.
type Options struct {
	Source       string
	Title        mo.Option[string]
	Headers      map[string]string
	Thumbnail    mo.Option[string]
	EndThumbnail mo.Option[string]
}

// Run builds the controller from the active configuration and runs the
// Bubble Tea program until the user quits.
func Run(options *Options) error {
	cfg := config.PlayerConfig(options.Source)
	cfg.Thumbnail = options.Thumbnail
	cfg.EndThumbnail = options.EndThumbnail

	bubble, err := newBubble(options, cfg)
	if err != nil {
		return err
	}
	defer bubble.shutdown()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	program := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion())
	watchConfig(program)

	_, err = program.Run()
	return err
}

// watchConfig tells the user when the config file is edited mid-session.
// The running controller keeps its mount-time configuration.
func watchConfig(program *tea.Program) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Infof("config file changed: %s", e.Name)
		program.Send(ui.NotifyMsg(filepath.Base(e.Name) + " changed, restart to apply"))
	})
	viper.WatchConfig()
}
