package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/internal/ui"
	"github.com/tapedeck/tapedeck/key"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/player"
	"github.com/tapedeck/tapedeck/videoplayer"
)

type (
	changeMsg        struct{}
	surfaceReadyMsg  struct{ backend *player.MPV }
	surfaceFailedMsg struct{ err error }
	surfaceExitMsg   struct{}
)

func (b *bubble) backendName() string {
	return viper.GetString(key.PlayerBackend)
}

// waitForChange delivers a changeMsg once the controller reports a change
// that did not originate in Update.
func (b *bubble) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-b.changed
		return changeMsg{}
	}
}

// maybeLaunch starts the media backend the first time the video screen is shown.
func (b *bubble) maybeLaunch() tea.Cmd {
	if b.backend != nil || b.launching || b.lastError != nil || b.view.Screen != videoplayer.ScreenVideo {
		return nil
	}
	b.launching = true

	cfg := b.ctl.Config()
	opts := player.Options{
		Title:   b.title,
		Headers: b.options.Headers,
		Paused:  true,
		Muted:   cfg.Muted || b.ctl.State().IsMuted,
	}
	source := cfg.Source
	backend := b.backendName()

	return func() tea.Msg {
		if backend != "mpv" {
			return surfaceFailedMsg{err: fmt.Errorf("unsupported backend %q", backend)}
		}

		m, err := player.Open(source, opts)
		if err != nil {
			return surfaceFailedMsg{err: err}
		}
		return surfaceReadyMsg{backend: m}
	}
}

// attach wires a running backend into the controller.
func (b *bubble) attach(m *player.MPV) tea.Cmd {
	b.launching = false
	b.backend = m
	b.async = player.NewAsync(m)
	b.ctl.Attach(b.async)

	waitExit := func() tea.Msg {
		<-m.Wait()
		return surfaceExitMsg{}
	}

	b.listener = player.NewEventListener(m.Socket(), b.ctl)
	if err := b.listener.Start(); err != nil {
		log.Warnf("mpv events unavailable: %v", err)
		b.listener = nil
		return tea.Batch(waitExit, ui.Notify("progress updates unavailable"))
	}

	return waitExit
}

// detach releases the backend after it went away.
func (b *bubble) detach() {
	b.ctl.Detach()
	if b.listener != nil {
		b.listener.Stop()
		b.listener = nil
	}
	if b.async != nil {
		b.async.Close()
		b.async = nil
	}
	if b.backend != nil {
		if err := b.backend.Close(); err != nil {
			log.Warnf("close mpv: %v", err)
		}
		b.backend = nil
	}
}

// shutdown tears everything down when the program exits.
func (b *bubble) shutdown() {
	b.detach()
	b.ctl.Close()
}
