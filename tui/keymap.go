package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/tapedeck/tapedeck/color"
	"github.com/tapedeck/tapedeck/style"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// keymap holds the bindings; the help shown depends on the current screen.
type keymap struct {
	screen     videoplayer.Screen
	fullscreen bool
	errored    bool

	quit, forceQuit,
	start, openImage,
	playPause, mute, fullscreenToggle, stop,
	seekBack, seekForward,
	showControls,
	showHelp key.Binding
}

// seekStep is how far the arrow keys seek, in seconds.
const seekStep = 5

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		start: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play")),
		),
		openImage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		fullscreenToggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "-5s"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "+5s"),
		),
		showControls: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "controls"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	if k.errored {
		return h(k.quit), h(k.quit, k.forceQuit)
	}

	if k.screen != videoplayer.ScreenVideo {
		full := h(k.start)
		if k.screen != videoplayer.ScreenPlaceholder {
			full = append(full, k.openImage)
		}
		return h(k.start, k.quit, k.showHelp), append(full, k.quit, k.forceQuit, k.showHelp)
	}

	full := h(k.playPause, k.mute)
	if k.fullscreen {
		full = append(full, k.fullscreenToggle)
	}
	full = append(full, k.seekBack, k.seekForward, k.stop, k.showControls, k.quit, k.showHelp)

	return h(k.playPause, k.seekBack, k.seekForward, k.quit, k.showHelp), full
}

func (k *keymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *keymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
