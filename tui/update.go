package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapedeck/tapedeck/internal/ui"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/open"
	"github.com/tapedeck/tapedeck/util"
	"github.com/tapedeck/tapedeck/videoplayer"
)

func (b *bubble) Init() tea.Cmd {
	return tea.Batch(b.waitForChange(), b.maybeLaunch())
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd, ok := b.notifier.Update(msg); ok {
		return b, cmd
	}

	switch msg := msg.(type) {
	case changeMsg:
		cmds = append(cmds, b.waitForChange())
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case surfaceReadyMsg:
		cmds = append(cmds, b.attach(msg.backend))
	case surfaceFailedMsg:
		b.launching = false
		log.Errorf("media backend failed: %v", msg.err)
		b.raiseError(msg.err)
	case surfaceExitMsg:
		log.Info("mpv exited")
		b.detach()
		return b, tea.Quit
	case tea.KeyMsg:
		cmd, quit := b.handleKey(msg)
		if quit {
			return b, cmd
		}
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		b.handleMouse(msg)
	}

	b.relayout()
	cmds = append(cmds, b.maybeLaunch())
	return b, tea.Batch(cmds...)
}

// handleKey maps a key press to a controller intent. It reports true when
// the program should stop.
func (b *bubble) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := b.keymap

	switch {
	case key.Matches(msg, k.forceQuit), key.Matches(msg, k.quit):
		return tea.Quit, true
	case key.Matches(msg, k.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil, false
	}

	if b.lastError != nil {
		return nil, false
	}

	if b.view.Screen != videoplayer.ScreenVideo {
		switch {
		case key.Matches(msg, k.start):
			b.ctl.Start()
		case key.Matches(msg, k.openImage) && b.view.Image != "":
			return openImage(b.view.Image), false
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, k.playPause):
		b.ctl.TogglePlay()
	case key.Matches(msg, k.mute):
		b.ctl.ToggleMute()
	case key.Matches(msg, k.fullscreenToggle):
		b.ctl.ToggleFullscreen()
	case key.Matches(msg, k.stop):
		b.ctl.Stop()
	case key.Matches(msg, k.seekBack):
		b.seekBy(-seekStep)
	case key.Matches(msg, k.seekForward):
		b.seekBy(seekStep)
	case key.Matches(msg, k.showControls):
		b.ctl.ShowControls()
	}
	return nil, false
}

// openImage shows a thumbnail in the system image viewer.
func openImage(image string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(image); err != nil {
			log.Warnf("open %s: %v", image, err)
			return ui.NotifyMsg("could not open image")
		}
		return ui.NotifyMsg("opened " + util.MediaTitle(image))
	}
}

func (b *bubble) seekBy(delta float64) {
	b.ctl.Seek(max(b.ctl.CurrentTime()+delta, 0))
	b.ctl.ShowControls()
}

// handleMouse maps pointer events onto the overlay and the seek gesture.
// A right click stands in for a long press.
func (b *bubble) handleMouse(msg tea.MouseMsg) {
	if b.lastError != nil {
		return
	}

	ox, oy := paddingStyle.GetPaddingLeft(), paddingStyle.GetPaddingTop()
	x, y := msg.X-ox, msg.Y-oy

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			b.press(x, y)
		case tea.MouseButtonRight:
			if b.layout.hit(b.view, x, y) == targetOverlay {
				b.ctl.LongPressOverlay()
			}
		}
	case tea.MouseActionMotion:
		if b.dragging {
			b.ctl.SeekMove(float64(x))
		}
	case tea.MouseActionRelease:
		if b.dragging {
			b.dragging = false
			b.ctl.SeekRelease()
		}
	}
}

func (b *bubble) press(x, y int) {
	switch b.layout.hit(b.view, x, y) {
	case targetStart:
		b.ctl.Start()
	case targetOverlay:
		b.ctl.PressOverlay()
	case targetPlay:
		b.ctl.TogglePlay()
	case targetMute:
		b.ctl.ToggleMute()
	case targetFullscreen:
		b.ctl.ToggleFullscreen()
	case targetSeek:
		b.dragging = true
		b.ctl.SeekGrant(float64(x))
	}
}

var _ tea.Model = (*bubble)(nil)
