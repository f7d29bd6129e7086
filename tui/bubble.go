package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/tapedeck/tapedeck/internal/ui"
	"github.com/tapedeck/tapedeck/player"
	"github.com/tapedeck/tapedeck/util"
	"github.com/tapedeck/tapedeck/videoplayer"
)

type bubble struct {
	options *Options
	title   string

	ctl     *videoplayer.Controller
	changed chan struct{}

	// media backend, launched when the video screen is first shown
	backend   *player.MPV
	async     *player.Async
	listener  *player.EventListener
	launching bool

	keymap   *keymap
	helpC    help.Model
	notifier *ui.Model

	width, height int
	view          videoplayer.View
	layout        layout
	trackWidth    int
	dragging      bool

	lastError error
}

func newBubble(options *Options, cfg videoplayer.Config, opts ...videoplayer.Option) (*bubble, error) {
	b := &bubble{
		options:  options,
		title:    options.Title.OrElse(util.MediaTitle(options.Source)),
		changed:  make(chan struct{}, 1),
		keymap:   newKeymap(),
		helpC:    help.New(),
		notifier: &ui.Model{},
	}

	ctl, err := videoplayer.New(cfg, videoplayer.Callbacks{
		OnChange: func(videoplayer.PlayerState) { b.signal() },
	}, opts...)
	if err != nil {
		return nil, err
	}
	b.ctl = ctl
	b.relayout()

	return b, nil
}

// signal wakes the program after a state change that happened outside Update.
func (b *bubble) signal() {
	select {
	case b.changed <- struct{}{}:
	default:
	}
}

func (b *bubble) raiseError(err error) {
	b.lastError = err
	b.keymap.errored = true
}

func (b *bubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = max(width-x, 0)
	b.height = max(height-y, 0)
	b.helpC.Width = b.width

	b.ctl.SetWidth(float64(b.width))
	b.relayout()
}

// relayout snapshots the render selector and recomputes the hit regions the
// next mouse event is tested against.
func (b *bubble) relayout() {
	b.view = b.ctl.View()
	left, right := b.ctl.Config().SeekBarPadding.Sides()
	b.layout = computeLayout(b.view, b.width, b.height, int(left), int(right))

	if w := b.layout.seek.w; w > 0 && w != b.trackWidth {
		b.trackWidth = w
		b.ctl.SetSeekBarWidth(float64(w))
	}

	b.keymap.screen = b.view.Screen
	b.keymap.fullscreen = b.view.ShowFullscreen
}
