package inline

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/mo"
	"github.com/tapedeck/tapedeck/player"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// Session is a running media backend.
type Session interface {
	player.Surface
	player.Controls
	// Wait is closed when the backend goes away.
	Wait() <-chan struct{}
	Close() error
}

// Launcher starts a backend for cfg whose playback events are delivered to sink.
type Launcher func(ctx context.Context, cfg videoplayer.Config, opts player.Options, sink player.EventSink) (Session, error)

type Options struct {
	Out          io.Writer
	Source       string
	Title        string
	Headers      map[string]string
	Thumbnail    mo.Option[string]
	EndThumbnail mo.Option[string]
	Json         bool

	// Launcher defaults to LaunchMPV.
	Launcher mo.Option[Launcher]
}

// mpvSession couples an mpv process with its event listener.
type mpvSession struct {
	*player.MPV
	listener *player.EventListener
}

func (s *mpvSession) Close() error {
	s.listener.Stop()
	return s.MPV.Close()
}

// LaunchMPV opens mpv and streams its events into sink.
func LaunchMPV(_ context.Context, cfg videoplayer.Config, opts player.Options, sink player.EventSink) (Session, error) {
	m, err := player.Open(cfg.Source, opts)
	if err != nil {
		return nil, err
	}

	listener := player.NewEventListener(m.Socket(), sink)
	if err := listener.Start(); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("listen for mpv events: %w", err)
	}

	return &mpvSession{MPV: m, listener: listener}, nil
}
