// Package inline plays media headlessly and reports every displayed change on a writer.
package inline

import (
	"context"
	"os"
	"sync"

	"github.com/tapedeck/tapedeck/config"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/player"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// Run plays options.Source until it ends (unless looping), the backend exits
// or ctx is cancelled.
func Run(ctx context.Context, options *Options) error {
	cfg := config.PlayerConfig(options.Source)
	cfg.Thumbnail = options.Thumbnail
	cfg.EndThumbnail = options.EndThumbnail
	cfg.Autoplay = true
	cfg.DisableControlsAutoHide = true

	return run(ctx, options, cfg)
}

func run(ctx context.Context, options *Options, cfg videoplayer.Config) error {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	var (
		mu       sync.Mutex
		last     Snapshot
		writeErr error
		ctl      *videoplayer.Controller
		ended    = make(chan struct{})
		endOnce  sync.Once
	)

	report := func(state videoplayer.PlayerState) {
		snapshot := newSnapshot(cfg.Source, ctl.View(), state)

		mu.Lock()
		defer mu.Unlock()
		if writeErr != nil || snapshot.displayed() == last.displayed() {
			return
		}
		last = snapshot
		writeErr = writeSnapshot(out, snapshot, options.Json)
	}

	ctl, err := videoplayer.New(cfg, videoplayer.Callbacks{
		OnChange: report,
		OnEnd: func() {
			if !cfg.Loop {
				endOnce.Do(func() { close(ended) })
			}
		},
	})
	if err != nil {
		return err
	}
	defer ctl.Close()

	report(ctl.State())

	launch := options.Launcher.OrElse(LaunchMPV)
	session, err := launch(ctx, cfg, player.Options{
		Title:   options.Title,
		Headers: options.Headers,
		Paused:  true,
		Muted:   cfg.Muted || cfg.DefaultMuted,
	}, ctl)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warnf("close backend: %v", err)
		}
	}()

	async := player.NewAsync(session)
	defer async.Close()
	ctl.Attach(async)

	select {
	case <-ended:
		log.Info("inline playback ended")
	case <-session.Wait():
		log.Info("backend exited")
	case <-ctx.Done():
	}

	ctl.Detach()
	report(ctl.State())

	mu.Lock()
	defer mu.Unlock()
	return writeErr
}
