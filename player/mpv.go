package player

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/where"
	"golang.org/x/exp/slices"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

var (
	_ Surface  = (*MPV)(nil)
	_ Controls = (*MPV)(nil)
)

// Options tune how mpv is launched.
type Options struct {
	// Title is shown in the mpv window title.
	Title string
	// Headers are forwarded as HTTP header fields for remote sources.
	Headers map[string]string
	// Paused starts the media paused; the controller unpauses it on start.
	Paused bool
	// Muted starts the media muted.
	Muted bool
}

// MPV is a Surface backed by an mpv process controlled over JSON-IPC.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits
	mu         sync.Mutex    // serializes IPC writes
}

// Open launches mpv for the given media target and waits until its IPC
// socket accepts connections.
func Open(target string, opts Options) (*MPV, error) {
	safeTarget, err := sanitizeMediaTarget(target)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	m := &MPV{
		socketPath: socketPath(uuid.NewString()),
		exited:     make(chan struct{}),
	}

	m.cmd = exec.Command("mpv", launchArgs(m.socketPath, safeTarget, opts)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return nil, fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.Infof("mpv started for %s on %s", safeTarget, m.socketPath)
	return m, nil
}

// socketPath names the IPC socket of one mpv instance.
func socketPath(id string) string {
	return filepath.Join(where.Temp(), fmt.Sprintf("%s-%s.sock", constant.App, id[:8]))
}

// launchArgs builds the mpv command line. Only IPC, window and start-state
// flags are passed so the user's mpv.conf stays in charge of rendering.
func launchArgs(socketPath, target string, opts Options) []string {
	title := sanitizeTitle(opts.Title)
	if title == "" {
		title = constant.App
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socketPath,
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
		// Hold the last frame at end of file; the controller decides what happens next.
		"--keep-open=yes",
		fmt.Sprintf("--pause=%s", yesNo(opts.Paused)),
		fmt.Sprintf("--mute=%s", yesNo(opts.Muted)),
	}

	if header := headerFields(opts.Headers); header != "" {
		args = append(args, "--http-header-fields="+header)
	}

	return append(args, "--", target)
}

// headerFields joins headers in key order as mpv's comma separated list.
func headerFields(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}

	keys := lo.Keys(headers)
	slices.Sort(keys)

	fields := lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %s", k, strings.ReplaceAll(headers[k], ",", "%2C"))
	})
	return strings.Join(fields, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Seek moves playback to the given absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand("seek", seconds, "absolute")
	return err
}

// PresentFullscreen switches the mpv window to fullscreen.
func (m *MPV) PresentFullscreen() error {
	return m.Set("fullscreen", true)
}

// DismissFullscreen leaves fullscreen.
func (m *MPV) DismissFullscreen() error {
	return m.Set("fullscreen", false)
}

// SetPaused sets mpv's pause property.
func (m *MPV) SetPaused(paused bool) error {
	return m.Set("pause", paused)
}

// SetMuted sets mpv's mute property.
func (m *MPV) SetMuted(muted bool) error {
	return m.Set("mute", muted)
}

// TimePos returns the current playback position in seconds.
func (m *MPV) TimePos() (float64, error) {
	return m.getFloatProperty("time-pos")
}

// Duration returns the duration of the loaded media in seconds.
func (m *MPV) Duration() (float64, error) {
	return m.getFloatProperty("duration")
}

// Set writes an mpv property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand("set_property", property, value)
	return err
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand("get_property", "pid")
	return err == nil
}

// Close asks mpv to quit, kills it if it does not, and removes the socket.
func (m *MPV) Close() error {
	select {
	case <-m.exited:
	default:
		_, _ = m.sendCommand("quit")

		select {
		case <-m.exited:
		case <-time.After(quitTimeout):
			log.Warnf("mpv did not quit within %s, killing it", quitTimeout)
			_ = killProcess(m.cmd)
		}
	}

	if err := os.Remove(m.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove socket: %w", err)
	}
	return nil
}

func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand("get_property", name)
	if err != nil {
		return 0, err
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget validates that a media source is safe to hand to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty media source")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in media source")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("media source must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
