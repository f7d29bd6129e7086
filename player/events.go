package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/tapedeck/tapedeck/log"
)

// observed lists the mpv properties forwarded to an EventSink.
var observed = []string{
	"time-pos",
	"duration",
	"eof-reached",
	"fullscreen",
}

// EventListener streams mpv property changes into an EventSink.
type EventListener struct {
	socketPath string
	sink       EventSink
	conn       net.Conn
	done       chan struct{}
	mu         sync.Mutex
	listening  bool

	// fullscreen remembers the last reported value so only a true to false
	// transition counts as a dismissal.
	fullscreen bool
}

// NewEventListener creates a listener for the given socket.
func NewEventListener(socketPath string, sink EventSink) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		sink:       sink,
		done:       make(chan struct{}),
	}
}

// Start subscribes to the observed properties on a dedicated connection and
// dispatches notifications until Stop is called or mpv goes away.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	// Observers are tied to the connection that registered them.
	enc := json.NewEncoder(conn)
	for i, name := range observed {
		if err := enc.Encode(ipcCommand{Command: []any{"observe_property", i + 1, name}}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	go el.readLoop()

	log.Infof("mpv event listener started on %s (observing: %v)", el.socketPath, observed)
	return nil
}

// Stop terminates the listener and waits for the read loop to exit.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	el.listening = false
	el.conn.Close()
	el.mu.Unlock()

	<-el.done
}

// Done is closed once the read loop has exited.
func (el *EventListener) Done() <-chan struct{} {
	return el.done
}

func (el *EventListener) readLoop() {
	defer close(el.done)

	scanner := bufio.NewScanner(el.conn)
	for scanner.Scan() {
		el.processEvent(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, os.ErrDeadlineExceeded) {
		log.Warnf("event listener read error: %v", err)
	}

	el.mu.Lock()
	el.listening = false
	el.mu.Unlock()
}

// processEvent decodes one line from mpv and forwards property changes.
func (el *EventListener) processEvent(line []byte) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		log.Tracef("skipping unparseable mpv line: %s", line)
		return
	}

	if msg.Event != "property-change" {
		return
	}

	switch msg.Name {
	case "time-pos":
		if pos, ok := msg.Data.(float64); ok {
			el.sink.OnProgress(pos)
		}
	case "duration":
		if d, ok := msg.Data.(float64); ok {
			el.sink.OnLoad(d)
		}
	case "eof-reached":
		if eof, ok := msg.Data.(bool); ok && eof {
			el.sink.OnEnd()
		}
	case "fullscreen":
		fs, ok := msg.Data.(bool)
		if !ok {
			return
		}
		was := el.fullscreen
		el.fullscreen = fs
		if was && !fs {
			el.sink.OnFullscreenDismissed()
		}
	}
}
