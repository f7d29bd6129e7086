package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// ipcCommand is one request line on mpv's JSON IPC socket. A non-zero
// RequestID is echoed back in the reply.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id,omitempty"`
}

// ipcMessage is any line mpv writes back: a command reply or an event.
type ipcMessage struct {
	Event     string `json:"event,omitempty"`
	Name      string `json:"name,omitempty"`
	Data      any    `json:"data"`
	Error     string `json:"error,omitempty"`
	RequestID int64  `json:"request_id,omitempty"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = time.Second
)

var requestIDs atomic.Int64

// sendCommand runs a command against mpv, retrying connection failures.
func (m *MPV) sendCommand(command ...any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err != nil {
			lastErr = fmt.Errorf("connect: %w", err)
			continue
		}

		result, err := roundTrip(conn, command)
		_ = conn.Close()
		if err == nil {
			return result, nil
		}
		if _, ok := err.(mpvError); ok {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc %v: giving up after %d attempts: %w", command[0], maxRetries, lastErr)
}

// mpvError is an error reported by mpv itself; retrying will not help.
type mpvError string

func (e mpvError) Error() string {
	return "mpv: " + string(e)
}

// roundTrip writes one command and waits for its reply, skipping the events
// and unrelated replies mpv interleaves.
func roundTrip(conn net.Conn, command []any) (any, error) {
	id := requestIDs.Add(1)
	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}
		if msg.Event != "" || msg.RequestID != id {
			continue
		}
		if msg.Error != "" && msg.Error != "success" {
			return nil, mpvError(msg.Error)
		}
		return msg.Data, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, fmt.Errorf("read: connection closed before reply")
}
