// Package ui provides a transient status line for Bubble Tea programs.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapedeck/tapedeck/style"
)

// notificationLifetime is how long a notification stays on screen.
const notificationLifetime = 3 * time.Second

// Model holds the current notification, if any.
type Model struct {
	notification string
	seq          int
}

// NotifyMsg carries a notification to display.
type NotifyMsg string

// clearMsg clears the notification with the matching sequence number.
type clearMsg struct{ seq int }

// Notify returns a command that shows text in the status line.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(text)
	}
}

// Update handles notification messages and reports whether msg was one.
func (m *Model) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.notification = string(msg)
		m.seq++
		seq := m.seq
		return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
			return clearMsg{seq: seq}
		}), true
	case clearMsg:
		// a newer notification restarted the countdown
		if msg.seq == m.seq {
			m.notification = ""
		}
		return nil, true
	}
	return nil, false
}

// Current returns the notification being displayed.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
