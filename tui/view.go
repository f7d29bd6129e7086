package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/icon"
	"github.com/tapedeck/tapedeck/style"
	"github.com/tapedeck/tapedeck/videoplayer"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *bubble) View() string {
	if b.lastError != nil {
		return b.viewError()
	}

	lines := []string{
		b.viewHeader(),
		"",
		b.viewScreen(),
		b.viewControls(),
		"",
		b.helpC.View(b.keymap),
	}

	return b.notifier.View(paddingStyle.Render(strings.Join(lines, "\n")))
}

func (b *bubble) viewHeader() string {
	title := style.Title(constant.App)
	rest := max(b.width-lipgloss.Width(title)-1, 0)
	return title + " " + style.Truncate(rest)(style.Fg(style.AccentColor)(b.title))
}

func (b *bubble) viewScreen() string {
	v, r := b.view, b.layout.screen
	box := lipgloss.NewStyle().
		Width(r.w).
		Height(r.h).
		Align(lipgloss.Center, lipgloss.Center)

	start := style.Bold(icon.Get(icon.Start))

	switch v.Screen {
	case videoplayer.ScreenThumbnail, videoplayer.ScreenEndThumbnail:
		image := style.Truncate(r.w - 4)(icon.Get(icon.Thumbnail) + " " + v.Image)
		return box.Foreground(style.ThumbnailColor).Render(image + "\n\n" + start)
	case videoplayer.ScreenPlaceholder:
		return box.Background(style.PlaceholderColor).Render(start)
	}

	var status string
	switch {
	case v.Seeking:
		status = fmt.Sprintf("seeking %s", v.Time)
	case v.Playing:
		status = "playing in the " + b.backendName() + " window"
	default:
		status = "paused"
	}
	if b.launching {
		status = icon.Get(icon.Progress) + " launching " + b.backendName()
	}

	return box.Background(style.ScreenColor).Foreground(style.FaintColor).Render(status)
}

func (b *bubble) viewControls() string {
	v, l := b.view, b.layout

	if v.Screen != videoplayer.ScreenVideo {
		return ""
	}

	if v.Controls == videoplayer.ControlsMinimal {
		return renderBar(v.Progress, l.width, false)
	}

	var sb strings.Builder
	sb.WriteString(style.Bold(l.playLabel))
	sb.WriteString(style.Faint(l.timeLabel))

	left := l.track.x - l.seek.x
	right := l.seek.w - l.track.w - left
	sb.WriteString(strings.Repeat(" ", max(left, 0)))
	sb.WriteString(renderBar(v.Progress, l.track.w, v.ShowKnob))
	sb.WriteString(strings.Repeat(" ", max(right, 0)))

	sb.WriteString(l.muteLabel)
	sb.WriteString(l.fullscreenLabel)

	return sb.String()
}

// renderBar draws a progress bar of width cells, optionally with a knob.
func renderBar(progress float64, width int, knob bool) string {
	if width <= 0 {
		return ""
	}

	filled := int(progress * float64(width))
	filled = min(max(filled, 0), width)

	var knobCell string
	if knob {
		knobCell = icon.Get(icon.Knob)
		filled = max(min(filled, width-lipgloss.Width(knobCell)), 0)
	}

	rest := width - filled - lipgloss.Width(knobCell)

	return style.Fg(style.FillColor)(strings.Repeat("━", max(filled, 0))) +
		style.Fg(style.KnobColor)(knobCell) +
		style.Fg(style.TrackColor)(strings.Repeat("─", max(rest, 0)))
}

func (b *bubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	body := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	lines := []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " The media backend could not be started:",
		"",
		body,
		"",
		b.helpC.View(b.keymap),
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}
