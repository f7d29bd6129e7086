package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/tapedeck/tapedeck/icon"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// rect is a cell region relative to the padded content origin.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// target is what a pointer press landed on.
type target int

const (
	targetNone target = iota
	targetStart
	targetOverlay
	targetPlay
	targetMute
	targetFullscreen
	targetSeek
)

const (
	headerRows   = 2 // title and a blank line
	footerRows   = 3 // controls, a blank line and the help
	minScreenRow = 3
)

// layout positions every interactive element of a rendered View.
type layout struct {
	width int

	screen   rect
	controls rect

	play, time, mute, fullscreen rect
	// seek is the seek bar container; track is the part left after padding.
	seek, track rect

	playLabel, timeLabel, muteLabel, fullscreenLabel string
}

func computeLayout(v videoplayer.View, width, height, padLeft, padRight int) layout {
	l := layout{width: width}

	// Terminal cells are roughly twice as tall as they are wide.
	rows := int(v.Height / 2)
	maxRows := height - headerRows - footerRows
	rows = lo.Clamp(rows, minScreenRow, max(maxRows, minScreenRow))

	l.screen = rect{x: 0, y: headerRows, w: width, h: rows}
	l.controls = rect{x: 0, y: headerRows + rows, w: width, h: 1}

	if v.Screen != videoplayer.ScreenVideo || v.Controls != videoplayer.ControlsFull {
		return l
	}

	l.playLabel = " " + icon.Get(lo.Ternary(v.Playing, icon.Pause, icon.Play)) + " "
	if v.ShowTime {
		l.timeLabel = " " + v.Time + " "
	}
	if v.ShowMute {
		l.muteLabel = " " + icon.Get(lo.Ternary(v.Muted, icon.VolumeOff, icon.VolumeOn)) + " "
	}
	if v.ShowFullscreen {
		l.fullscreenLabel = " " + icon.Get(icon.Fullscreen) + " "
	}

	y := l.controls.y
	x := 0
	place := func(label string) rect {
		r := rect{x: x, y: y, w: lipgloss.Width(label), h: 1}
		x += r.w
		return r
	}

	l.play = place(l.playLabel)
	l.time = place(l.timeLabel)

	rightWidth := lipgloss.Width(l.muteLabel) + lipgloss.Width(l.fullscreenLabel)
	l.seek = rect{x: x, y: y, w: max(width-x-rightWidth, 0), h: 1}
	x += l.seek.w

	l.mute = place(l.muteLabel)
	l.fullscreen = place(l.fullscreenLabel)

	trackWidth := max(l.seek.w-padLeft-padRight, 0)
	l.track = rect{x: l.seek.x + padLeft, y: y, w: trackWidth, h: 1}

	return l
}

// hit resolves a press at x, y for the screen the layout was computed for.
func (l *layout) hit(v videoplayer.View, x, y int) target {
	if v.Screen != videoplayer.ScreenVideo {
		if l.screen.contains(x, y) {
			return targetStart
		}
		return targetNone
	}

	switch {
	case l.screen.contains(x, y):
		return targetOverlay
	case v.Controls != videoplayer.ControlsFull:
		if l.controls.contains(x, y) {
			return targetOverlay
		}
	case l.play.contains(x, y):
		return targetPlay
	case l.mute.contains(x, y):
		return targetMute
	case l.fullscreen.contains(x, y):
		return targetFullscreen
	case l.seek.contains(x, y) && v.ShowKnob:
		return targetSeek
	}
	return targetNone
}
