package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Blue     = lipgloss.Color("#89b4fa")
	Lavender = lipgloss.Color("#b4befe")
)

// Semantic mappings used by the player screens.
var (
	AccentColor  = Mauve
	SuccessColor = Green
	ErrorColor   = Red
	FaintColor   = Overlay

	// seek bar
	TrackColor = Surface
	FillColor  = Lavender
	KnobColor  = Text

	// screens
	ScreenColor      = Base
	PlaceholderColor = Surface
	ThumbnailColor   = Blue
)
