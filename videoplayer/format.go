package videoplayer

import "fmt"

// FormatTime renders a position as MM:SS, or HH:MM:SS once it reaches an
// hour. Positions past 99 hours collapse to "<hours>h".
func FormatTime(seconds float64) string {
	total := int(seconds)
	if total <= 0 {
		return "00:00"
	}

	hours := total / 3600
	minutes := total / 60 % 60
	secs := total % 60

	switch {
	case hours > 99:
		return fmt.Sprintf("%dh", hours)
	case hours > 0:
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	default:
		return fmt.Sprintf("%02d:%02d", minutes, secs)
	}
}
