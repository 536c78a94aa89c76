package tui

import (
	"fmt"
	"time"
)

// FormatClock renders a second count as zero-padded HH:MM:SS,
// e.g. 3725 -> "01:02:05".
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatTriple renders a configured duration compactly for preset and
// history rows (e.g. "1h 2m 5s", "25m", "45s").
func FormatTriple(hours, minutes, seconds int) string {
	switch {
	case hours > 0 && minutes == 0 && seconds == 0:
		return fmt.Sprintf("%dh", hours)
	case hours > 0 && seconds == 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0 && seconds == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatCompletedAt renders a history timestamp.
func FormatCompletedAt(t time.Time) string {
	return t.Local().Format("Jan 2 15:04")
}
