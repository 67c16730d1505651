package timer

import (
	"fmt"
	"time"
)

// FormatMillis formats a millisecond count in a human-readable way.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return FormatDuration(time.Duration(ms) * time.Millisecond)
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}

// FormatClock formats a duration as H:MM:SS for live timer displays.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
