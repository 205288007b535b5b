package ui

import (
	"fmt"
	"strings"
	"time"
)

// truncate shortens value to limit runes, appending an ellipsis when cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// pad right-pads or truncates value to exactly width runes.
func pad(value string, width int) string {
	if width <= 0 {
		return ""
	}
	value = truncate(value, width)
	if gap := width - len([]rune(value)); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}

// relativeTime renders a timestamp with a coarse "ago" suffix for the header.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	since := time.Since(t)
	stamp := t.Format("15:04:05")
	switch {
	case since < time.Minute:
		return stamp + " (now)"
	case since < time.Hour:
		return fmt.Sprintf("%s (%dm ago)", stamp, int(since.Minutes()))
	default:
		return fmt.Sprintf("%s (%dh ago)", stamp, int(since.Hours()))
	}
}
