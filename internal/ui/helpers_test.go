package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"shorter than limit", "Dune", 10, "Dune"},
		{"exact fit", "Dune", 4, "Dune"},
		{"cut with ellipsis", "Dune Messiah", 8, "Dune Me…"},
		{"limit one", "Dune", 1, "D"},
		{"zero limit", "Dune", 0, ""},
		{"negative limit", "Dune", -1, ""},
		{"multibyte runes", "日本語のタイトル", 4, "日本語…"},
		{"trims whitespace", "  Dune  ", 10, "Dune"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.value, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.value, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		name  string
		value string
		width int
		want  string
	}{
		{"pads short value", "Dune", 8, "Dune    "},
		{"exact width", "Dune", 4, "Dune"},
		{"truncates long value", "Dune Messiah", 6, "Dune …"},
		{"zero width", "Dune", 0, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.value, tc.width)
			if got != tc.want {
				t.Fatalf("pad(%q, %d) = %q, want %q", tc.value, tc.width, got, tc.want)
			}
			if tc.width > 0 && len([]rune(got)) != tc.width {
				t.Fatalf("pad(%q, %d) rendered %d runes", tc.value, tc.width, len([]rune(got)))
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	if got := relativeTime(time.Time{}); got != "" {
		t.Fatalf("relativeTime(zero) = %q, want empty", got)
	}

	now := time.Now()
	if got := relativeTime(now); got != now.Format("15:04:05")+" (now)" {
		t.Fatalf("relativeTime(now) = %q", got)
	}

	fiveMin := now.Add(-5 * time.Minute)
	if got := relativeTime(fiveMin); got != fiveMin.Format("15:04:05")+" (5m ago)" {
		t.Fatalf("relativeTime(-5m) = %q", got)
	}

	threeHours := now.Add(-3 * time.Hour)
	if got := relativeTime(threeHours); got != threeHours.Format("15:04:05")+" (3h ago)" {
		t.Fatalf("relativeTime(-3h) = %q", got)
	}
}
