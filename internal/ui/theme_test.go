package ui

import "testing"

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}

	if got := GetTheme("nope"); got.Name != "Nightfox" {
		t.Fatalf("unknown theme resolved to %q, want Nightfox", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}

	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}

	if current != names[0] {
		t.Fatalf("cycle did not return to %q, ended on %q", names[0], current)
	}
	if len(seen) != len(names) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(names))
	}

	if got := NextTheme("nope"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestStatusColor(t *testing.T) {
	theme := GetTheme("Nightfox")
	if theme.StatusColor(true) != theme.Success {
		t.Fatal("available should use the success color")
	}
	if theme.StatusColor(false) != theme.Warning {
		t.Fatal("issued should use the warning color")
	}
}
