package cmd

import (
	"strings"
	"testing"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long deck title", 10); got != "a very ..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"decks.json":   flashlearn.FormatJSON,
		"decks.YAML":   flashlearn.FormatYAML,
		"decks.yml":    flashlearn.FormatYAML,
		"decks.csv":    flashlearn.FormatCSV,
		"decks.xlsx":   flashlearn.FormatXLSX,
		"decks.md":     flashlearn.FormatMarkdown,
		"no-extension": flashlearn.FormatJSON,
	}
	for path, want := range cases {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDashboardUsesServedWeekdayKeys(t *testing.T) {
	// The weekly chart looks up /api/weekly buckets by name; the page
	// must use the exact keys WeeklyActivity serves.
	for _, day := range flashlearn.WeekdayNames {
		if !strings.Contains(indexTemplate, "'"+day+"'") {
			t.Errorf("dashboard template missing weekday key %q", day)
		}
	}
}

func TestStudyGreeting(t *testing.T) {
	got := studyGreeting("Biology", 3)
	if got != `Studying "Biology" (3 card(s)). Type 'reveal', 'correct', 'wrong', 'next', 'prev', 'quit'.` {
		t.Errorf("greeting = %q", got)
	}
}

func TestApplySetting(t *testing.T) {
	s := flashlearn.DefaultSettings()

	if err := applySetting(&s, "theme", "dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if s.Theme != "dark" {
		t.Errorf("theme = %q", s.Theme)
	}

	if err := applySetting(&s, "auto_reveal_time", "15"); err != nil {
		t.Fatalf("set auto_reveal_time: %v", err)
	}
	if s.AutoRevealTime != 15 {
		t.Errorf("auto_reveal_time = %d", s.AutoRevealTime)
	}

	if err := applySetting(&s, "sound_enabled", "false"); err != nil {
		t.Fatalf("set sound_enabled: %v", err)
	}
	if s.SoundEnabled {
		t.Error("sound_enabled should be false")
	}

	if err := applySetting(&s, "theme", "neon"); err == nil {
		t.Error("invalid theme should be rejected")
	}
	if err := applySetting(&s, "auto_reveal_time", "-2"); err == nil {
		t.Error("negative auto_reveal_time should be rejected")
	}
	if err := applySetting(&s, "bogus", "x"); err == nil {
		t.Error("unknown key should be rejected")
	}
}
