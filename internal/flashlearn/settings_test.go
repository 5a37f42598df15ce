package flashlearn

import (
	"testing"

	"github.com/spf13/afero"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	s := NewSettingsStore(afero.NewMemMapFs(), "/data")

	got := s.Load("alice")
	want := DefaultSettings()
	if got != want {
		t.Errorf("Load on missing file = %+v, want defaults %+v", got, want)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := NewSettingsStore(afero.NewMemMapFs(), "/data")

	in := DefaultSettings()
	in.Theme = "dark"
	in.CardOrder = "random"
	in.AutoRevealTime = 10
	in.SoundEnabled = false

	if err := s.Save("alice", in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load("alice"); got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestSettingsBackfillMissingKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSettingsStore(fs, "/data")

	// A partial file from an older version: only two keys present.
	afero.WriteFile(fs, "/data/user_settings/alice_settings.json",
		[]byte(`{"theme": "dark", "auto_reveal_time": 5}`), 0o644)

	got := s.Load("alice")
	if got.Theme != "dark" || got.AutoRevealTime != 5 {
		t.Errorf("explicit keys lost: %+v", got)
	}
	def := DefaultSettings()
	if got.CardOrder != def.CardOrder || got.FontSize != def.FontSize || !got.AutoSave {
		t.Errorf("missing keys not backfilled: %+v", got)
	}
}

func TestSettingsClampUnknownEnums(t *testing.T) {
	settings, err := ParseSettings([]byte(`{
		"theme": "neon",
		"card_order": "shuffled",
		"font_size": "enormous",
		"auto_reveal_time": -3,
		"sound_enabled": false
	}`))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}

	def := DefaultSettings()
	if settings.Theme != def.Theme {
		t.Errorf("theme = %q, want default %q", settings.Theme, def.Theme)
	}
	if settings.CardOrder != def.CardOrder {
		t.Errorf("card_order = %q, want default %q", settings.CardOrder, def.CardOrder)
	}
	if settings.FontSize != def.FontSize {
		t.Errorf("font_size = %q, want default %q", settings.FontSize, def.FontSize)
	}
	if settings.AutoRevealTime != 0 {
		t.Errorf("auto_reveal_time = %d, want 0", settings.AutoRevealTime)
	}
	// Valid keys still honored.
	if settings.SoundEnabled {
		t.Error("sound_enabled should stay false")
	}
}

func TestSettingsCorruptFileYieldsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSettingsStore(fs, "/data")

	afero.WriteFile(fs, "/data/user_settings/alice_settings.json", []byte("{{{"), 0o644)
	if got := s.Load("alice"); got != DefaultSettings() {
		t.Errorf("corrupt file = %+v, want defaults", got)
	}
}

func TestSettingsReset(t *testing.T) {
	s := NewSettingsStore(afero.NewMemMapFs(), "/data")

	custom := DefaultSettings()
	custom.Theme = "dark"
	if err := s.Save("alice", custom); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reset("alice"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := s.Load("alice"); got != DefaultSettings() {
		t.Errorf("after reset = %+v, want defaults", got)
	}
}
