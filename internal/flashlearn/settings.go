// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Settings are per-user preferences, one JSON object per user at
// user_settings/<username>_settings.json.
type Settings struct {
	Theme                string `json:"theme"`
	CardOrder            string `json:"card_order"`
	AutoRevealTime       int    `json:"auto_reveal_time"` // seconds, 0 = disabled
	FontSize             string `json:"font_size"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	SoundEnabled         bool   `json:"sound_enabled"`
	BackupFrequency      string `json:"backup_frequency"`
	AutoSave             bool   `json:"auto_save"`
}

// DefaultSettings returns the settings applied for any missing key.
func DefaultSettings() Settings {
	return Settings{
		Theme:                "light",
		CardOrder:            "sequential",
		AutoRevealTime:       0,
		FontSize:             "medium",
		NotificationsEnabled: true,
		SoundEnabled:         true,
		BackupFrequency:      "weekly",
		AutoSave:             true,
	}
}

// rawSettings distinguishes absent keys from zero values so defaults
// can be backfilled per-field.
type rawSettings struct {
	Theme                *string `json:"theme"`
	CardOrder            *string `json:"card_order"`
	AutoRevealTime       *int    `json:"auto_reveal_time"`
	FontSize             *string `json:"font_size"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	SoundEnabled         *bool   `json:"sound_enabled"`
	BackupFrequency      *string `json:"backup_frequency"`
	AutoSave             *bool   `json:"auto_save"`
}

// SettingsStore persists per-user settings.
type SettingsStore struct {
	fs  afero.Fs
	dir string
}

// NewSettingsStore creates a settings store rooted at dataDir.
func NewSettingsStore(fs afero.Fs, dataDir string) *SettingsStore {
	dir := filepath.Join(dataDir, "user_settings")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: cannot create %s: %v", dir, err)
	}
	return &SettingsStore{fs: fs, dir: dir}
}

func (s *SettingsStore) path(username string) string {
	return filepath.Join(s.dir, username+"_settings.json")
}

// Load returns the user's settings with defaults backfilled for any
// missing key. Missing file or invalid JSON yield pure defaults.
func (s *SettingsStore) Load(username string) Settings {
	data, err := afero.ReadFile(s.fs, s.path(username))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read settings for %s: %v", username, err)
		}
		return DefaultSettings()
	}
	settings, err := ParseSettings(data)
	if err != nil {
		log.Printf("Warning: invalid settings JSON for %s: %v", username, err)
		return DefaultSettings()
	}
	return settings
}

// Save rewrites the user's settings file.
func (s *SettingsStore) Save(username string, settings Settings) error {
	data, err := json.MarshalIndent(normalize(settings), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(username), data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Reset restores defaults for the user.
func (s *SettingsStore) Reset(username string) error {
	return s.Save(username, DefaultSettings())
}

// MarshalSettings renders settings as indented JSON, the same shape
// the store writes. Used for settings export.
func MarshalSettings(s Settings) ([]byte, error) {
	data, err := json.MarshalIndent(normalize(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}

// ParseSettings decodes a settings document, backfilling defaults for
// missing keys and discarding unknown values for enum fields. Used for
// Load and for settings import.
func ParseSettings(data []byte) (Settings, error) {
	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	out := DefaultSettings()
	if raw.Theme != nil {
		out.Theme = *raw.Theme
	}
	if raw.CardOrder != nil {
		out.CardOrder = *raw.CardOrder
	}
	if raw.AutoRevealTime != nil {
		out.AutoRevealTime = *raw.AutoRevealTime
	}
	if raw.FontSize != nil {
		out.FontSize = *raw.FontSize
	}
	if raw.NotificationsEnabled != nil {
		out.NotificationsEnabled = *raw.NotificationsEnabled
	}
	if raw.SoundEnabled != nil {
		out.SoundEnabled = *raw.SoundEnabled
	}
	if raw.BackupFrequency != nil {
		out.BackupFrequency = *raw.BackupFrequency
	}
	if raw.AutoSave != nil {
		out.AutoSave = *raw.AutoSave
	}
	return normalize(out), nil
}

// normalize clamps enum fields back to their defaults when they hold
// unknown values.
func normalize(s Settings) Settings {
	def := DefaultSettings()
	if s.Theme != "light" && s.Theme != "dark" {
		s.Theme = def.Theme
	}
	if s.CardOrder != "sequential" && s.CardOrder != "random" {
		s.CardOrder = def.CardOrder
	}
	switch s.FontSize {
	case "small", "medium", "large":
	default:
		s.FontSize = def.FontSize
	}
	if s.AutoRevealTime < 0 {
		s.AutoRevealTime = 0
	}
	return s
}
