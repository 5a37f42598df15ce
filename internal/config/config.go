// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application-wide configuration. Values come from (in
// order of precedence) FLASHLEARN_* environment variables, a
// flashlearn.yaml config file, and built-in defaults.
type Config struct {
	// DataDir is the root under which user_decks/, user_progress/ and
	// user_settings/ live, plus the current_user.txt session marker.
	DataDir string `mapstructure:"data_dir"`

	// Hugging Face inference API used by card generation.
	HFAPIURL string `mapstructure:"hf_api_url"`
	HFToken  string `mapstructure:"hf_token"`

	// WebAddr is the default bind address for the web dashboard.
	WebAddr string `mapstructure:"web_addr"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("hf_api_url", "https://api-inference.huggingface.co/models/valhalla/t5-base-qg-hl")
	v.SetDefault("hf_token", "")
	v.SetDefault("web_addr", "127.0.0.1:8080")

	v.SetEnvPrefix("FLASHLEARN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("flashlearn")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "flashlearn"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".flashlearn")
}
