// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/config"
	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

// App bundles configuration and the per-concern stores so each command
// receives its dependencies explicitly instead of reading ambient
// state from disk.
type App struct {
	Cfg      *config.Config
	FS       afero.Fs
	Decks    *flashlearn.DeckStore
	Progress *flashlearn.ProgressTracker
	Settings *flashlearn.SettingsStore
	Sessions *flashlearn.SessionStore
}

// NewApp wires the stores over the given filesystem and data root.
func NewApp(cfg *config.Config, fs afero.Fs) *App {
	return &App{
		Cfg:      cfg,
		FS:       fs,
		Decks:    flashlearn.NewDeckStore(fs, cfg.DataDir),
		Progress: flashlearn.NewProgressTracker(fs, cfg.DataDir),
		Settings: flashlearn.NewSettingsStore(fs, cfg.DataDir),
		Sessions: flashlearn.NewSessionStore(fs, cfg.DataDir),
	}
}

// NewRootCmd creates the root command for flashlearn.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "flashlearn",
		Short: "Study flashcard decks and track your progress",
		Long: `Create and study flashcard decks, tracked per user.

flashlearn provides tools to:
- Create, edit, and organize flashcard decks
- Study decks with reveal/next/previous navigation
- Track per-card correct/wrong progress and mastery
- Generate cards from text with a question-generation model
- Import and export decks in several formats`,
	}

	root.AddCommand(newUserCmd(app))
	root.AddCommand(newDeckCmd(app))
	root.AddCommand(newStudyCmd(app))
	root.AddCommand(newProgressCmd(app))
	root.AddCommand(newSettingsCmd(app))
	root.AddCommand(newGenerateCmd(app))
	root.AddCommand(newImportCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newWatchCmd(app))
	root.AddCommand(newWebCmd(app))
	root.AddCommand(newBackupCmd(app))

	return root
}
