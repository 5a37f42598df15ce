// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newImportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import decks from a file",
		Long: `Import decks from JSON, YAML, CSV, or XLSX.

The format is taken from the file extension unless --format is set.
CSV rows are deck,question,answer; two-column files become a single
deck named after the file. Imported decks get fresh IDs and timestamps
and incomplete cards are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			if format == "" {
				format = formatFromPath(args[0])
			}
			data, err := afero.ReadFile(app.FS, args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			fallback := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			imported, err := flashlearn.DecodeDecks(data, format, fallback)
			if err != nil {
				return err
			}
			if len(imported) == 0 {
				return fmt.Errorf("no decks found in %s", args[0])
			}

			decks := app.Decks.Load(session.Username)
			created := 0
			for _, d := range imported {
				next, _, err := app.Decks.Create(decks, session.Username, d.Title, d.Cards)
				if err != nil {
					fmt.Printf("Skipping deck %q: %v\n", d.Title, err)
					continue
				}
				decks = next
				created++
			}
			if created == 0 {
				return fmt.Errorf("no importable decks in %s", args[0])
			}
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}

			fmt.Printf("Imported %d deck(s) from %s\n", created, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "File format: json, yaml, csv, xlsx (default: from extension)")
	return cmd
}

// formatFromPath maps a file extension to a deck format name.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return flashlearn.FormatYAML
	case ".csv":
		return flashlearn.FormatCSV
	case ".xlsx":
		return flashlearn.FormatXLSX
	case ".md", ".markdown":
		return flashlearn.FormatMarkdown
	default:
		return flashlearn.FormatJSON
	}
}
