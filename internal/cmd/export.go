// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		output string
		deck   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export decks to a file or stdout",
		Long: `Export the signed-in user's decks as JSON, YAML, CSV, Markdown,
or XLSX. With --deck only that deck is exported; without --output the
result goes to stdout (XLSX always needs --output).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks := app.Decks.Load(session.Username)
			if deck != "" {
				resolved, idx, err := resolveDeck(app, session.Username, deck)
				if err != nil {
					return err
				}
				decks = resolved[idx : idx+1]
			}
			if len(decks) == 0 {
				return fmt.Errorf("no decks to export")
			}

			if format == "" && output != "" {
				format = formatFromPath(output)
			}
			if format == "" {
				format = flashlearn.FormatJSON
			}

			data, err := flashlearn.EncodeDecks(decks, format)
			if err != nil {
				return err
			}

			if output == "" {
				if format == flashlearn.FormatXLSX {
					return fmt.Errorf("xlsx export requires --output")
				}
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := afero.WriteFile(app.FS, output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Exported %d deck(s) to %s\n", len(decks), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Format: json, yaml, csv, markdown, xlsx (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&deck, "deck", "d", "", "Export a single deck by ID or title")

	return cmd
}
