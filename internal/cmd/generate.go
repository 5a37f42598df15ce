// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		title   string
		dryRun  bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <text-file>",
		Short: "Generate a deck from a text file",
		Long: `Generate flashcards from plain text with a question-generation model.

The text is split into chunks; the model produces one question per
chunk and the answer is picked from the source sentences. The result
is saved as a new deck unless --dry-run is set.

Requires network access; set FLASHLEARN_HF_TOKEN for authenticated
requests to the inference API.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			data, err := afero.ReadFile(app.FS, args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			text := strings.TrimSpace(string(data))
			if text == "" {
				return fmt.Errorf("%s is empty", args[0])
			}

			gen := flashlearn.NewGenerator(app.Cfg.HFAPIURL, app.Cfg.HFToken)
			cards, err := gen.GenerateCards(cmd.Context(), text)
			if err != nil {
				return err
			}

			if dryRun {
				if asJSON {
					return printJSON(cards)
				}
				for i, c := range cards {
					fmt.Printf("%d. Q: %s\n   A: %s\n", i+1, c.Question, c.Answer)
				}
				return nil
			}

			if title == "" {
				title = fmt.Sprintf("Generated from %s", args[0])
			}
			decks := app.Decks.Load(session.Username)
			decks, deck, err := app.Decks.Create(decks, session.Username, title, cards)
			if err != nil {
				return err
			}
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}

			if asJSON {
				return printJSON(deck)
			}
			fmt.Printf("Deck %q created with %d generated card(s)\n", deck.Title, deck.CardCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title for the new deck (default: derived from the file name)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print cards without saving a deck")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
