// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newDeckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage flashcard decks",
		Long:  "Create, list, edit, and delete flashcard decks for the signed-in user.",
	}

	cmd.AddCommand(newDeckAddCmd(app))
	cmd.AddCommand(newDeckListCmd(app))
	cmd.AddCommand(newDeckShowCmd(app))
	cmd.AddCommand(newDeckEditCmd(app))
	cmd.AddCommand(newDeckDeleteCmd(app))
	cmd.AddCommand(newDeckFavoriteCmd(app))

	return cmd
}

// parseCardFlags turns repeated "question | answer" flag values into
// cards. Sides missing their counterpart are dropped later by Create.
func parseCardFlags(values []string) []flashlearn.Card {
	cards := make([]flashlearn.Card, 0, len(values))
	for _, v := range values {
		question, answer, _ := strings.Cut(v, "|")
		cards = append(cards, flashlearn.Card{
			Question: strings.TrimSpace(question),
			Answer:   strings.TrimSpace(answer),
		})
	}
	return cards
}

func newDeckAddCmd(app *App) *cobra.Command {
	var (
		title     string
		cardSpecs []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new deck",
		Long: `Create a deck from --card flags, each "question | answer".

Examples:
  flashlearn deck add --title Biology --card "What is a cell? | The basic unit of life"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks := app.Decks.Load(session.Username)
			decks, deck, err := app.Decks.Create(decks, session.Username, title, parseCardFlags(cardSpecs))
			if err != nil {
				return err
			}
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}

			if asJSON {
				return printJSON(deck)
			}
			fmt.Printf("Deck %q created with %d card(s)\n", deck.Title, deck.CardCount)
			fmt.Printf("ID: %s\n", deck.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Deck title (required)")
	cmd.Flags().StringArrayVarP(&cardSpecs, "card", "c", nil, `Card as "question | answer" (repeatable)`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newDeckListCmd(app *App) *cobra.Command {
	var (
		filter string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your decks",
		Long: `List decks owned by the signed-in user.

Examples:
  flashlearn deck list
  flashlearn deck list --filter favorites
  flashlearn deck list --filter recent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks := app.Decks.Load(session.Username)
			shown := app.Decks.Filter(decks, session.Username, filter)

			if asJSON {
				return printJSON(shown)
			}
			if len(shown) == 0 {
				fmt.Println("No flashcard decks yet. Create one with 'flashlearn deck add'.")
				return nil
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tTITLE\tCARDS\tFAV\tCREATED")
			for _, d := range shown {
				fav := ""
				if d.IsFavorite {
					fav = "*"
				}
				created := d.CreatedAt
				if ts, err := time.ParseInLocation(flashlearn.TimeLayout, d.CreatedAt, time.Local); err == nil {
					created = humanize.Time(ts)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", truncate(d.ID, 8), truncate(d.Title, 40), d.CardCount, fav, created)
			}
			w.Flush()

			fmt.Printf("\nTotal: %d deck(s)\n", len(shown))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", flashlearn.FilterAll, "Filter: all, favorites, recent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newDeckShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <deck>",
		Short: "Show a deck's cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks, idx, err := resolveDeck(app, session.Username, args[0])
			if err != nil {
				return err
			}
			deck := decks[idx]

			if asJSON {
				return printJSON(deck)
			}

			fmt.Printf("%s (%d cards)\n", deck.Title, deck.CardCount)
			if deck.UpdatedAt != "" {
				fmt.Printf("Updated: %s\n", deck.UpdatedAt)
			}
			fmt.Println()
			for i, c := range deck.Cards {
				fmt.Printf("%d. Q: %s\n   A: %s\n", i+1, c.Question, c.Answer)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newDeckEditCmd(app *App) *cobra.Command {
	var (
		title     string
		cardSpecs []string
	)

	cmd := &cobra.Command{
		Use:   "edit <deck>",
		Short: "Replace a deck's title and cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks, idx, err := resolveDeck(app, session.Username, args[0])
			if err != nil {
				return err
			}

			if title == "" {
				title = decks[idx].Title
			}
			cards := parseCardFlags(cardSpecs)
			if len(cardSpecs) == 0 {
				cards = decks[idx].Cards
			}

			deck, err := app.Decks.Update(decks, idx, title, cards)
			if err != nil {
				return err
			}
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}

			fmt.Printf("Deck %q updated with %d card(s)\n", deck.Title, deck.CardCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title (keeps current when omitted)")
	cmd.Flags().StringArrayVarP(&cardSpecs, "card", "c", nil, `Replacement card as "question | answer" (repeatable)`)

	return cmd
}

func newDeckDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <deck>",
		Short: "Delete a deck",
		Long:  "Delete a deck after confirmation. Its progress record is left in place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks, idx, err := resolveDeck(app, session.Username, args[0])
			if err != nil {
				return err
			}
			title := decks[idx].Title

			if !yes && !confirm(fmt.Sprintf("Delete deck %q?", title)) {
				fmt.Println("Aborted.")
				return nil
			}

			decks = app.Decks.Delete(decks, idx)
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}
			fmt.Printf("Deck %q deleted\n", title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newDeckFavoriteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite <deck>",
		Short: "Toggle a deck's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks, idx, err := resolveDeck(app, session.Username, args[0])
			if err != nil {
				return err
			}
			app.Decks.ToggleFavorite(decks, idx)
			if err := app.Decks.Save(session.Username, decks); err != nil {
				return err
			}

			state := "unfavorited"
			if decks[idx].IsFavorite {
				state = "favorited"
			}
			fmt.Printf("Deck %q %s\n", decks[idx].Title, state)
			return nil
		},
	}
	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
