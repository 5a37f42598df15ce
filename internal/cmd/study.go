// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newStudyCmd(app *App) *cobra.Command {
	var (
		order      string
		autoReveal int
	)

	cmd := &cobra.Command{
		Use:   "study <deck>",
		Short: "Study a deck interactively",
		Long: `Walk through a deck card by card.

Commands inside the session:
  reveal (r)   show the answer
  correct (c)  mark the card correct and advance
  wrong (w)    mark the card wrong and advance
  next (n)     advance without answering
  prev (p)     go back one card
  quit (q)     end the session

Card order and the auto-reveal timer default to the user's settings;
--order and --auto-reveal override them for one session.`,
		Args: cobra.ExactArgs(1),
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
			if len(deck.Cards) == 0 {
				return fmt.Errorf("deck %q has no cards", deck.Title)
			}

			settings := app.Settings.Load(session.Username)
			if order == "" {
				order = settings.CardOrder
			}
			if !cmd.Flags().Changed("auto-reveal") {
				autoReveal = settings.AutoRevealTime
			}

			positions := make([]int, len(deck.Cards))
			for i := range positions {
				positions[i] = i
			}
			if order == "random" {
				rand.Shuffle(len(positions), func(i, j int) {
					positions[i], positions[j] = positions[j], positions[i]
				})
			}

			record := func(cardIndex int, correct bool) {
				key := deck.Cards[cardIndex].Key(cardIndex)
				if err := app.Progress.RecordAnswer(session.Username, deck.Title, key, correct); err != nil {
					// Keep studying; the next successful save catches up.
					fmt.Fprintf(os.Stderr, "Warning: could not save progress: %v\n", err)
				}
			}

			runStudySession(deck, positions, autoReveal, record)

			overall := app.Progress.Overall(session.Username, app.Decks.Load(session.Username))
			fmt.Printf("\nSession over. Overall mastery: %.0f%% (%d/%d cards)\n",
				overall.Percentage, overall.MasteredCards, overall.TotalCards)
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "Card order: sequential or random (default: settings)")
	cmd.Flags().IntVar(&autoReveal, "auto-reveal", 0, "Seconds until the answer shows itself, 0 disables (default: settings)")

	return cmd
}

func studyGreeting(title string, cards int) string {
	return fmt.Sprintf("Studying %q (%d card(s)). Type 'reveal', 'correct', 'wrong', 'next', 'prev', 'quit'.", title, cards)
}

// runStudySession drives the interactive loop. Input lines arrive on a
// channel so the auto-reveal timer can race user input; the reader
// goroutine exits with stdin and shares nothing but the channel.
func runStudySession(deck flashlearn.Deck, positions []int, autoReveal int, record func(cardIndex int, correct bool)) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	pos := 0
	revealed := false
	var autoC <-chan time.Time

	show := func() {
		revealed = false
		autoC = nil
		card := deck.Cards[positions[pos]]
		fmt.Printf("\n[%d/%d] Q: %s\n> ", pos+1, len(positions), card.Question)
		if autoReveal > 0 {
			autoC = time.After(time.Duration(autoReveal) * time.Second)
		}
	}
	reveal := func() {
		if !revealed {
			fmt.Printf("A: %s\n> ", deck.Cards[positions[pos]].Answer)
			revealed = true
			autoC = nil
		}
	}
	advance := func() bool {
		if pos+1 >= len(positions) {
			fmt.Println("End of deck.")
			return false
		}
		pos++
		show()
		return true
	}

	fmt.Println(studyGreeting(deck.Title, len(positions)))
	show()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "reveal", "r":
				reveal()
			case "correct", "c":
				reveal()
				record(positions[pos], true)
				if !advance() {
					return
				}
			case "wrong", "w":
				reveal()
				record(positions[pos], false)
				if !advance() {
					return
				}
			case "next", "n":
				if !advance() {
					return
				}
			case "prev", "p":
				if pos > 0 {
					pos--
				}
				show()
			case "quit", "q":
				return
			case "":
				fmt.Print("> ")
			default:
				fmt.Print("Unknown command (reveal/correct/wrong/next/prev/quit)\n> ")
			}
		case <-autoC:
			reveal()
		}
	}
}
