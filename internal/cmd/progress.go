// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show study progress",
		Long:  "Display mastery, per-deck ranking, and weekly activity for the signed-in user.",
	}

	cmd.AddCommand(newProgressOverviewCmd(app))
	cmd.AddCommand(newProgressRankingCmd(app))
	cmd.AddCommand(newProgressWeeklyCmd(app))

	return cmd
}

func newProgressOverviewCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Overall mastery and status totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			decks := app.Decks.Load(session.Username)
			overall := app.Progress.Overall(session.Username, decks)
			totals := app.Progress.Totals(session.Username, decks)

			if asJSON {
				return printJSON(map[string]any{
					"overall": overall,
					"totals":  totals,
				})
			}

			fmt.Printf("Study Progress for %s\n", session.Username)
			fmt.Printf("=====================%s\n\n", strings.Repeat("=", len(session.Username)))
			fmt.Printf("Mastery:       %.0f%% (%d of %d cards)\n", overall.Percentage, overall.MasteredCards, overall.TotalCards)
			fmt.Printf("Right now:     %d correct, %d wrong\n", totals.RightCards, totals.WrongCards)
			fmt.Printf("Rating:        %s\n", progressRating(overall.Percentage))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newProgressRankingCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Decks ranked by mastery percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			rows := app.Progress.Ranking(session.Username, app.Decks.Load(session.Username))
			if asJSON {
				return printJSON(rows)
			}
			if len(rows) == 0 {
				fmt.Println("No decks to rank yet.")
				return nil
			}

			w := newTable()
			fmt.Fprintln(w, "TITLE\tCARDS\tCORRECT\tPERCENT")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", truncate(r.Title, 40), r.CardCount, r.CorrectAnswers, r.Percentage)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newProgressWeeklyCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Cards studied per weekday over the last 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			counts := app.Progress.WeeklyActivity(session.Username)
			if asJSON {
				return printJSON(counts)
			}

			max := 0
			for _, day := range flashlearn.WeekdayNames {
				if counts[day] > max {
					max = counts[day]
				}
			}

			for _, day := range flashlearn.WeekdayNames {
				bar := ""
				if max > 0 {
					bar = strings.Repeat("#", counts[day]*30/max)
				}
				fmt.Printf("%s %3d %s\n", day, counts[day], bar)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func progressRating(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 75:
		return "Great"
	case percentage >= 50:
		return "Good"
	case percentage >= 25:
		return "Fair"
	default:
		return "Needs practice"
	}
}
