// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// requireUser returns the current session or an error for guests, so
// commands that touch per-user files fail with one consistent message.
func requireUser(app *App) (flashlearn.Session, error) {
	session := app.Sessions.Current()
	if session.IsGuest() {
		return session, fmt.Errorf("not signed in: run 'flashlearn user signin <username>' first")
	}
	return session, nil
}

// resolveDeck loads the user's decks and locates one by ID or exact
// title. The full slice is returned alongside the index so callers can
// mutate and save it.
func resolveDeck(app *App, username, ref string) ([]flashlearn.Deck, int, error) {
	decks := app.Decks.Load(username)
	idx := app.Decks.IndexOf(decks, ref)
	if idx < 0 {
		return nil, 0, fmt.Errorf("deck not found: %s", ref)
	}
	return decks, idx, nil
}
