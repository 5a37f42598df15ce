// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// Weekday display names, Monday first, matching the progress chart.
var WeekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ProgressTracker maintains per-card answer history and derives the
// display statistics. State lives in one JSON object per user at
// user_progress/<username>_progress.json, mapping deck title to its
// ProgressRecord, rewritten wholesale on every update.
type ProgressTracker struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewProgressTracker creates a tracker rooted at dataDir.
func NewProgressTracker(fs afero.Fs, dataDir string) *ProgressTracker {
	dir := filepath.Join(dataDir, "user_progress")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: cannot create %s: %v", dir, err)
	}
	return &ProgressTracker{fs: fs, dir: dir, now: time.Now}
}

func (t *ProgressTracker) path(username string) string {
	return filepath.Join(t.dir, username+"_progress.json")
}

// Load returns the user's progress mapping. Missing file or bad JSON
// degrade to an empty mapping, logged but never fatal.
func (t *ProgressTracker) Load(username string) map[string]*ProgressRecord {
	data, err := afero.ReadFile(t.fs, t.path(username))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read progress for %s: %v", username, err)
		}
		return map[string]*ProgressRecord{}
	}

	progress := map[string]*ProgressRecord{}
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: invalid progress JSON for %s: %v", username, err)
		return map[string]*ProgressRecord{}
	}
	return progress
}

// Save rewrites the user's full progress mapping.
func (t *ProgressTracker) Save(username string, progress map[string]*ProgressRecord) error {
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := afero.WriteFile(t.fs, t.path(username), data, 0o644); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// RecordAnswer updates the progress record for one card answer and
// persists the mapping. cardKey is the card's stable key (Card.Key).
//
// correct_answers tracks the number of cards whose current status is
// "correct": it moves by +1 when a card turns correct from unseen or
// wrong, by -1 (floored at zero) when a previously correct card turns
// wrong, and is unchanged otherwise. cards_viewed counts distinct
// cards ever answered and never decreases.
func (t *ProgressTracker) RecordAnswer(username, deckTitle, cardKey string, correct bool) error {
	progress := t.Load(username)

	rec := progress[deckTitle]
	if rec == nil {
		rec = &ProgressRecord{CardStatus: map[string]string{}}
		progress[deckTitle] = rec
	}
	if rec.CardStatus == nil {
		rec.CardStatus = map[string]string{}
	}

	rec.ViewCount++
	rec.LastViewed = t.now().Format(TimeLayout)

	prev, seen := rec.CardStatus[cardKey]
	if !seen {
		rec.CardsViewed++
	}

	switch {
	case seen && prev == StatusCorrect && !correct:
		if rec.CorrectAnswers > 0 {
			rec.CorrectAnswers--
		}
	case seen && prev == StatusWrong && correct:
		rec.CorrectAnswers++
	case !seen && correct:
		rec.CorrectAnswers++
	}

	if correct {
		rec.CardStatus[cardKey] = StatusCorrect
	} else {
		rec.CardStatus[cardKey] = StatusWrong
	}

	return t.Save(username, progress)
}

// Overall computes mastery across the user's decks: a deck contributes
// min(correct_answers, card_count) mastered cards. Percentage is 0
// when the user has no cards at all.
func (t *ProgressTracker) Overall(username string, decks []Deck) OverallProgress {
	progress := t.Load(username)

	var out OverallProgress
	for _, d := range decks {
		if d.CreatedBy != username {
			continue
		}
		out.TotalCards += d.CardCount

		rec := progress[d.Title]
		if rec == nil {
			continue
		}
		mastered := rec.CorrectAnswers
		if mastered > d.CardCount {
			mastered = d.CardCount
		}
		out.MasteredCards += mastered
	}

	if out.TotalCards > 0 {
		out.Percentage = float64(out.MasteredCards) / float64(out.TotalCards) * 100
	}
	return out
}

// Totals counts cards by current recorded status across the user's
// decks. Right/Wrong reflect present status, not lifetime answers: a
// card moves between the buckets as its status flips and is never
// counted twice.
func (t *ProgressTracker) Totals(username string, decks []Deck) ProgressTotals {
	progress := t.Load(username)

	var out ProgressTotals
	for _, d := range decks {
		if d.CreatedBy != username {
			continue
		}
		out.TotalCards += d.CardCount

		rec := progress[d.Title]
		if rec == nil {
			continue
		}
		for _, status := range rec.CardStatus {
			switch status {
			case StatusCorrect:
				out.RightCards++
			case StatusWrong:
				out.WrongCards++
			}
		}
	}
	return out
}

// WeeklyActivity buckets cards_viewed by the weekday of last_viewed
// for records touched within the trailing 7 days (today inclusive,
// exactly-7-days-ago exclusive). Buckets are keyed by weekday name
// only, so activity from today and from the same weekday one week ago
// would land in the same bucket; records with unparseable timestamps
// are logged and skipped.
func (t *ProgressTracker) WeeklyActivity(username string) map[string]int {
	progress := t.Load(username)

	counts := make(map[string]int, len(WeekdayNames))
	for _, day := range WeekdayNames {
		counts[day] = 0
	}

	now := t.now()
	for title, rec := range progress {
		if rec == nil || rec.LastViewed == "" {
			continue
		}
		lastViewed, err := time.ParseInLocation(TimeLayout, rec.LastViewed, time.Local)
		if err != nil {
			log.Printf("Warning: skipping %q: bad last_viewed: %v", title, err)
			continue
		}
		daysAgo := int(now.Sub(lastViewed).Hours() / 24)
		if daysAgo < 0 || daysAgo >= 7 {
			continue
		}
		// time.Weekday is Sunday-based; shift to Monday-first.
		day := WeekdayNames[(int(lastViewed.Weekday())+6)%7]
		counts[day] += rec.CardsViewed
	}
	return counts
}

// Ranking returns one row per deck owned by the user, sorted by
// percentage descending. The sort is stable so ties keep deck order.
func (t *ProgressTracker) Ranking(username string, decks []Deck) []DeckProgress {
	progress := t.Load(username)

	var rows []DeckProgress
	for _, d := range decks {
		if d.CreatedBy != username {
			continue
		}
		row := DeckProgress{Title: d.Title, CardCount: d.CardCount}
		if rec := progress[d.Title]; rec != nil {
			row.CorrectAnswers = rec.CorrectAnswers
		}
		if d.CardCount > 0 {
			row.Percentage = float64(row.CorrectAnswers) / float64(d.CardCount) * 100
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percentage > rows[j].Percentage
	})
	return rows
}
