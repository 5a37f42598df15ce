// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import "strconv"

// TimeLayout is the timestamp format used in all persisted files.
// It is fixed-width and zero-padded, so lexicographic comparison of
// formatted values matches chronological order.
const TimeLayout = "2006-01-02 15:04:05"

// Card is a single question/answer pair within a deck.
type Card struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Key returns the identifier used for this card in progress records:
// the card's generated ID when present, otherwise the stringified
// position (legacy decks created before cards carried IDs).
func (c Card) Key(index int) string {
	if c.ID != "" {
		return c.ID
	}
	return strconv.Itoa(index)
}

// Deck is a named, ordered collection of cards belonging to one user.
type Deck struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string `json:"title" yaml:"title"`
	Cards      []Card `json:"cards" yaml:"cards"`
	CardCount  int    `json:"card_count" yaml:"card_count"`
	CreatedBy  string `json:"created_by" yaml:"created_by"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
	UpdatedAt  string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	IsFavorite bool   `json:"is_favorite" yaml:"is_favorite"`
}

// Card answer statuses.
const (
	StatusCorrect = "correct"
	StatusWrong   = "wrong"
)

// ProgressRecord holds per-deck study counters for one user.
// CardStatus maps a card key to its current status; entries exist only
// for cards answered at least once.
type ProgressRecord struct {
	ViewCount      int               `json:"view_count"`
	CardsViewed    int               `json:"cards_viewed"`
	CorrectAnswers int               `json:"correct_answers"`
	LastViewed     string            `json:"last_viewed"`
	CardStatus     map[string]string `json:"card_status"`
}

// OverallProgress summarizes mastery across all of a user's decks.
type OverallProgress struct {
	TotalCards    int     `json:"total_cards"`
	MasteredCards int     `json:"mastered_cards"`
	Percentage    float64 `json:"percentage"`
}

// ProgressTotals counts cards by their current recorded status.
// A card contributes to at most one of Right/Wrong at any time; its
// contribution moves between buckets as its status changes.
type ProgressTotals struct {
	TotalCards int `json:"total_cards"`
	RightCards int `json:"right_cards"`
	WrongCards int `json:"wrong_cards"`
}

// DeckProgress is one row of the per-deck progress ranking.
type DeckProgress struct {
	Title          string  `json:"title"`
	CardCount      int     `json:"card_count"`
	CorrectAnswers int     `json:"correct_answers"`
	Percentage     float64 `json:"percentage"`
}

// Deck list filters.
const (
	FilterAll       = "all"
	FilterFavorites = "favorites"
	FilterRecent    = "recent"
)

// RecentLimit caps the "recent" filter.
const RecentLimit = 5
