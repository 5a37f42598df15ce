// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
)

// DeckStore persists each user's deck list as a single JSON array at
// user_decks/<username>_decks.json, rewritten wholesale on every
// mutation. Loads go through a small LRU of parsed files; Save
// refreshes the cached entry.
type DeckStore struct {
	fs    afero.Fs
	dir   string
	cache *lru.Cache[string, []Deck]
	now   func() time.Time
}

// NewDeckStore creates a deck store rooted at dataDir.
func NewDeckStore(fs afero.Fs, dataDir string) *DeckStore {
	dir := filepath.Join(dataDir, "user_decks")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: cannot create %s: %v", dir, err)
	}
	cache, _ := lru.New[string, []Deck](32)
	return &DeckStore{fs: fs, dir: dir, cache: cache, now: time.Now}
}

func (s *DeckStore) path(username string) string {
	return filepath.Join(s.dir, username+"_decks.json")
}

// Load returns the user's decks. A missing file means an empty list;
// read or parse failures are logged and also yield an empty list, so
// callers never see an error here.
func (s *DeckStore) Load(username string) []Deck {
	if decks, ok := s.cache.Get(username); ok {
		return cloneDecks(decks)
	}

	data, err := afero.ReadFile(s.fs, s.path(username))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read decks for %s: %v", username, err)
		}
		return nil
	}

	var decks []Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		log.Printf("Warning: invalid decks JSON for %s: %v", username, err)
		return nil
	}

	s.cache.Add(username, cloneDecks(decks))
	return decks
}

// Save rewrites the user's deck file with the full list. On failure the
// in-memory list stays authoritative with the caller; there is no
// rollback and no retry.
func (s *DeckStore) Save(username string, decks []Deck) error {
	data, err := json.MarshalIndent(decks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal decks: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(username), data, 0o644); err != nil {
		s.cache.Remove(username)
		return fmt.Errorf("save decks: %w", err)
	}
	s.cache.Add(username, cloneDecks(decks))
	return nil
}

// Invalidate drops the cached parse for a user so the next Load reads
// from disk. Required after the deck file is rewritten outside Save,
// as a restore does.
func (s *DeckStore) Invalidate(username string) {
	s.cache.Remove(username)
}

// Create validates and appends a new deck. The title must be non-empty
// and at least one card needs both a question and an answer; cards
// missing either side are dropped silently. The returned slice must be
// passed to Save by the caller.
func (s *DeckStore) Create(decks []Deck, username, title string, cards []Card) ([]Deck, Deck, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return decks, Deck{}, errors.New("deck title is required")
	}

	valid := validCards(cards)
	if len(valid) == 0 {
		return decks, Deck{}, errors.New("at least one card with both question and answer is required")
	}

	deck := Deck{
		ID:        uuid.NewString(),
		Title:     title,
		Cards:     valid,
		CardCount: len(valid),
		CreatedBy: username,
		CreatedAt: s.now().Format(TimeLayout),
	}
	return append(decks, deck), deck, nil
}

// Update merges a new title and card list into decks[index],
// recomputing card_count and stamping updated_at. Validation matches
// Create; nothing is mutated on a validation failure.
func (s *DeckStore) Update(decks []Deck, index int, title string, cards []Card) (Deck, error) {
	if index < 0 || index >= len(decks) {
		return Deck{}, fmt.Errorf("no deck at position %d", index)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Deck{}, errors.New("deck title is required")
	}
	valid := validCards(cards)
	if len(valid) == 0 {
		return Deck{}, errors.New("at least one card with both question and answer is required")
	}

	d := &decks[index]
	d.Title = title
	d.Cards = valid
	d.CardCount = len(valid)
	d.UpdatedAt = s.now().Format(TimeLayout)
	return *d, nil
}

// Delete removes the deck at index, preserving the relative order of
// the rest. Out-of-range indices are a no-op. Note that deletion
// shifts the positions of all subsequent decks; callers addressing
// decks positionally must not reuse indices across a mutation. The
// deck's progress record is left behind (orphaned, never cleaned up).
func (s *DeckStore) Delete(decks []Deck, index int) []Deck {
	if index < 0 || index >= len(decks) {
		return decks
	}
	return append(decks[:index], decks[index+1:]...)
}

// ToggleFavorite flips the favorite flag of the deck at index.
// Out-of-range indices are a no-op; the return reports whether
// anything changed.
func (s *DeckStore) ToggleFavorite(decks []Deck, index int) bool {
	if index < 0 || index >= len(decks) {
		return false
	}
	decks[index].IsFavorite = !decks[index].IsFavorite
	return true
}

// IndexOf resolves a deck reference (deck ID or exact title) to its
// position in decks, or -1 when not found. IDs are the stable way to
// address a deck; titles are a convenience for interactive use.
func (s *DeckStore) IndexOf(decks []Deck, ref string) int {
	for i, d := range decks {
		if d.ID != "" && d.ID == ref {
			return i
		}
	}
	for i, d := range decks {
		if d.Title == ref {
			return i
		}
	}
	return -1
}

// Filter narrows decks for display: "all" keeps the user's own decks,
// "favorites" keeps the favorite subset, "recent" sorts by created_at
// descending and caps at RecentLimit. created_at sorts correctly as a
// plain string because TimeLayout is fixed-width.
func (s *DeckStore) Filter(decks []Deck, username, filter string) []Deck {
	var out []Deck
	for _, d := range decks {
		if d.CreatedBy != username {
			continue
		}
		if filter == FilterFavorites && !d.IsFavorite {
			continue
		}
		out = append(out, d)
	}

	if filter == FilterRecent {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
		if len(out) > RecentLimit {
			out = out[:RecentLimit]
		}
	}
	return out
}

// validCards trims and filters cards, assigning IDs to new ones.
func validCards(cards []Card) []Card {
	valid := make([]Card, 0, len(cards))
	for _, c := range cards {
		q := strings.TrimSpace(c.Question)
		a := strings.TrimSpace(c.Answer)
		if q == "" || a == "" {
			continue
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.Question = q
		c.Answer = a
		valid = append(valid, c)
	}
	return valid
}

// cloneDecks deep-copies the card slices so cached entries never alias
// the slices handed to callers.
func cloneDecks(decks []Deck) []Deck {
	out := make([]Deck, len(decks))
	copy(out, decks)
	for i := range out {
		out[i].Cards = append([]Card(nil), out[i].Cards...)
	}
	return out
}
