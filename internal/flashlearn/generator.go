// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// AnswerNotFound is used when no sentence in the source text overlaps
// the generated question.
const AnswerNotFound = "Answer not found in text."

// Generator builds question/answer cards from plain text using a
// hosted question-generation model (Hugging Face inference API).
type Generator struct {
	apiURL string
	token  string
	client *http.Client
}

// NewGenerator creates a generator for the given inference endpoint.
// The token may be empty for public models.
func NewGenerator(apiURL, token string) *Generator {
	return &Generator{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateCards splits text into chunks, asks the model for one
// question per chunk, and selects the answer as the source sentence
// with the highest keyword overlap with the question. A chunk whose
// request fails is skipped; the error of the last failure is returned
// only when no card could be produced at all.
func (g *Generator) GenerateCards(ctx context.Context, text string) ([]Card, error) {
	chunks := SplitText(text, 150)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to generate cards from")
	}

	var cards []Card
	var lastErr error
	for _, chunk := range chunks {
		question, err := g.generateQuestion(ctx, chunk)
		if err != nil {
			lastErr = err
			continue
		}
		if question == "" {
			continue
		}
		cards = append(cards, Card{
			Question: question,
			Answer:   FindAnswerInText(question, chunk),
		})
	}

	if len(cards) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("generate cards: %w", lastErr)
		}
		return nil, fmt.Errorf("model produced no questions")
	}
	return cards, nil
}

func (g *Generator) generateQuestion(ctx context.Context, chunk string) (string, error) {
	body, err := json.Marshal(map[string]string{"inputs": chunk})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model request failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var results []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return strings.TrimSpace(results[0].GeneratedText), nil
}

// SplitText breaks text into chunks of at most chunkSize words.
func SplitText(text string, chunkSize int) []string {
	words := strings.Fields(text)
	if chunkSize <= 0 {
		chunkSize = 150
	}

	var chunks []string
	for i := 0; i < len(words); i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

var sentenceSplit = regexp.MustCompile(`(?:[.!?])\s+`)

// FindAnswerInText picks the sentence sharing the most words with the
// question, or AnswerNotFound when nothing overlaps.
func FindAnswerInText(question, text string) string {
	questionWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(question)) {
		questionWords[w] = true
	}

	best := ""
	bestOverlap := 0
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		overlap := 0
		seen := map[string]bool{}
		for _, w := range strings.Fields(strings.ToLower(sentence)) {
			if questionWords[w] && !seen[w] {
				overlap++
				seen[w] = true
			}
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = sentence
		}
	}

	if best == "" {
		return AnswerNotFound
	}
	return best
}
