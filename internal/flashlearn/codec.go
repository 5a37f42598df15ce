// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package flashlearn

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Deck interchange formats for import/export.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
)

// EncodeDecks serializes decks for export. CSV and Markdown flatten to
// question/answer rows (CSV adds a deck column so multiple decks stay
// distinguishable); XLSX writes one sheet per deck.
func EncodeDecks(decks []Deck, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(decks, "", "  ")
	case FormatYAML:
		return yaml.Marshal(decks)
	case FormatCSV:
		return encodeCSV(decks)
	case FormatMarkdown:
		return encodeMarkdown(decks), nil
	case FormatXLSX:
		return encodeXLSX(decks)
	default:
		return nil, fmt.Errorf("unsupported format: %s (choose json, yaml, csv, markdown, xlsx)", format)
	}
}

// DecodeDecks parses an imported deck file. CSV and XLSX carry bare
// question/answer rows, so the caller supplies a fallback title
// (usually the file name); decks decoded from JSON/YAML keep their own
// titles. Decoded cards still go through DeckStore.Create validation.
func DecodeDecks(data []byte, format, fallbackTitle string) ([]Deck, error) {
	switch format {
	case FormatJSON:
		var decks []Deck
		if err := json.Unmarshal(data, &decks); err != nil {
			return nil, fmt.Errorf("parse JSON decks: %w", err)
		}
		return decks, nil
	case FormatYAML:
		var decks []Deck
		if err := yaml.Unmarshal(data, &decks); err != nil {
			return nil, fmt.Errorf("parse YAML decks: %w", err)
		}
		return decks, nil
	case FormatCSV:
		return decodeCSV(data, fallbackTitle)
	case FormatXLSX:
		return decodeXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s (choose json, yaml, csv, xlsx)", format)
	}
}

func encodeCSV(decks []Deck) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"deck", "question", "answer"}); err != nil {
		return nil, err
	}
	for _, d := range decks {
		for _, c := range d.Cards {
			if err := w.Write([]string{d.Title, c.Question, c.Answer}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func decodeCSV(data []byte, fallbackTitle string) ([]Deck, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	byTitle := map[string]*Deck{}
	var order []string
	for line := 1; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse CSV row %d: %w", line, err)
		}
		if len(row) < 2 {
			continue
		}

		title := fallbackTitle
		question, answer := row[0], row[1]
		if len(row) >= 3 {
			title, question, answer = row[0], row[1], row[2]
		}
		// Header row from encodeCSV.
		if line == 1 && strings.EqualFold(question, "question") && strings.EqualFold(answer, "answer") {
			continue
		}

		deck := byTitle[title]
		if deck == nil {
			deck = &Deck{Title: title}
			byTitle[title] = deck
			order = append(order, title)
		}
		deck.Cards = append(deck.Cards, Card{Question: question, Answer: answer})
	}

	decks := make([]Deck, 0, len(order))
	for _, title := range order {
		d := byTitle[title]
		d.CardCount = len(d.Cards)
		decks = append(decks, *d)
	}
	return decks, nil
}

func encodeMarkdown(decks []Deck) []byte {
	var buf bytes.Buffer
	for _, d := range decks {
		fmt.Fprintf(&buf, "## %s\n\n", d.Title)
		for i, c := range d.Cards {
			fmt.Fprintf(&buf, "%d. **Q:** %s\n   **A:** %s\n", i+1, c.Question, c.Answer)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

func encodeXLSX(decks []Deck) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, d := range decks {
		sheet := sheetName(d.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &[]any{"Question", "Answer"}); err != nil {
			return nil, err
		}
		for row, c := range d.Cards {
			cell, _ := excelize.CoordinatesToCellName(1, row+2)
			if err := f.SetSheetRow(sheet, cell, &[]any{c.Question, c.Answer}); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeXLSX(data []byte) ([]Deck, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var decks []Deck
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		deck := Deck{Title: sheet}
		for i, row := range rows {
			if len(row) < 2 {
				continue
			}
			if i == 0 && strings.EqualFold(row[0], "question") {
				continue
			}
			deck.Cards = append(deck.Cards, Card{Question: row[0], Answer: row[1]})
		}
		deck.CardCount = len(deck.Cards)
		decks = append(decks, deck)
	}
	return decks, nil
}

// sheetName truncates titles to Excel's 31-character sheet name limit.
func sheetName(title string, i int) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = fmt.Sprintf("Deck %d", i+1)
	}
	if len(title) > 31 {
		title = title[:31]
	}
	return title
}
