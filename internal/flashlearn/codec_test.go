package flashlearn

import (
	"strings"
	"testing"
)

func sampleDecks() []Deck {
	return []Deck{
		{
			Title:     "Biology",
			CardCount: 2,
			Cards: []Card{
				{Question: "What is a cell?", Answer: "The basic unit of life"},
				{Question: "What is DNA?", Answer: "Genetic material"},
			},
		},
		{
			Title:     "Math",
			CardCount: 1,
			Cards: []Card{
				{Question: "2+2?", Answer: "4"},
			},
		},
	}
}

func TestCodecJSONRoundTrip(t *testing.T) {
	in := sampleDecks()
	data, err := EncodeDecks(in, FormatJSON)
	if err != nil {
		t.Fatalf("EncodeDecks: %v", err)
	}

	out, err := DecodeDecks(data, FormatJSON, "fallback")
	if err != nil {
		t.Fatalf("DecodeDecks: %v", err)
	}
	if len(out) != 2 || out[0].Title != "Biology" || out[1].Cards[0].Answer != "4" {
		t.Errorf("round trip lost data: %+v", out)
	}
}

func TestCodecYAMLRoundTrip(t *testing.T) {
	data, err := EncodeDecks(sampleDecks(), FormatYAML)
	if err != nil {
		t.Fatalf("EncodeDecks: %v", err)
	}

	out, err := DecodeDecks(data, FormatYAML, "fallback")
	if err != nil {
		t.Fatalf("DecodeDecks: %v", err)
	}
	if len(out) != 2 || out[0].Cards[1].Question != "What is DNA?" {
		t.Errorf("round trip lost data: %+v", out)
	}
}

func TestCodecCSVRoundTrip(t *testing.T) {
	data, err := EncodeDecks(sampleDecks(), FormatCSV)
	if err != nil {
		t.Fatalf("EncodeDecks: %v", err)
	}

	out, err := DecodeDecks(data, FormatCSV, "fallback")
	if err != nil {
		t.Fatalf("DecodeDecks: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d decks, want 2", len(out))
	}
	if out[0].Title != "Biology" || out[0].CardCount != 2 {
		t.Errorf("first deck: %+v", out[0])
	}
	if out[1].Title != "Math" || out[1].Cards[0].Answer != "4" {
		t.Errorf("second deck: %+v", out[1])
	}
}

func TestCodecCSVTwoColumnFallback(t *testing.T) {
	csv := "What is a cell?,The basic unit of life\n2+2?,4\n"
	out, err := DecodeDecks([]byte(csv), FormatCSV, "imported")
	if err != nil {
		t.Fatalf("DecodeDecks: %v", err)
	}
	if len(out) != 1 || out[0].Title != "imported" {
		t.Fatalf("decks = %+v", out)
	}
	if out[0].CardCount != 2 {
		t.Errorf("card count = %d, want 2", out[0].CardCount)
	}
}

func TestCodecMarkdownExport(t *testing.T) {
	data, err := EncodeDecks(sampleDecks(), FormatMarkdown)
	if err != nil {
		t.Fatalf("EncodeDecks: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "## Biology") || !strings.Contains(text, "**Q:** 2+2?") {
		t.Errorf("markdown output missing content:\n%s", text)
	}
}

func TestCodecXLSXRoundTrip(t *testing.T) {
	data, err := EncodeDecks(sampleDecks(), FormatXLSX)
	if err != nil {
		t.Fatalf("EncodeDecks: %v", err)
	}

	out, err := DecodeDecks(data, FormatXLSX, "fallback")
	if err != nil {
		t.Fatalf("DecodeDecks: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d decks, want 2", len(out))
	}
	if out[0].Title != "Biology" || out[0].CardCount != 2 {
		t.Errorf("first sheet: %+v", out[0])
	}
	if out[1].Cards[0].Question != "2+2?" {
		t.Errorf("second sheet: %+v", out[1])
	}
}

func TestCodecUnknownFormat(t *testing.T) {
	if _, err := EncodeDecks(sampleDecks(), "toml"); err == nil {
		t.Error("encode with unknown format should fail")
	}
	if _, err := DecodeDecks([]byte("x"), "toml", ""); err == nil {
		t.Error("decode with unknown format should fail")
	}
}

func TestSheetNameClamp(t *testing.T) {
	long := strings.Repeat("x", 40)
	if got := sheetName(long, 0); len(got) != 31 {
		t.Errorf("len = %d, want 31", len(got))
	}
	if got := sheetName("  ", 2); got != "Deck 3" {
		t.Errorf("blank title = %q, want Deck 3", got)
	}
}
