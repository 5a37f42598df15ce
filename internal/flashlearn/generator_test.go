package flashlearn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	words := make([]string, 0, 320)
	for i := 0; i < 320; i++ {
		words = append(words, "word")
	}
	chunks := SplitText(strings.Join(words, " "), 150)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if n := len(strings.Fields(chunks[0])); n != 150 {
		t.Errorf("first chunk has %d words, want 150", n)
	}
	if n := len(strings.Fields(chunks[2])); n != 20 {
		t.Errorf("last chunk has %d words, want 20", n)
	}

	if chunks := SplitText("   ", 150); chunks != nil {
		t.Errorf("blank text should yield no chunks, got %v", chunks)
	}
}

func TestFindAnswerInText(t *testing.T) {
	text := "The mitochondria is the powerhouse of the cell. Plants use photosynthesis. Water boils at 100 degrees."

	answer := FindAnswerInText("What is the powerhouse of the cell?", text)
	if !strings.Contains(answer, "mitochondria") {
		t.Errorf("answer = %q", answer)
	}

	if got := FindAnswerInText("quantum chromodynamics?", text); got != AnswerNotFound {
		t.Errorf("no-overlap answer = %q, want %q", got, AnswerNotFound)
	}
}

func TestGenerateCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`[{"generated_text": "What is the powerhouse of the cell?"}]`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "tok")
	cards, err := g.GenerateCards(context.Background(), "The mitochondria is the powerhouse of the cell. Ribosomes make proteins.")
	if err != nil {
		t.Fatalf("GenerateCards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].Question != "What is the powerhouse of the cell?" {
		t.Errorf("question = %q", cards[0].Question)
	}
	if !strings.Contains(cards[0].Answer, "mitochondria") {
		t.Errorf("answer = %q", cards[0].Answer)
	}
}

func TestGenerateCardsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "")
	if _, err := g.GenerateCards(context.Background(), "Some text here."); err == nil {
		t.Error("all-chunks-failed should return an error")
	}
}

func TestGenerateCardsEmptyText(t *testing.T) {
	g := NewGenerator("http://unused", "")
	if _, err := g.GenerateCards(context.Background(), "   "); err == nil {
		t.Error("empty text should error")
	}
}
