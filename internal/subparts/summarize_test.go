package subparts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeImperativeFirstSentence(t *testing.T) {
	got := Summarize("Calculer la vitesse du mobile. On donne g = 9,8 m/s².")
	want := "Calculer la vitesse du mobile."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizeImperativeWithAccent(t *testing.T) {
	// "Déterminer" must be recognized despite the accent.
	got := Summarize("Déterminer l'accélération.")
	if got != "Déterminer l'accélération." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeImperativeSecondPerson(t *testing.T) {
	got := Summarize("Calculez la moyenne de la série ; interprétez le résultat.")
	want := "Calculez la moyenne de la série ;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizeImperativeCapped(t *testing.T) {
	long := "Calculer " + strings.Repeat("x", 150) + "."
	got := Summarize(long)
	if utf8.RuneCountInString(got) != 121 { // 120 + ellipsis
		t.Errorf("got %d runes, want 121", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestSummarizeShortVerbatim(t *testing.T) {
	got := Summarize("La nature du\ntriangle ABC")
	want := "La nature du triangle ABC"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizeLongFirstSentence(t *testing.T) {
	// No imperative opener, over 100 runes, has a sentence break.
	content := "La population de la ville " + strings.Repeat("très ", 15) + "grande augmente. Elle double chaque année."
	got := Summarize(content)
	if !strings.HasSuffix(got, "augmente.") {
		t.Errorf("expected first sentence, got %q", got)
	}
}

func TestSummarizeNoSentenceBreak(t *testing.T) {
	content := strings.Repeat("mot ", 40) // 160 runes, no terminator
	got := Summarize(content)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncation ellipsis, got %q", got)
	}
	if utf8.RuneCountInString(got) != 101 {
		t.Errorf("got %d runes, want 101", utf8.RuneCountInString(got))
	}
}

func TestSummarizePriorityChain(t *testing.T) {
	// Short AND imperative: rule 1 wins, so the second sentence is dropped.
	got := Summarize("Citer deux exemples. Justifier.")
	if got != "Citer deux exemples." {
		t.Errorf("got %q, want rule 1 output", got)
	}
}
