package haiku

import (
	"errors"
	"testing"

	"github.com/henri123lemoine/plant-haiku/internal/corpus"
)

// countingSource records how many draws were made.
type countingSource struct {
	calls int
}

func (c *countingSource) IntN(n int) int {
	c.calls++
	return 0
}

func TestSelectMembership(t *testing.T) {
	c := corpus.Default()
	src := NewSource(42)

	for i := 0; i < 500; i++ {
		h, s, err := Select(src, c)
		if err != nil {
			t.Fatalf("Select() error: %v", err)
		}
		if !containsHaiku(c.Haikus, h) {
			t.Fatalf("Selected haiku %v is not in the corpus", h)
		}
		if !containsSymbol(c.Symbols, s) {
			t.Fatalf("Selected symbol %q is not in the corpus", s)
		}
	}
}

func TestSelectCoversCorpus(t *testing.T) {
	c := corpus.Default()
	src := NewSource(7)

	seenHaikus := make(map[corpus.Haiku]bool)
	seenSymbols := make(map[corpus.Symbol]bool)
	for i := 0; i < 2000; i++ {
		h, s, err := Select(src, c)
		if err != nil {
			t.Fatalf("Select() error: %v", err)
		}
		seenHaikus[h] = true
		seenSymbols[s] = true
	}

	if len(seenHaikus) != len(c.Haikus) {
		t.Errorf("Expected all %d haikus to be drawn, saw %d", len(c.Haikus), len(seenHaikus))
	}
	if len(seenSymbols) != len(c.Symbols) {
		t.Errorf("Expected all %d symbols to be drawn, saw %d", len(c.Symbols), len(seenSymbols))
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	c := corpus.Default()
	a := NewSource(1234)
	b := NewSource(1234)

	for i := 0; i < 50; i++ {
		ha, sa, _ := Select(a, c)
		hb, sb, _ := Select(b, c)
		if ha != hb || sa != sb {
			t.Fatalf("Draw %d differs: (%v, %q) vs (%v, %q)", i, ha, sa, hb, sb)
		}
	}
}

func TestSelectSingleEntryCorpus(t *testing.T) {
	c := corpus.Corpus{
		Haikus:  []corpus.Haiku{{"a", "b", "c"}},
		Symbols: []corpus.Symbol{"🌱"},
	}
	src := NewSource(99)

	for i := 0; i < 20; i++ {
		h, s, err := Select(src, c)
		if err != nil {
			t.Fatalf("Select() error: %v", err)
		}
		if h != (corpus.Haiku{"a", "b", "c"}) || s != "🌱" {
			t.Fatalf("Expected the only pair, got (%v, %q)", h, s)
		}
	}

	p, err := Generate(src, c)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := Presentation{
		Title:  "🌱 Plant Haiku",
		Line1:  "a",
		Line2:  "b",
		Line3:  "c",
		Footer: "tap to cycle—water your code",
	}
	if p != want {
		t.Errorf("Generate() = %+v, want %+v", p, want)
	}
}

func TestSelectEmptyCorpus(t *testing.T) {
	tests := []struct {
		name   string
		corpus corpus.Corpus
	}{
		{"nothing", corpus.Corpus{}},
		{"no haikus", corpus.Corpus{Symbols: []corpus.Symbol{"🌱"}}},
		{"no symbols", corpus.Corpus{Haikus: []corpus.Haiku{{"a", "b", "c"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{}
			_, _, err := Select(src, tt.corpus)
			if !errors.Is(err, corpus.ErrEmptyCorpus) {
				t.Errorf("Select() error = %v, want ErrEmptyCorpus", err)
			}
			if src.calls != 0 {
				t.Errorf("Expected no draws on an empty corpus, got %d", src.calls)
			}

			if _, err := Generate(src, tt.corpus); !errors.Is(err, corpus.ErrEmptyCorpus) {
				t.Errorf("Generate() error = %v, want ErrEmptyCorpus", err)
			}
		})
	}
}

func TestFormatIsPure(t *testing.T) {
	h := corpus.Haiku{"Moss on quiet stone", "whispers photosynthesis", "gnomes nod approving"}

	first := Format(h, "🌿")
	second := Format(h, "🌿")
	if first != second {
		t.Errorf("Format() not deterministic: %+v vs %+v", first, second)
	}
}

func TestFormatCopiesLinesVerbatim(t *testing.T) {
	c := corpus.Default()
	for _, h := range c.Haikus {
		p := Format(h, c.Symbols[0])
		if p.Line1 != h[0] || p.Line2 != h[1] || p.Line3 != h[2] {
			t.Errorf("Format() lines = %q/%q/%q, want %q", p.Line1, p.Line2, p.Line3, h)
		}
		if p.Footer != Footer {
			t.Errorf("Footer = %q, want %q", p.Footer, Footer)
		}
		if p.Title != string(c.Symbols[0])+" Plant Haiku" {
			t.Errorf("Title = %q", p.Title)
		}
	}
}

func TestPresentationLines(t *testing.T) {
	p := Format(corpus.Haiku{"a", "b", "c"}, "🌱")
	got := p.Lines()
	want := []string{"🌱 Plant Haiku", "", "a", "b", "c", "", Footer}

	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func containsHaiku(list []corpus.Haiku, h corpus.Haiku) bool {
	for _, x := range list {
		if x == h {
			return true
		}
	}
	return false
}

func containsSymbol(list []corpus.Symbol, s corpus.Symbol) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
