// Package corpus holds the static collection of plant haikus and the
// decorative symbols used to title them.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Sentinel errors for corpus validation.
var (
	ErrEmptyCorpus    = errors.New("corpus has no haikus or no symbols")
	ErrMalformedHaiku = errors.New("malformed haiku")
	ErrEmptySymbol    = errors.New("empty symbol")
)

// LineCount is the number of lines in every haiku.
const LineCount = 3

// Haiku is a three-line poem.
type Haiku [LineCount]string

// Symbol is a single decorative glyph.
type Symbol string

// Corpus is an ordered set of haikus and symbols.
type Corpus struct {
	Haikus  []Haiku
	Symbols []Symbol
}

var haikus = []Haiku{
	// 5-7-5-ish. Slightly silly, always botanical.
	{
		"Moss on quiet stone",
		"whispers photosynthesis",
		"gnomes nod approving",
	},
	{
		"Sunflower tall, bold",
		"tracks meetings across the sky",
		"minutes become seeds",
	},
	{
		"Fern curls like question",
		"unfurls answers at sunrise",
		"shade applauds softly",
	},
	{
		"Cactus keeps receipts",
		"of every drop ever spent",
		"budget: succulent",
	},
	{
		"Mint invades the pot",
		"writes forked roots into history",
		"tea accepts the PR",
	},
	{
		"Bamboo push commits",
		"fast green continuous deploy",
		"pandas run the tests",
	},
	{
		"Dandelion puff",
		"issues opened to the wind",
		"labels: wish, pending",
	},
	{
		"Aloe, calm and cool",
		"handles hotfixes with gel",
		"blameless root-cause: sun",
	},
	{
		"Thyme takes its own time",
		"schedules flavor in sprints",
		"retros taste better",
	},
	{
		"Peony debugs",
		"petals step through perfumed code",
		"spring ships v1.0",
	},
}

var symbols = []Symbol{"🌱", "🌿", "🍃", "🌵", "🌼", "🌷", "🌾", "🌻"}

// Default returns the built-in corpus. The slices are copies, so callers
// may narrow them without affecting later calls.
func Default() Corpus {
	return Corpus{
		Haikus:  append([]Haiku(nil), haikus...),
		Symbols: append([]Symbol(nil), symbols...),
	}
}

// Empty reports whether either list has no entries.
func (c Corpus) Empty() bool {
	return len(c.Haikus) == 0 || len(c.Symbols) == 0
}

// Validate checks the corpus invariants: both lists are non-empty, and no
// haiku line or symbol is blank.
func (c Corpus) Validate() error {
	if c.Empty() {
		return ErrEmptyCorpus
	}
	for i, h := range c.Haikus {
		for j, line := range h {
			if strings.TrimSpace(line) == "" {
				return fmt.Errorf("%w: haiku %d line %d is empty", ErrMalformedHaiku, i, j+1)
			}
		}
	}
	for i, s := range c.Symbols {
		if strings.TrimSpace(string(s)) == "" {
			return fmt.Errorf("%w: symbol %d", ErrEmptySymbol, i)
		}
	}
	return nil
}

// haikuSource implements fuzzy.Source for haiku matching.
type haikuSource []Haiku

func (h haikuSource) String(i int) string {
	return h[i].String()
}

func (h haikuSource) Len() int {
	return len(h)
}

// Filter returns a corpus holding only the haikus that fuzzy-match query,
// best match first. Symbols are kept as-is. An empty query is a no-op.
func (c Corpus) Filter(query string) Corpus {
	query = strings.TrimSpace(query)
	if query == "" {
		return c
	}

	matches := fuzzy.FindFrom(query, haikuSource(c.Haikus))
	filtered := make([]Haiku, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, c.Haikus[match.Index])
	}

	return Corpus{Haikus: filtered, Symbols: c.Symbols}
}

// String joins the lines with single spaces.
func (h Haiku) String() string {
	return strings.Join(h[:], " ")
}
