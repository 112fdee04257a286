// Package haiku picks a haiku and a symbol from a corpus and turns them into
// a render-ready Presentation.
package haiku

import (
	"math/rand/v2"

	"github.com/henri123lemoine/plant-haiku/internal/corpus"
)

// Source is the randomness Select draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSource returns a source seeded from the runtime's random state.
func RandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Select draws one haiku and one symbol uniformly and independently.
// Calls do not remember earlier picks, so repeats are possible.
func Select(src Source, c corpus.Corpus) (corpus.Haiku, corpus.Symbol, error) {
	if c.Empty() {
		return corpus.Haiku{}, "", corpus.ErrEmptyCorpus
	}

	h := c.Haikus[src.IntN(len(c.Haikus))]
	s := c.Symbols[src.IntN(len(c.Symbols))]
	return h, s, nil
}
