package haiku

import (
	"github.com/henri123lemoine/plant-haiku/internal/corpus"
)

const (
	// TitleLabel follows the symbol in every title.
	TitleLabel = "Plant Haiku"

	// Footer is shown under every haiku.
	Footer = "tap to cycle—water your code"
)

// Presentation is the title, body and footer handed to a presenter.
type Presentation struct {
	Title  string
	Line1  string
	Line2  string
	Line3  string
	Footer string
}

// Format builds the Presentation for h titled with s.
func Format(h corpus.Haiku, s corpus.Symbol) Presentation {
	return Presentation{
		Title:  string(s) + " " + TitleLabel,
		Line1:  h[0],
		Line2:  h[1],
		Line3:  h[2],
		Footer: Footer,
	}
}

// Lines returns the presentation in display order, with a blank line after
// the title and another before the footer.
func (p Presentation) Lines() []string {
	return []string{p.Title, "", p.Line1, p.Line2, p.Line3, "", p.Footer}
}

// Generate selects from c and formats the result.
func Generate(src Source, c corpus.Corpus) (Presentation, error) {
	h, s, err := Select(src, c)
	if err != nil {
		return Presentation{}, err
	}
	return Format(h, s), nil
}
