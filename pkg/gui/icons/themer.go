package icons

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"spree/pkg/gui/theme"
)

// Tokens recognised inside icon markup.
const (
	PrimaryToken   = "%primaryColor%"
	SecondaryToken = "%secondaryColor%"
)

// Variants are the two pre-themed renderings of one icon.
type Variants struct {
	Focused   string
	Unfocused string
}

// Themer substitutes colour tokens in icon markup. Matching is simultaneous,
// leftmost-first and non-overlapping, so one token may safely prefix another.
type Themer struct {
	ac ahocorasick.AhoCorasick
}

// NewThemer builds the automaton for the reserved colour tokens.
func NewThemer() *Themer {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.LeftMostFirstMatch,
	})
	ac := builder.Build([]string{PrimaryToken, SecondaryToken})
	return &Themer{ac: ac}
}

// Replace substitutes the primary and secondary tokens with the given strings.
// Matches overlapping an earlier substitution are skipped.
func (t *Themer) Replace(markup, primary, secondary string) string {
	var b strings.Builder
	b.Grow(len(markup))

	last := 0
	iter := t.ac.Iter(markup)
	for m := iter.Next(); m != nil; m = iter.Next() {
		if m.Start() < last {
			continue
		}
		b.WriteString(markup[last:m.Start()])
		if m.Pattern() == 0 {
			b.WriteString(primary)
		} else {
			b.WriteString(secondary)
		}
		last = m.End()
	}
	b.WriteString(markup[last:])
	return b.String()
}

// Theme produces the focused variant (tokens map to their own colour) and the
// unfocused variant (colours swapped).
func (t *Themer) Theme(markup string, primary, secondary theme.Color) Variants {
	p, s := primary.CSS(), secondary.CSS()
	return Variants{
		Focused:   t.Replace(markup, p, s),
		Unfocused: t.Replace(markup, s, p),
	}
}
