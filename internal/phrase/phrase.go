// Package phrase cuts text into word-content phrases and the punctuation
// runs between them, and puts them back together byte for byte.
package phrase

import (
	"regexp"
	"strings"
)

type Kind int

const (
	Phrase Kind = iota
	Separator
)

type Span struct {
	Kind Kind
	Text string
}

// A separator is a run of anything outside letters, digits, underscore,
// apostrophe, hyphen and plain space, together with the whitespace around it.
var separatorRe = regexp.MustCompile(`\s*[^\p{L}\p{N}_ '\-]+\s*`)

// Split returns alternating phrase and separator spans. The first and last
// spans are phrases, possibly empty.
func Split(text string) []Span {
	locs := separatorRe.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		spans = append(spans,
			Span{Kind: Phrase, Text: text[prev:loc[0]]},
			Span{Kind: Separator, Text: text[loc[0]:loc[1]]},
		)
		prev = loc[1]
	}
	return append(spans, Span{Kind: Phrase, Text: text[prev:]})
}

// Join concatenates spans in order.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Map applies fn to every phrase of text and copies separators unchanged.
func Map(text string, fn func(string) string) string {
	spans := Split(text)
	for i := range spans {
		if spans[i].Kind == Phrase {
			spans[i].Text = fn(spans[i].Text)
		}
	}
	return Join(spans)
}
