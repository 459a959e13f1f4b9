package lexicon

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// Lexicon is an immutable word list with Zipf costs and a membership set.
// Rank is the position of a word in the list it was built from; lower rank
// means a cheaper word.
type Lexicon struct {
	costs  map[string]float64
	size   int
	maxLen int
}

var ErrEmpty = errors.New("lexicon: empty word list")

// New builds a lexicon from words in frequency order.
// cost(word) = ln((rank+1) * ln(N)) with N = len(words).
func New(words []string) (*Lexicon, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	l := &Lexicon{
		costs: make(map[string]float64, len(words)),
		size:  len(words),
	}
	logN := zipfScale(len(words))
	for rank, w := range words {
		if w == "" {
			continue
		}
		if _, ok := l.costs[w]; ok {
			// first occurrence keeps its rank
			continue
		}
		l.costs[w] = math.Log(float64(rank+1) * logN)
		if n := utf8.RuneCountInString(w); n > l.maxLen {
			l.maxLen = n
		}
	}
	return l, nil
}

// Cost returns the cost of word, +Inf when it is not in the lexicon.
func (l *Lexicon) Cost(word string) float64 {
	if c, ok := l.costs[word]; ok {
		return c
	}
	return math.Inf(1)
}

// MaxWordLength is the length in runes of the longest word.
func (l *Lexicon) MaxWordLength() int { return l.maxLen }

// Contains reports exact, case-sensitive membership.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.costs[word]
	return ok
}

// ContainsFold reports membership of the lowercased word.
func (l *Lexicon) ContainsFold(word string) bool {
	_, ok := l.costs[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.costs) }

// With returns a copy of l that also contains extra. Added words cost the
// same as the rank-0 word; words already present keep their cost.
func (l *Lexicon) With(extra ...string) *Lexicon {
	out := &Lexicon{
		costs:  make(map[string]float64, len(l.costs)+len(extra)),
		size:   l.size,
		maxLen: l.maxLen,
	}
	for w, c := range l.costs {
		out.costs[w] = c
	}
	top := math.Log(zipfScale(l.size))
	for _, w := range extra {
		if w == "" {
			continue
		}
		if _, ok := out.costs[w]; ok {
			continue
		}
		out.costs[w] = top
		if n := utf8.RuneCountInString(w); n > out.maxLen {
			out.maxLen = n
		}
	}
	return out
}

// zipfScale is ln(N), clamped to 1 so a single-word list stays finite.
func zipfScale(n int) float64 {
	if s := math.Log(float64(n)); s > 1 {
		return s
	}
	return 1
}
