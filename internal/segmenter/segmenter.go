// Package segmenter infers word boundaries inside a token that lost its
// spaces, picking the partition with the smallest total lexicon cost.
package segmenter

import (
	"math"
	"strings"
	"unicode"

	"wordfix/internal/lexicon"
)

type Kind int

const (
	// Literal means the token is returned as it was.
	Literal Kind = iota
	// Parts means the token was split into dictionary words.
	Parts
)

// Result is either the unsplit token or the ordered words it splits into.
type Result struct {
	Kind   Kind
	Tokens []string
}

func literal(token string) Result { return Result{Kind: Literal, Tokens: []string{token}} }

// String joins the result with single spaces.
func (r Result) String() string { return strings.Join(r.Tokens, " ") }

type Segmenter struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{lex: lex}
}

// Segment splits token into lexicon words. Any part that is not a word
// makes the whole token come back unsplit.
func (s *Segmenter) Segment(token string) Result {
	if token == "" || s.lex.ContainsFold(token) {
		return literal(token)
	}
	r := []rune(token)
	lower := []rune(strings.ToLower(token))
	if len(lower) != len(r) {
		// lowercasing changed the rune count; positions would not line up
		lower = r
	}

	n := len(r)
	maxLen := s.lex.MaxWordLength()
	cost := make([]float64, n+1)
	step := make([]int, n+1)
	for i := 1; i <= n; i++ {
		best, bestK := math.Inf(1), 1
		for k := 1; k <= i && k <= maxLen; k++ {
			c := cost[i-k] + s.lex.Cost(strings.ToLower(string(lower[i-k:i])))
			if c < best {
				best, bestK = c, k
			}
		}
		cost[i] = best
		step[i] = bestK
	}

	// out is built right to left
	var out []string
	// pending collects a run of lone apostrophes for the token on their left
	pending := ""
	for i := n; i > 0; {
		k := step[i]
		tok := string(r[i-k : i])
		i -= k

		if tok == "'" {
			pending += tok
			continue
		}
		tok += pending
		pending = ""
		if last := len(out) - 1; last >= 0 {
			if out[last] == "'s" || (endsWithDigit(tok) && startsWithDigit(out[last])) {
				out[last] = tok + out[last]
				continue
			}
		}
		out = append(out, tok)
	}
	if pending != "" {
		if last := len(out) - 1; last >= 0 {
			out[last] = pending + out[last]
		} else {
			out = append(out, pending)
		}
	}

	for left, right := 0, len(out)-1; left < right; left, right = left+1, right-1 {
		out[left], out[right] = out[right], out[left]
	}
	for _, w := range out {
		if !s.lex.ContainsFold(w) {
			return literal(token)
		}
	}
	if len(out) == 1 {
		return literal(token)
	}
	return Result{Kind: Parts, Tokens: out}
}

func endsWithDigit(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsDigit(r[len(r)-1])
}

func startsWithDigit(s string) bool {
	for _, c := range s {
		return unicode.IsDigit(c)
	}
	return false
}
