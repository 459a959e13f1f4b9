// Package joiner rejoins words that OCR broke apart with stray spaces.
package joiner

import (
	"slices"
	"strings"

	"wordfix/internal/lexicon"
)

type Joiner struct {
	vocab *lexicon.Lexicon
}

func New(vocab *lexicon.Lexicon) *Joiner {
	return &Joiner{vocab: vocab}
}

// WholeMerge concatenates tokens and reports whether the result may replace
// them: at least one token must be unknown and the concatenation, lowercased,
// must be a word.
func (j *Joiner) WholeMerge(tokens []string) (string, bool) {
	merged := strings.Join(tokens, "")
	allKnown := true
	for _, t := range tokens {
		if !j.vocab.Contains(t) {
			allKnown = false
			break
		}
	}
	if allKnown || !j.vocab.ContainsFold(merged) {
		return merged, false
	}
	return merged, true
}

// LinearPass scans left to right; at each cursor the smallest window that
// merges wins, otherwise the token is kept and the cursor moves by one.
func (j *Joiner) LinearPass(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		consumed := 1
		next := tokens[i]
		for size := 2; i+size <= len(tokens); size++ {
			if merged, ok := j.WholeMerge(tokens[i : i+size]); ok {
				next, consumed = merged, size
				break
			}
		}
		out = append(out, next)
		i += consumed
	}
	return out
}

// JoinTokens repeats LinearPass until it stops changing the tokens. Every
// pass that changes something removes at least one token, so there are at
// most len(tokens) passes.
func (j *Joiner) JoinTokens(tokens []string) ([]string, int) {
	cur := tokens
	passes := 0
	for limit := len(tokens); passes < limit; {
		next := j.LinearPass(cur)
		passes++
		if slices.Equal(next, cur) {
			break
		}
		cur = next
	}
	return cur, passes
}

// Join merges the whitespace-separated tokens of phrase and rejoins them
// with single spaces.
func (j *Joiner) Join(phrase string) string {
	out, _ := j.JoinTokens(strings.Fields(phrase))
	return strings.Join(out, " ")
}
