// Package wordfix repairs OCR spacing and spelling damage phrase by phrase,
// leaving punctuation and the whitespace around it untouched.
package wordfix

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"wordfix/internal/joiner"
	"wordfix/internal/lexicon"
	"wordfix/internal/phrase"
	"wordfix/internal/segmenter"
)

// Speller returns a correction for a single token, or the token itself.
type Speller interface {
	Correct(token string) string
}

type Mode string

const (
	ModeSplit    Mode = "split"
	ModeJoin     Mode = "join"
	ModeSpell    Mode = "spell"
	ModeFixSpace Mode = "fix-space"
	ModeFix      Mode = "fix"
)

var Modes = []Mode{ModeSplit, ModeJoin, ModeSpell, ModeFixSpace, ModeFix}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Model is safe for concurrent use; it holds no per-call state.
type Model struct {
	segmenter *segmenter.Segmenter
	joiner    *joiner.Joiner
	speller   Speller
}

// New builds a model. ranked supplies segmentation costs, vocab the
// membership set for joining. A nil speller leaves spelling alone.
func New(ranked, vocab *lexicon.Lexicon, speller Speller) *Model {
	return &Model{
		segmenter: segmenter.New(ranked),
		joiner:    joiner.New(vocab),
		speller:   speller,
	}
}

// Split breaks run-on words apart.
func (m *Model) Split(text string) string { return m.apply(text, m.splitPhrase) }

// Join glues split word fragments back together.
func (m *Model) Join(text string) string { return m.apply(text, m.joiner.Join) }

// Spell corrects misspelled words.
func (m *Model) Spell(text string) string { return m.apply(text, m.spellPhrase) }

// FixSpace joins, then splits.
func (m *Model) FixSpace(text string) string {
	return m.apply(text, func(p string) string {
		return m.splitPhrase(m.joiner.Join(p))
	})
}

// Fix joins, corrects spelling, then splits what is still run together.
func (m *Model) Fix(text string) string {
	return m.apply(text, func(p string) string {
		return m.splitPhrase(m.spellPhrase(m.joiner.Join(p)))
	})
}

// Apply runs the operation named by mode.
func (m *Model) Apply(mode Mode, text string) (string, error) {
	switch mode {
	case ModeSplit:
		return m.Split(text), nil
	case ModeJoin:
		return m.Join(text), nil
	case ModeSpell:
		return m.Spell(text), nil
	case ModeFixSpace:
		return m.FixSpace(text), nil
	case ModeFix:
		return m.Fix(text), nil
	}
	return "", fmt.Errorf("unknown mode %q", mode)
}

func (m *Model) apply(text string, fn func(string) string) string {
	return phrase.Map(strings.TrimSpace(text), fn)
}

func (m *Model) splitPhrase(p string) string {
	return mapTokens(p, func(tok string) string {
		return m.segmenter.Segment(tok).String()
	})
}

func (m *Model) spellPhrase(p string) string {
	if m.speller == nil {
		return mapTokens(p, func(tok string) string { return tok })
	}
	return mapTokens(p, func(tok string) string {
		s := m.speller.Correct(tok)
		if strings.EqualFold(s, tok) {
			return tok
		}
		return s
	})
}

// mapTokens applies fn to every eligible token of p and rejoins them with
// single spaces. Acronyms and tokens with non-letters pass through.
func mapTokens(p string, fn func(string) string) string {
	tokens := strings.Fields(p)
	for i, tok := range tokens {
		if passThrough(tok) {
			continue
		}
		tokens[i] = fn(tok)
	}
	return strings.Join(tokens, " ")
}

func passThrough(tok string) bool {
	if utf8.RuneCountInString(tok) > 1 && isUpper(tok) {
		return true
	}
	return !isAlpha(tok)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isUpper needs at least one uppercase rune and no lowercase or titlecase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
