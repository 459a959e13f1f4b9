package corrector

import (
	"fmt"
	"strings"
	"sync"

	"wordfix/internal/lexicon"
	symspell "wordfix/pkg"
	"wordfix/pkg/options"
	"wordfix/pkg/verbosity"
)

// customCount ranks custom words above anything in a real frequency list.
const customCount = 1_000_000_000

// SpellCorrector suggests the closest dictionary word for a single token.
type SpellCorrector struct {
	config CorrectorConfig

	mu          sync.RWMutex
	symspell    symspell.SymSpell
	// customWords maps a custom word to the count it had before being added.
	customWords map[string]int
}

func NewSpellCorrector(cfg CorrectorConfig, entries []lexicon.Entry) (*SpellCorrector, error) {
	if cfg.MaxEditDistance < 0 {
		return nil, fmt.Errorf("max edit distance must be >= 0, got %d", cfg.MaxEditDistance)
	}
	if cfg.PrefixLength <= cfg.MaxEditDistance {
		return nil, fmt.Errorf("prefix length %d must exceed max edit distance %d", cfg.PrefixLength, cfg.MaxEditDistance)
	}
	sc := &SpellCorrector{
		config: cfg,
		symspell: symspell.NewSymSpell(
			options.WithMaxDictionaryEditDistance(cfg.MaxEditDistance),
			options.WithPrefixLength(cfg.PrefixLength),
			options.WithCountThreshold(cfg.CountThreshold),
			options.WithPreserveCase(),
			options.WithIncludeUnknown(),
		),
		customWords: make(map[string]int),
	}
	for _, e := range entries {
		sc.symspell.CreateDictionaryEntry(strings.ToLower(e.Word), e.Count)
	}
	if sc.symspell.WordCount() == 0 {
		return nil, fmt.Errorf("no dictionary entries reached count threshold %d", cfg.CountThreshold)
	}
	return sc, nil
}

// LoadSpellCorrector builds a corrector from a "word count" file.
func LoadSpellCorrector(cfg CorrectorConfig, dictionaryPath string) (*SpellCorrector, error) {
	entries, err := lexicon.ReadFrequencies(dictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("load spelling dictionary: %w", err)
	}
	return NewSpellCorrector(cfg, entries)
}

// Correct returns the best suggestion for token with token's casing, or
// token itself when nothing is close enough.
func (sc *SpellCorrector) Correct(token string) string {
	sc.mu.RLock()
	suggs, err := sc.symspell.Lookup(token, verbosity.Top, sc.config.MaxEditDistance)
	sc.mu.RUnlock()
	if err != nil || len(suggs) == 0 {
		return token
	}
	return suggs[0].Term
}

// Suggest lists up to n known words within the edit distance, closest first.
func (sc *SpellCorrector) Suggest(token string, n int) SuggestionInfo {
	sc.mu.RLock()
	suggs, err := sc.symspell.Lookup(token, verbosity.All, sc.config.MaxEditDistance)
	sc.mu.RUnlock()

	info := SuggestionInfo{Token: token, Correction: sc.Correct(token), Suggestions: []string{}}
	if err != nil {
		return info
	}
	for _, s := range suggs {
		if s.Distance > sc.config.MaxEditDistance {
			// the unknown-term echo
			continue
		}
		if len(info.Suggestions) == n {
			break
		}
		info.Suggestions = append(info.Suggestions, s.Term)
	}
	return info
}

func (sc *SpellCorrector) WordCount() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.symspell.WordCount()
}

// AddCustomWord makes word the preferred correction among its neighbours.
func (sc *SpellCorrector) AddCustomWord(word string) {
	lw := strings.ToLower(word)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if _, ok := sc.customWords[lw]; ok {
		return
	}
	prev := 0
	if suggs, err := sc.symspell.Lookup(lw, verbosity.Top, 0); err == nil && len(suggs) > 0 && suggs[0].Distance == 0 {
		prev = suggs[0].Count
	}
	sc.customWords[lw] = prev
	sc.symspell.CreateDictionaryEntry(lw, customCount)
}

// RemoveCustomWord forgets a word added with AddCustomWord. Words from the
// frequency dictionary are not affected.
func (sc *SpellCorrector) RemoveCustomWord(word string) {
	lw := strings.ToLower(word)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	prev, ok := sc.customWords[lw]
	if !ok {
		return
	}
	delete(sc.customWords, lw)
	sc.symspell.RemoveDictionaryEntry(lw)
	if prev > 0 {
		sc.symspell.CreateDictionaryEntry(lw, prev)
	}
}
