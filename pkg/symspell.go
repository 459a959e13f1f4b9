// Package symspell implements symmetric-delete spelling correction: every
// dictionary word is indexed under the strings obtained by deleting up to
// MaxDictionaryEditDistance runes from its prefix, and a lookup only has to
// generate deletes of the input.
package symspell

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"

	"wordfix/pkg/options"
	"wordfix/pkg/verbosity"
)

var ErrEditDistance = errors.New("symspell: edit distance exceeds dictionary edit distance")

type SymSpell interface {
	// CreateDictionaryEntry adds count to word; it reports whether word
	// became a new dictionary entry.
	CreateDictionaryEntry(word string, count int) bool
	// RemoveDictionaryEntry drops word; it reports whether word was present.
	RemoveDictionaryEntry(word string) bool
	Lookup(term string, v verbosity.Verbosity, maxEditDistance int) ([]Suggestion, error)
	WordCount() int
	MaxWordLength() int
}

type symSpell struct {
	opts options.SymspellOptions

	// deletes maps a delete string to the words it was derived from.
	deletes map[string][]string
	words   map[string]int
	// belowThreshold holds words whose count has not reached CountThreshold.
	belowThreshold map[string]int
	maxLength      int
}

func NewSymSpell(opts ...options.Options) SymSpell {
	o := options.DefaultOptions
	for _, op := range opts {
		op.Apply(&o)
	}
	if o.MaxDictionaryEditDistance < 0 {
		o.MaxDictionaryEditDistance = 0
	}
	if o.PrefixLength <= o.MaxDictionaryEditDistance {
		o.PrefixLength = o.MaxDictionaryEditDistance + 1
	}
	if o.CountThreshold < 0 {
		o.CountThreshold = 0
	}
	return &symSpell{
		opts:           o,
		deletes:        make(map[string][]string),
		words:          make(map[string]int),
		belowThreshold: make(map[string]int),
	}
}

func (s *symSpell) WordCount() int { return len(s.words) }

func (s *symSpell) MaxWordLength() int { return s.maxLength }

func (s *symSpell) CreateDictionaryEntry(word string, count int) bool {
	if count <= 0 {
		if s.opts.CountThreshold > 0 {
			return false
		}
		count = 0
	}
	if prev, ok := s.belowThreshold[word]; s.opts.CountThreshold > 1 && ok {
		count = addCounts(prev, count)
		if count < s.opts.CountThreshold {
			s.belowThreshold[word] = count
			return false
		}
		delete(s.belowThreshold, word)
	} else if prev, ok := s.words[word]; ok {
		s.words[word] = addCounts(prev, count)
		return false
	} else if count < s.opts.CountThreshold {
		s.belowThreshold[word] = count
		return false
	}

	s.words[word] = count
	if n := len([]rune(word)); n > s.maxLength {
		s.maxLength = n
	}
	for _, del := range s.editsPrefix(word) {
		s.deletes[del] = append(s.deletes[del], word)
	}
	return true
}

func (s *symSpell) RemoveDictionaryEntry(word string) bool {
	delete(s.belowThreshold, word)
	if _, ok := s.words[word]; !ok {
		return false
	}
	delete(s.words, word)
	for _, del := range s.editsPrefix(word) {
		list := s.deletes[del]
		kept := list[:0]
		for _, w := range list {
			if w != word {
				kept = append(kept, w)
			}
		}
		if len(kept) == 0 {
			delete(s.deletes, del)
		} else {
			s.deletes[del] = kept
		}
	}
	return true
}

func (s *symSpell) Lookup(term string, v verbosity.Verbosity, maxEditDistance int) ([]Suggestion, error) {
	if maxEditDistance > s.opts.MaxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: %d > %d", ErrEditDistance, maxEditDistance, s.opts.MaxDictionaryEditDistance)
	}
	if maxEditDistance < 0 {
		maxEditDistance = 0
	}
	phrase := term
	if s.opts.PreserveCase {
		phrase = strings.ToLower(term)
	}
	suggestions := s.lookup(phrase, v, maxEditDistance)
	if len(suggestions) == 0 && s.opts.IncludeUnknown {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: maxEditDistance + 1})
	}
	if s.opts.PreserveCase {
		for i := range suggestions {
			suggestions[i].Term = TransferCasing(term, suggestions[i].Term)
		}
	}
	return suggestions, nil
}

func (s *symSpell) lookup(phrase string, v verbosity.Verbosity, maxEditDistance int) Suggestions {
	input := []rune(phrase)
	inputLen := len(input)
	// too long to be within reach of any word
	if inputLen-maxEditDistance > s.maxLength {
		return nil
	}

	var suggestions Suggestions
	if count, ok := s.words[phrase]; ok {
		suggestions = append(suggestions, Suggestion{Term: phrase, Count: count})
		if v != verbosity.All {
			return suggestions
		}
	}
	if maxEditDistance == 0 {
		return suggestions
	}

	consideredDeletes := mapset.NewThreadUnsafeSet[string]()
	consideredSuggestions := mapset.NewThreadUnsafeSet[string]()
	consideredSuggestions.Add(phrase)

	maxEditDistance2 := maxEditDistance
	inputPrefixLen := min(inputLen, s.opts.PrefixLength)
	candidates := [][]rune{input[:inputPrefixLen]}

	for p := 0; p < len(candidates); p++ {
		candidate := candidates[p]
		candidateStr := string(candidate)
		candidateLen := len(candidate)
		lengthDiff := inputPrefixLen - candidateLen

		// candidates are ordered by delete distance
		if lengthDiff > maxEditDistance2 {
			if v == verbosity.All {
				continue
			}
			break
		}

		for _, suggestion := range s.deletes[candidateStr] {
			if suggestion == phrase {
				continue
			}
			sug := []rune(suggestion)
			sugLen := len(sug)
			if abs(sugLen-inputLen) > maxEditDistance2 ||
				sugLen < candidateLen ||
				(sugLen == candidateLen && suggestion != candidateStr) {
				continue
			}
			sugPrefixLen := min(sugLen, s.opts.PrefixLength)
			if sugPrefixLen > inputPrefixLen && sugPrefixLen-candidateLen > maxEditDistance2 {
				continue
			}

			var distance int
			switch {
			case candidateLen == 0:
				distance = max(inputLen, sugLen)
				if distance > maxEditDistance2 || !consideredSuggestions.Add(suggestion) {
					continue
				}
			case sugLen == 1:
				distance = inputLen
				if containsRune(input, sug[0]) {
					distance = inputLen - 1
				}
				if distance > maxEditDistance2 || !consideredSuggestions.Add(suggestion) {
					continue
				}
			default:
				if !consideredSuggestions.Add(suggestion) {
					continue
				}
				distance = edlib.OSADamerauLevenshteinDistance(phrase, suggestion)
			}
			if distance > maxEditDistance2 {
				continue
			}

			count, ok := s.words[suggestion]
			if !ok {
				continue
			}
			si := Suggestion{Term: suggestion, Distance: distance, Count: count}
			if len(suggestions) > 0 {
				switch v {
				case verbosity.Closest:
					if distance < maxEditDistance2 {
						suggestions = suggestions[:0]
					}
				case verbosity.Top:
					if distance < maxEditDistance2 || count > suggestions[0].Count {
						maxEditDistance2 = distance
						suggestions[0] = si
					}
					continue
				}
			}
			if v != verbosity.All {
				maxEditDistance2 = distance
			}
			suggestions = append(suggestions, si)
		}

		// derive the next level of deletes from this candidate
		if lengthDiff < maxEditDistance && candidateLen <= s.opts.PrefixLength {
			if v != verbosity.All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				del := make([]rune, 0, candidateLen-1)
				del = append(del, candidate[:i]...)
				del = append(del, candidate[i+1:]...)
				if consideredDeletes.Add(string(del)) {
					candidates = append(candidates, del)
				}
			}
		}
	}

	sort.Stable(suggestions)
	return suggestions
}

// editsPrefix returns the deletes of word's prefix up to the dictionary
// edit distance, the prefix itself included.
func (s *symSpell) editsPrefix(word string) []string {
	r := []rune(word)
	edits := mapset.NewThreadUnsafeSet[string]()
	if len(r) <= s.opts.MaxDictionaryEditDistance {
		edits.Add("")
	}
	if len(r) > s.opts.PrefixLength {
		r = r[:s.opts.PrefixLength]
	}
	edits.Add(string(r))
	s.edits(r, 0, edits)
	return edits.ToSlice()
}

func (s *symSpell) edits(word []rune, distance int, out mapset.Set[string]) {
	distance++
	if len(word) <= 1 {
		return
	}
	for i := range word {
		del := make([]rune, 0, len(word)-1)
		del = append(del, word[:i]...)
		del = append(del, word[i+1:]...)
		if out.Add(string(del)) && distance < s.opts.MaxDictionaryEditDistance {
			s.edits(del, distance, out)
		}
	}
}

func addCounts(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func containsRune(rs []rune, c rune) bool {
	for _, r := range rs {
		if r == c {
			return true
		}
	}
	return false
}
