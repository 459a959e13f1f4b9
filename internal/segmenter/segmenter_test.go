package segmenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfix/internal/lexicon"
)

// rankedLexicon puts head at the top ranks, then enough filler to make
// tail words expensive.
func rankedLexicon(t *testing.T, head []string, tail ...string) *lexicon.Lexicon {
	t.Helper()
	words := append([]string{}, head...)
	for i := 0; i < 5000; i++ {
		words = append(words, fmt.Sprintf("zq%dzq", i))
	}
	words = append(words, tail...)
	lex, err := lexicon.New(words)
	require.NoError(t, err)
	return lex
}

func TestSegmentSplitsRunOn(t *testing.T) {
	lex, err := lexicon.New([]string{"the", "of", "and", "a", "in", "views", "view", "relevant", "clinical", "areas"})
	require.NoError(t, err)
	seg := New(lex)

	res := seg.Segment("theviews")
	assert.Equal(t, Parts, res.Kind)
	assert.Equal(t, []string{"the", "views"}, res.Tokens)
	assert.Equal(t, "the views", res.String())

	assert.Equal(t, "relevant clinical", seg.Segment("relevantclinical").String())
}

func TestSegmentKeepsOriginalCase(t *testing.T) {
	lex, err := lexicon.New([]string{"american", "medical", "association"})
	require.NoError(t, err)

	res := New(lex).Segment("AmericanMedical")
	assert.Equal(t, []string{"American", "Medical"}, res.Tokens)
}

func TestSegmentWholeWordShortCircuit(t *testing.T) {
	lex, err := lexicon.New([]string{"in", "to", "into", "hospital", "hos", "pit", "al"})
	require.NoError(t, err)
	seg := New(lex)

	for _, w := range []string{"into", "Hospital", "HOSPITAL"} {
		res := seg.Segment(w)
		assert.Equal(t, Literal, res.Kind, w)
		assert.Equal(t, []string{w}, res.Tokens)
	}
}

func TestSegmentFallsBackWhenNoPartition(t *testing.T) {
	lex, err := lexicon.New([]string{"the", "a", "of", "views"})
	require.NoError(t, err)
	seg := New(lex)

	res := seg.Segment("xyzzyqprst")
	assert.Equal(t, Literal, res.Kind)
	assert.Equal(t, "xyzzyqprst", res.String())

	// "the" is a word, "xq" is not: the whole token survives
	assert.Equal(t, "thexq", seg.Segment("thexq").String())
}

func TestSegmentEmpty(t *testing.T) {
	lex, err := lexicon.New([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Result{Kind: Literal, Tokens: []string{""}}, New(lex).Segment(""))
}

func TestSegmentReattachesPossessive(t *testing.T) {
	lex := rankedLexicon(t, []string{"the", "'s", "dog", "bone"}, "dog's")
	res := New(lex).Segment("thedog'sbone")
	assert.Equal(t, Parts, res.Kind)
	assert.Equal(t, []string{"the", "dog's", "bone"}, res.Tokens)
	assert.NotContains(t, res.Tokens, "'s")
	assert.NotContains(t, res.Tokens, "'")
}

func TestSegmentPossessiveWithoutWordStaysWhole(t *testing.T) {
	lex := rankedLexicon(t, []string{"the", "'s", "dog", "bone"})
	res := New(lex).Segment("thedog'sbone")
	assert.Equal(t, Literal, res.Kind)
	assert.Equal(t, "thedog'sbone", res.String())
}

func TestSegmentLoneApostropheJoinsLeftToken(t *testing.T) {
	lex := rankedLexicon(t, []string{"the", "dogs", "'"}, "dogs'")
	res := New(lex).Segment("thedogs'")
	assert.Equal(t, []string{"the", "dogs'"}, res.Tokens)
}

func TestSegmentMergesDigitRuns(t *testing.T) {
	lex := rankedLexicon(t, []string{"page", "1", "2", "3"}, "123")
	res := New(lex).Segment("page123")
	assert.Equal(t, Parts, res.Kind)
	assert.Equal(t, []string{"page", "123"}, res.Tokens)
}

func TestSegmentIdempotent(t *testing.T) {
	lex, err := lexicon.New([]string{"the", "of", "and", "a", "in", "views", "view", "are", "not", "but", "include"})
	require.NoError(t, err)
	seg := New(lex)

	for _, in := range []string{"theviews", "includebutare", "xyzzy", "view"} {
		first := seg.Segment(in)
		for _, tok := range first.Tokens {
			again := seg.Segment(tok)
			assert.Equal(t, Literal, again.Kind, "%q from %q", tok, in)
			assert.Equal(t, tok, again.String())
		}
	}
}

func TestSegmentKeepsApostropheRuns(t *testing.T) {
	head := []string{"'", "a", "b"}

	// "b''" is not a word, so the token stays whole
	res := New(rankedLexicon(t, head)).Segment("b''a")
	assert.Equal(t, Literal, res.Kind)
	assert.Equal(t, []string{"b''a"}, res.Tokens)

	// the cheapest path is b ' ' a; both apostrophes join "b"
	res = New(rankedLexicon(t, head, "b''")).Segment("b''a")
	assert.Equal(t, Parts, res.Kind)
	assert.Equal(t, []string{"b''", "a"}, res.Tokens)
	assert.Equal(t, "b''a", strings.Join(res.Tokens, ""))
}

func TestSegmentTieGoesToShortestLastWord(t *testing.T) {
	// every word costs the same, so "ab c" and "a bc" tie
	lex := rankedLexicon(t, []string{"a"}).With("ab", "bc", "c")

	res := New(lex).Segment("abc")
	assert.Equal(t, Parts, res.Kind)
	assert.Equal(t, []string{"ab", "c"}, res.Tokens)
}
