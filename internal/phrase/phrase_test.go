package phrase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAlternates(t *testing.T) {
	spans := Split("a, b.")
	assert.Equal(t, []Span{
		{Kind: Phrase, Text: "a"},
		{Kind: Separator, Text: ", "},
		{Kind: Phrase, Text: "b"},
		{Kind: Separator, Text: "."},
		{Kind: Phrase, Text: ""},
	}, spans)
}

func TestSplitKeepsWordContentTogether(t *testing.T) {
	spans := Split("don't re-enter 10th Revision")
	assert.Equal(t, []Span{{Kind: Phrase, Text: "don't re-enter 10th Revision"}}, spans)
}

func TestSplitSeparatorAbsorbsSurroundingWhitespace(t *testing.T) {
	spans := Split(`Termino logy ("CPT®-4"),` + "\n CMS")
	var seps []string
	for _, s := range spans {
		if s.Kind == Separator {
			seps = append(seps, s.Text)
		}
	}
	assert.Equal(t, []string{` ("`, `®`, `"),` + "\n "}, seps)
}

func TestSplitLeadingSeparator(t *testing.T) {
	spans := Split(`"quoted"`)
	assert.Equal(t, []Span{
		{Kind: Phrase, Text: ""},
		{Kind: Separator, Text: `"`},
		{Kind: Phrase, Text: "quoted"},
		{Kind: Separator, Text: `"`},
		{Kind: Phrase, Text: ""},
	}, spans)
}

func TestJoinReconstructsInput(t *testing.T) {
	for _, in := range []string{
		"",
		"plain words only",
		"a, b.",
		"  spaced ;  out  ",
		"T he co des includebutare not li m ite d to, AmericanMedical (\"CPT®-4\"),\n\tCMS.",
		"¿Qué? ¡Sí! — done…",
	} {
		assert.Equal(t, in, Join(Split(in)), in)
	}
}

func TestMapTouchesOnlyPhrases(t *testing.T) {
	out := Map("a, b.", strings.ToUpper)
	assert.Equal(t, "A, B.", out)

	out = Map("one; two", func(string) string { return "x" })
	assert.Equal(t, "x; x", out)
}
