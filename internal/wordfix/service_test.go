package wordfix

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfix/internal/config"
	"wordfix/internal/corrector"
	"wordfix/internal/customdict"
	"wordfix/internal/lexicon"
)

func newTestService(t *testing.T, store customdict.Store) *Service {
	t.Helper()
	lex, err := lexicon.New(fixtureWords)
	require.NoError(t, err)
	sc, err := corrector.NewSpellCorrector(corrector.DefaultConfig(), fixtureEntries())
	require.NoError(t, err)
	s, err := NewService(context.Background(), lex, lex, sc, store)
	require.NoError(t, err)
	return s
}

func TestServiceCustomWords(t *testing.T) {
	ctx := context.Background()
	store := customdict.NewMemory()
	s := newTestService(t, store)

	before := s.Model()
	assert.Equal(t, "hc pcs", before.Join("hc pcs"))
	assert.Equal(t, "hcpcscodes", before.Split("hcpcscodes"))

	require.NoError(t, s.AddCustomWord(ctx, " HCPCS "))
	m := s.Model()
	assert.NotSame(t, before, m)
	assert.Equal(t, "hcpcs", m.Join("hc pcs"))
	assert.Equal(t, "hcpcs codes", m.Split("hcpcscodes"))
	assert.Equal(t, "hcpcs", m.Spell("hcpca"))
	assert.Equal(t, []string{"hcpcs"}, s.CustomWords())

	words, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hcpcs"}, words)

	// the model handed out earlier is unaffected
	assert.Equal(t, "hc pcs", before.Join("hc pcs"))

	require.NoError(t, s.RemoveCustomWord(ctx, "hcpcs"))
	assert.Equal(t, "hc pcs", s.Model().Join("hc pcs"))
	assert.Empty(t, s.CustomWords())
	words, err = store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestServiceLoadsStoredWords(t *testing.T) {
	s := newTestService(t, customdict.NewMemory("hcpcs", "  "))
	assert.Equal(t, []string{"hcpcs"}, s.CustomWords())
	assert.Equal(t, "hcpcs codes", s.Model().Split("hcpcscodes"))
}

func TestServiceRejectsEmptyWord(t *testing.T) {
	s := newTestService(t, nil)
	assert.ErrorIs(t, s.AddCustomWord(context.Background(), "  "), ErrEmptyWord)
	assert.ErrorIs(t, s.RemoveCustomWord(context.Background(), ""), ErrEmptyWord)
}

type failingStore struct{ err error }

func (f failingStore) Add(context.Context, string) error     { return f.err }
func (f failingStore) Remove(context.Context, string) error  { return f.err }
func (f failingStore) All(context.Context) ([]string, error) { return nil, nil }

func TestServiceStoreFailureLeavesModel(t *testing.T) {
	boom := errors.New("boom")
	s := newTestService(t, failingStore{err: boom})
	before := s.Model()

	assert.ErrorIs(t, s.AddCustomWord(context.Background(), "hcpcs"), boom)
	assert.Same(t, before, s.Model())
	assert.Empty(t, s.CustomWords())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	freq := filepath.Join(dir, "freq.txt")
	var b strings.Builder
	for _, e := range fixtureEntries() {
		b.WriteString(e.Word + " " + strconv.Itoa(e.Count) + "\n")
	}
	require.NoError(t, os.WriteFile(freq, []byte(b.String()), 0o644))
	vocab := filepath.Join(dir, "vocab.txt")
	require.NoError(t, os.WriteFile(vocab, []byte("relevant\nclinical\n"), 0o644))

	cfg := config.Default()
	cfg.FrequencyPath = freq
	cfg.VocabularyPath = vocab

	s, err := Open(context.Background(), cfg, customdict.NewMemory())
	require.NoError(t, err)
	m := s.Model()
	assert.Equal(t, "the views", m.Split("theviews"))
	assert.Equal(t, "relevant clinical", m.Join("rele vant clin ical"))
	// vocabulary words are not segmentation targets
	assert.Equal(t, "relevantclinical", m.Split("relevantclinical"))
	assert.Equal(t, len(fixtureWords), s.Corrector().WordCount())

	cfg.FrequencyPath = filepath.Join(dir, "missing.txt")
	_, err = Open(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
