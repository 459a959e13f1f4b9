package wordfix

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"wordfix/internal/config"
	"wordfix/internal/corrector"
	"wordfix/internal/customdict"
	"wordfix/internal/lexicon"
)

var ErrEmptyWord = errors.New("word is required")

// Service wraps a Model with a persistent custom dictionary. Adding or
// removing a custom word swaps in a freshly built Model; calls already in
// flight finish on the old one.
type Service struct {
	ranked    *lexicon.Lexicon
	vocab     *lexicon.Lexicon
	corrector *corrector.SpellCorrector
	store     customdict.Store

	mu     sync.Mutex
	custom map[string]bool
	model  atomic.Pointer[Model]
}

// NewService loads the stored custom words and builds the first model.
func NewService(ctx context.Context, ranked, vocab *lexicon.Lexicon, sc *corrector.SpellCorrector, store customdict.Store) (*Service, error) {
	s := &Service{
		ranked:    ranked,
		vocab:     vocab,
		corrector: sc,
		store:     store,
		custom:    make(map[string]bool),
	}
	if store != nil {
		words, err := store.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load custom words: %w", err)
		}
		for _, w := range words {
			lw := strings.ToLower(strings.TrimSpace(w))
			if lw == "" {
				continue
			}
			s.custom[lw] = true
			sc.AddCustomWord(lw)
		}
	}
	s.rebuild()
	return s, nil
}

// Open builds a Service from configuration: both lexicons, the corrector
// and whatever custom words store already holds.
func Open(ctx context.Context, cfg config.Config, store customdict.Store) (*Service, error) {
	entries, err := lexicon.ReadFrequencies(cfg.FrequencyPath)
	if err != nil {
		return nil, err
	}
	words := lexicon.Words(entries)
	ranked, err := lexicon.New(words)
	if err != nil {
		return nil, err
	}
	vocab := ranked
	if cfg.VocabularyPath != "" {
		extra, err := lexicon.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return nil, err
		}
		vocab = ranked.With(extra...)
	}
	sc, err := corrector.NewSpellCorrector(cfg.Corrector, entries)
	if err != nil {
		return nil, fmt.Errorf("spell corrector: %w", err)
	}
	log.Printf("loaded %d ranked words, %d vocabulary words, %d spelling entries",
		ranked.Len(), vocab.Len(), sc.WordCount())
	return NewService(ctx, ranked, vocab, sc, store)
}

// Model returns the current model.
func (s *Service) Model() *Model { return s.model.Load() }

func (s *Service) Corrector() *corrector.SpellCorrector { return s.corrector }

// CustomWords lists the custom words in use.
func (s *Service) CustomWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.custom))
	for w := range s.custom {
		out = append(out, w)
	}
	return out
}

// AddCustomWord persists word and makes every operation treat it as known.
func (s *Service) AddCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(strings.TrimSpace(word))
	if lw == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Add(ctx, lw); err != nil {
			return err
		}
	}
	if s.custom[lw] {
		return nil
	}
	s.custom[lw] = true
	s.corrector.AddCustomWord(lw)
	s.rebuildLocked()
	return nil
}

// RemoveCustomWord deletes word from the store and from the model.
func (s *Service) RemoveCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(strings.TrimSpace(word))
	if lw == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Remove(ctx, lw); err != nil {
			return err
		}
	}
	if !s.custom[lw] {
		return nil
	}
	delete(s.custom, lw)
	s.corrector.RemoveCustomWord(lw)
	s.rebuildLocked()
	return nil
}

func (s *Service) rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked()
}

func (s *Service) rebuildLocked() {
	ranked, vocab := s.ranked, s.vocab
	if len(s.custom) > 0 {
		words := make([]string, 0, len(s.custom))
		for w := range s.custom {
			words = append(words, w)
		}
		ranked = ranked.With(words...)
		vocab = vocab.With(words...)
	}
	s.model.Store(New(ranked, vocab, s.corrector))
}
