package customdict

import (
	"context"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Memory is a process-local Store, used when no persistent store is
// configured.
type Memory struct {
	words mapset.Set[string]
}

func NewMemory(words ...string) *Memory {
	return &Memory{words: mapset.NewSet(words...)}
}

func (m *Memory) Add(_ context.Context, word string) error {
	m.words.Add(word)
	return nil
}

func (m *Memory) Remove(_ context.Context, word string) error {
	m.words.Remove(word)
	return nil
}

// All returns the words sorted.
func (m *Memory) All(_ context.Context) ([]string, error) {
	out := m.words.ToSlice()
	sort.Strings(out)
	return out, nil
}

func (m *Memory) Close() error { return nil }
