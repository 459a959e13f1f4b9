package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Entry is one line of a frequency dictionary.
type Entry struct {
	Word  string
	Count int
}

// Load builds the ranked lexicon from a frequency dictionary file.
func Load(path string) (*Lexicon, error) {
	entries, err := ReadFrequencies(path)
	if err != nil {
		return nil, err
	}
	return New(Words(entries))
}

// Words returns the words of entries in file order.
func Words(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

// ReadFrequencies reads a "word count" file. Line order is rank order.
func ReadFrequencies(path string) ([]Entry, error) {
	var entries []Entry
	err := withMapped(path, func(r io.Reader) error {
		var err error
		entries, err = ParseFrequencies(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read frequencies %s: %w", path, err)
	}
	return entries, nil
}

// LoadVocabulary reads a word list; the word is the first field of a line.
func LoadVocabulary(path string) ([]string, error) {
	var words []string
	err := withMapped(path, func(r io.Reader) error {
		var err error
		words, err = ParseVocabulary(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return words, nil
}

// ParseFrequencies parses "word count" lines. Blank lines are skipped; a
// line without a count, or with a count that is not a number, is an error.
func ParseFrequencies(r io.Reader) ([]Entry, error) {
	var entries []Entry
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: want \"word count\", got %q", lineNo, line)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			fv, ferr := strconv.ParseFloat(parts[1], 64)
			if ferr != nil {
				return nil, fmt.Errorf("line %d: bad count %q", lineNo, parts[1])
			}
			count = int(fv)
		}
		entries = append(entries, Entry{Word: parts[0], Count: count})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	return entries, nil
}

// ParseVocabulary parses a word-per-line list, ignoring trailing fields.
func ParseVocabulary(r io.Reader) ([]string, error) {
	var words []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		parts := strings.Fields(s.Text())
		if len(parts) == 0 {
			continue
		}
		words = append(words, parts[0])
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// withMapped maps path read-only for the duration of fn.
func withMapped(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.Size() == 0 {
		return ErrEmpty
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	defer m.Unmap()
	return fn(bytes.NewReader(m))
}
