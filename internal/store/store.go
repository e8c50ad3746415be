// Package store implements the snippet store operations.
//
// Every operation reads the whole store file, decodes it, and, when it
// mutates, rewrites the whole file. Read and write failures are logged but
// never returned: an unreadable file behaves like an empty one and a failed
// write looks like a successful one.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matsen/snip/internal/snippet"
	"github.com/matsen/snip/internal/storage"
)

// RemovalStrategy selects how an entry is taken out of the sequence.
type RemovalStrategy string

const (
	// RemovalSwap moves the last entry into the removed slot.
	RemovalSwap RemovalStrategy = "swap"
	// RemovalStable shifts later entries left, keeping file order.
	RemovalStable RemovalStrategy = "stable"
)

// ValidRemovalStrategies lists the accepted removal strategy values.
var ValidRemovalStrategies = []RemovalStrategy{RemovalSwap, RemovalStable}

// ErrInvalidName is returned for names that could not be read back from the file.
var ErrInvalidName = errors.New("invalid snippet name")

// ErrInvalidValue is returned for values spanning more than one line.
var ErrInvalidValue = errors.New("invalid snippet value")

// Store is a snippet store backed by a single flat file.
type Store struct {
	path    string
	removal RemovalStrategy
}

// ListResult is the outcome of List.
type ListResult struct {
	Entries     []snippet.Entry
	Empty       bool // nothing to list: empty file or no match
	SyntaxError bool
}

// AddResult is the outcome of Add.
type AddResult struct {
	Added     bool
	Existing  *snippet.Entry // set when the name was already taken
	Recovered bool           // a malformed file was replaced
}

// SetResult is the outcome of Set.
type SetResult struct {
	Replaced  bool
	Recovered bool
}

// RemoveResult is the outcome of Remove. Both fields are false when the
// file could not be decoded.
type RemoveResult struct {
	Removed bool
	Missing bool
}

// NewStore returns a store for the file at path.
// An empty removal strategy defaults to RemovalSwap.
func NewStore(path string, removal RemovalStrategy) *Store {
	if removal == "" {
		removal = RemovalSwap
	}
	return &Store{path: path, removal: removal}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Removal returns the configured removal strategy.
func (s *Store) Removal() RemovalStrategy {
	return s.removal
}

// ValidateRemovalStrategy checks that the value names a known strategy.
func ValidateRemovalStrategy(v string) error {
	if v == "" {
		return nil // Empty defaults to swap
	}
	for _, valid := range ValidRemovalStrategies {
		if RemovalStrategy(v) == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid removal strategy: %s (valid: %v)", v, ValidRemovalStrategies)
}

// ValidateEntry rejects names and values that would not survive a write.
// Values containing the delimiter are accepted; they are written as-is.
func ValidateEntry(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsRune(name, snippet.Delimiter) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, snippet.Delimiter)
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value for %q contains a line break", ErrInvalidValue, name)
	}
	return nil
}

// load reads and decodes the store file.
func (s *Store) load() (string, []snippet.Entry, error) {
	text, err := storage.ReadText(s.path)
	if err != nil {
		slog.Debug("store file unreadable, treating as empty", "path", s.path, "error", err)
	}

	entries, err := snippet.Decode(text)
	if err != nil {
		slog.Debug("store file malformed", "path", s.path, "error", err)
	}
	return text, entries, err
}

// save encodes and writes entries, logging any failure.
func (s *Store) save(entries []snippet.Entry) {
	if err := storage.WriteText(s.path, snippet.Encode(entries)); err != nil {
		slog.Debug("store file write failed", "path", s.path, "error", err)
	}
}

func (s *Store) remove(entries []snippet.Entry, i int) []snippet.Entry {
	if s.removal == RemovalStable {
		return snippet.OrderedRemove(entries, i)
	}
	return snippet.SwapRemove(entries, i)
}

// Entries returns all entries in file order.
func (s *Store) Entries() ([]snippet.Entry, error) {
	_, entries, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return entries, nil
}

// List returns all entries, or only those whose name contains filter.
func (s *Store) List(filter string) ListResult {
	text, entries, err := s.load()
	if text == "" {
		return ListResult{Empty: true}
	}
	if err != nil {
		return ListResult{SyntaxError: true}
	}

	if filter != "" {
		entries = snippet.Filter(entries, filter)
	}

	return ListResult{Entries: entries, Empty: len(entries) == 0}
}

// Add appends a new entry unless the name is already taken.
// A malformed file is replaced by one holding only the new entry.
func (s *Store) Add(name, value string) (AddResult, error) {
	if err := ValidateEntry(name, value); err != nil {
		return AddResult{}, err
	}

	_, entries, err := s.load()
	if err != nil {
		s.save([]snippet.Entry{{Name: name, Value: value}})
		return AddResult{Added: true, Recovered: true}, nil
	}

	if i := snippet.Index(entries, name); i >= 0 {
		existing := entries[i]
		return AddResult{Existing: &existing}, nil
	}

	entries = append(entries, snippet.Entry{Name: name, Value: value})
	s.save(entries)

	return AddResult{Added: true}, nil
}

// Set stores value under name, replacing any existing entry.
// The entry always ends up last in the file.
func (s *Store) Set(name, value string) (SetResult, error) {
	if err := ValidateEntry(name, value); err != nil {
		return SetResult{}, err
	}

	_, entries, err := s.load()
	if err != nil {
		s.save([]snippet.Entry{{Name: name, Value: value}})
		return SetResult{Recovered: true}, nil
	}

	var result SetResult
	if i := snippet.Index(entries, name); i >= 0 {
		entries = s.remove(entries, i)
		result.Replaced = true
	}

	entries = append(entries, snippet.Entry{Name: name, Value: value})
	s.save(entries)

	return result, nil
}

// Remove deletes the first entry named name.
// Nothing happens when the file is empty or malformed.
func (s *Store) Remove(name string) RemoveResult {
	text, entries, err := s.load()
	if text == "" || err != nil {
		return RemoveResult{}
	}

	i := snippet.Index(entries, name)
	if i < 0 {
		return RemoveResult{Missing: true}
	}

	s.save(s.remove(entries, i))
	return RemoveResult{Removed: true}
}

// Find returns the values of every entry named exactly name, in file order.
// A malformed file yields no values and a wrapped snippet.ErrSyntax.
func (s *Store) Find(name string) ([]string, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return snippet.Values(entries, name), nil
}
