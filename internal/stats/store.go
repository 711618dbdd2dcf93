// Package stats maintains the process-wide usage counters reported by every
// response: words checked, grammar errors found, and suggestions made.
// Counters are atomic so concurrent requests never lose updates, and they can
// be reset to zero on demand. Nothing is persisted across restarts.
package stats

import "sync/atomic"

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	WordsChecked       int64 `json:"words_checked"`
	GrammarErrorsFound int64 `json:"grammar_errors_found"`
	SuggestionsMade    int64 `json:"suggestions_made"`
}

// Store holds the counters. The zero value is ready to use.
type Store struct {
	wordsChecked       atomic.Int64
	grammarErrorsFound atomic.Int64
	suggestionsMade    atomic.Int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Record adds the given deltas to the counters. Handlers call this once per
// successful request; failed requests record nothing. The Prometheus mirror
// is updated alongside so scrapes and API responses agree.
func (s *Store) Record(words, errors, suggestions int64) {
	if words > 0 {
		s.wordsChecked.Add(words)
	}
	if errors > 0 {
		s.grammarErrorsFound.Add(errors)
	}
	if suggestions > 0 {
		s.suggestionsMade.Add(suggestions)
	}
	recordToPrometheus(words, errors, suggestions)
}

// Snapshot returns the current counter values.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		WordsChecked:       s.wordsChecked.Load(),
		GrammarErrorsFound: s.grammarErrorsFound.Load(),
		SuggestionsMade:    s.suggestionsMade.Load(),
	}
}

// Reset zeroes all counters. The Prometheus counters are cumulative by
// contract and are left untouched.
func (s *Store) Reset() {
	s.wordsChecked.Store(0)
	s.grammarErrorsFound.Store(0)
	s.suggestionsMade.Store(0)
}
