package stats

import (
	"sync"
	"testing"
)

func TestStore_RecordAndSnapshot(t *testing.T) {
	s := NewStore()

	s.Record(10, 2, 3)
	s.Record(5, 0, 1)

	got := s.Snapshot()
	if got.WordsChecked != 15 {
		t.Errorf("WordsChecked = %d, want 15", got.WordsChecked)
	}
	if got.GrammarErrorsFound != 2 {
		t.Errorf("GrammarErrorsFound = %d, want 2", got.GrammarErrorsFound)
	}
	if got.SuggestionsMade != 4 {
		t.Errorf("SuggestionsMade = %d, want 4", got.SuggestionsMade)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Record(100, 5, 9)

	s.Reset()

	got := s.Snapshot()
	if got != (Snapshot{}) {
		t.Errorf("Snapshot after Reset = %+v, want all zero", got)
	}
}

func TestStore_MonotonicIncrease(t *testing.T) {
	s := NewStore()

	prev := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Record(7, 1, 2)
		cur := s.Snapshot()
		if cur.WordsChecked <= prev.WordsChecked ||
			cur.GrammarErrorsFound <= prev.GrammarErrorsFound ||
			cur.SuggestionsMade <= prev.SuggestionsMade {
			t.Fatalf("counters not strictly increasing: prev=%+v cur=%+v", prev, cur)
		}
		prev = cur
	}
}

func TestStore_ConcurrentRecords(t *testing.T) {
	s := NewStore()

	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Record(1, 1, 1)
			}
		}()
	}
	wg.Wait()

	got := s.Snapshot()
	want := int64(goroutines * perGoroutine)
	if got.WordsChecked != want || got.GrammarErrorsFound != want || got.SuggestionsMade != want {
		t.Errorf("Snapshot = %+v, want all counters = %d (no lost updates)", got, want)
	}
}

func TestStore_NegativeDeltasIgnored(t *testing.T) {
	s := NewStore()
	s.Record(10, 0, 0)
	s.Record(-5, -1, -1)

	got := s.Snapshot()
	if got.WordsChecked != 10 || got.GrammarErrorsFound != 0 || got.SuggestionsMade != 0 {
		t.Errorf("Snapshot = %+v, negative deltas must be ignored", got)
	}
}
