package suggest

import (
	"strings"
	"testing"
)

// thirtyWordSentence has more than 25 words so it trips the long-sentence scan.
const thirtyWordSentence = "The committee decided after considerable deliberation that the proposal should be returned to the original authors for further revision because several important budgetary questions remained entirely unanswered at the final meeting."

func TestBuild_RepeatedWords(t *testing.T) {
	b := Build("The cat cat sat on on the mat")

	if len(b.RepeatedWords) < 2 {
		t.Fatalf("RepeatedWords = %d, want at least 2", len(b.RepeatedWords))
	}
	seen := map[string]bool{}
	for _, r := range b.RepeatedWords {
		seen[r.Word] = true
	}
	if !seen["cat"] || !seen["on"] {
		t.Errorf("repeated words = %v, want cat and on", seen)
	}
}

func TestBuild_GeneralAdvice(t *testing.T) {
	t.Run("short text suggests expanding", func(t *testing.T) {
		b := Build("A tiny note.")
		if !contains(b.General, adviceExpand) {
			t.Errorf("General = %v, want expand advice", b.General)
		}
		if contains(b.General, adviceOrganize) {
			t.Error("organize advice must not fire for short text")
		}
	})

	t.Run("many long sentences suggest shortening", func(t *testing.T) {
		text := strings.Repeat(thirtyWordSentence+" ", 30)
		b := Build(text)

		if len(b.LongSentences) <= 2 {
			t.Fatalf("LongSentences = %d, want > 2", len(b.LongSentences))
		}
		if !contains(b.General, adviceShorten) {
			t.Errorf("General = %v, want shorten advice", b.General)
		}
		// 900 words: neither the <100 nor the >1000 advice applies.
		if contains(b.General, adviceExpand) && contains(b.General, adviceOrganize) {
			t.Error("expand and organize advices are mutually exclusive")
		}
	})

	t.Run("lowercase-styled text segments the same way", func(t *testing.T) {
		text := strings.Repeat(strings.ToLower(thirtyWordSentence)+" ", 30)
		b := Build(text)

		if len(b.LongSentences) != 30 {
			t.Fatalf("LongSentences = %d, want 30", len(b.LongSentences))
		}
		if !contains(b.General, adviceShorten) {
			t.Errorf("General = %v, want shorten advice", b.General)
		}
	})

	t.Run("very long text suggests organizing", func(t *testing.T) {
		text := strings.Repeat("Short words fill space here. ", 250) // ~1250 words
		b := Build(text)
		if !contains(b.General, adviceOrganize) {
			t.Errorf("General = %v, want organize advice", b.General)
		}
		if contains(b.General, adviceExpand) {
			t.Error("expand advice must not fire for long text")
		}
	})

	t.Run("passive voice advice needs more than two occurrences", func(t *testing.T) {
		two := "It was done before. It was said twice."
		if contains(Build(two).General, adviceActive) {
			t.Error("active-voice advice fired at exactly 2 occurrences")
		}
		three := "It was done before. It was said twice. It was made again."
		if !contains(Build(three).General, adviceActive) {
			t.Error("active-voice advice missing at 3 occurrences")
		}
	})
}

func TestBuild_EmptyListsNotNil(t *testing.T) {
	b := Build("Fine weather today, nothing to flag in this calm and perfectly ordinary little sentence at all really.")
	if b.LongSentences == nil || b.PassiveVoice == nil || b.RepeatedWords == nil || b.General == nil {
		t.Errorf("Bundle slices must be non-nil for JSON arrays: %+v", b)
	}
}

func TestCount(t *testing.T) {
	b := Build("The cat cat sat on on the mat")
	want := len(b.LongSentences) + len(b.PassiveVoice) + len(b.RepeatedWords) + len(b.General)
	if got := b.Count(); got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
	if b.Count() < 3 {
		// two repeats plus the short-text advice
		t.Errorf("Count() = %d, want at least 3", b.Count())
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
