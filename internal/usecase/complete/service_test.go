package complete

import (
	"context"
	"errors"
	"strings"
	"testing"

	"textlens/internal/stats"
)

type fakeGenerator struct {
	generated string
	err       error

	gotPrompt    string
	gotMaxTokens int
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.gotPrompt = prompt
	f.gotMaxTokens = maxTokens
	return f.generated, f.err
}

func (f *fakeGenerator) Name() string { return "fake" }

func TestComplete(t *testing.T) {
	gen := &fakeGenerator{generated: " and then everyone left."}
	store := stats.NewStore()
	svc := &Service{Generator: gen, Stats: store}

	got, err := svc.Complete(context.Background(), "The party was winding down", 30)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if got.Prompt != "The party was winding down" {
		t.Errorf("prompt = %q", got.Prompt)
	}
	if got.GeneratedText != " and then everyone left." {
		t.Errorf("generated_text = %q", got.GeneratedText)
	}
	if got.FullText != "The party was winding down and then everyone left." {
		t.Errorf("full_text = %q", got.FullText)
	}
	if gen.gotMaxTokens != 30 {
		t.Errorf("max tokens = %d, want 30", gen.gotMaxTokens)
	}
	if store.Snapshot().SuggestionsMade != 1 {
		t.Errorf("suggestions_made = %d, want 1", store.Snapshot().SuggestionsMade)
	}
}

func TestCompleteTruncatesPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc := &Service{Generator: gen, Stats: stats.NewStore()}

	long := strings.Repeat("abcde ", 50)
	if _, err := svc.Complete(context.Background(), long, 10); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if n := len([]rune(gen.gotPrompt)); n != 100 {
		t.Errorf("prompt length = %d runes, want 100", n)
	}
	if !strings.HasSuffix(long, gen.gotPrompt) {
		t.Error("prompt must be the tail of the input")
	}
}

func TestCompleteDefaultMaxLength(t *testing.T) {
	gen := &fakeGenerator{}
	svc := &Service{Generator: gen, Stats: stats.NewStore()}

	if _, err := svc.Complete(context.Background(), "hello", 0); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if gen.gotMaxTokens != DefaultMaxLength {
		t.Errorf("max tokens = %d, want %d", gen.gotMaxTokens, DefaultMaxLength)
	}
}

func TestCompleteGeneratorFailure(t *testing.T) {
	store := stats.NewStore()
	svc := &Service{
		Generator: &fakeGenerator{err: errors.New("model offline")},
		Stats:     store,
	}

	if _, err := svc.Complete(context.Background(), "hello", 10); err == nil {
		t.Fatal("expected an error")
	}
	if store.Snapshot().SuggestionsMade != 0 {
		t.Error("failed completions must not count as suggestions")
	}
}

func TestCompleteMultibytePrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc := &Service{Generator: gen, Stats: stats.NewStore()}

	long := strings.Repeat("日本語テキスト", 30)
	if _, err := svc.Complete(context.Background(), long, 10); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if n := len([]rune(gen.gotPrompt)); n != 100 {
		t.Errorf("prompt length = %d runes, want 100", n)
	}
}
