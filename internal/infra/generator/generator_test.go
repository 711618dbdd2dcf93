package generator

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNoopComplete(t *testing.T) {
	g := NewNoop()
	got, err := g.Complete(context.Background(), "Once upon a time", 50)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "" {
		t.Errorf("Complete() = %q, want empty", got)
	}
	if g.Name() != "none" {
		t.Errorf("Name() = %q, want none", g.Name())
	}
}

func TestDefaultConfigs(t *testing.T) {
	cc := DefaultClaudeConfig()
	if cc.Model == "" {
		t.Error("claude model should have a default")
	}
	if cc.Timeout <= 0 {
		t.Error("claude timeout should be positive")
	}

	oc := DefaultOpenAIConfig()
	if oc.Model == "" {
		t.Error("openai model should have a default")
	}
	if oc.Timeout != 60*time.Second {
		t.Errorf("openai timeout = %v, want 60s", oc.Timeout)
	}
}

func TestContinuePromptEmbedsText(t *testing.T) {
	if !strings.Contains(continuePrompt, "%s") {
		t.Error("continuation prompt must have a text placeholder")
	}
}
