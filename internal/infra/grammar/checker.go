// Package grammar provides grammar-checking implementations. It includes an
// HTTP client for LanguageTool-compatible APIs and a built-in rule-based
// checker used when no external endpoint is configured.
package grammar

import "context"

// Match is one grammar finding over the submitted text. Offset and Length are
// rune positions so they line up with how clients index the original string.
type Match struct {
	// Offset is the rune offset of the error in the text.
	Offset int

	// Length is the rune length of the erroneous span.
	Length int

	// Replacements are suggested corrections, best first.
	Replacements []string

	// RuleIssueType categorizes the finding (misspelling, grammar, style, ...).
	RuleIssueType string

	// Message is a human-readable description of the finding.
	Message string
}

// Checker finds grammar issues in text.
type Checker interface {
	// Check returns all matches for the text. An empty slice means the text
	// is clean; an error means the check itself could not run.
	Check(ctx context.Context, text string) ([]Match, error)

	// Name identifies the backend for health reporting.
	Name() string
}
