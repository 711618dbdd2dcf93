package generator

import "context"

// Noop is the fallback generator used when no API key is configured. It
// returns an empty continuation so the completion endpoint still responds
// with a well-formed body.
type Noop struct{}

// NewNoop creates the fallback generator.
func NewNoop() *Noop {
	return &Noop{}
}

// Name implements Generator.
func (n *Noop) Name() string { return "none" }

// Complete implements Generator.
func (n *Noop) Complete(_ context.Context, _ string, _ int) (string, error) {
	return "", nil
}
