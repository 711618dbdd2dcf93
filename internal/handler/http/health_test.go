package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type namedBackend string

func (n namedBackend) Name() string { return string(n) }

func TestHealthHandler(t *testing.T) {
	h := &HealthHandler{
		Version:   "1.0.0",
		Grammar:   namedBackend("builtin"),
		Sentiment: namedBackend("lexicon"),
		Generator: namedBackend("none"),
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
	if body.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", body.Version)
	}

	for _, component := range []string{"grammar_check", "sentiment_analysis", "text_generation"} {
		if body.Components[component] != "active" {
			t.Errorf("components[%s] = %q, want active", component, body.Components[component])
		}
	}
	if body.Backends["grammar_check"] != "builtin" {
		t.Errorf("backends[grammar_check] = %q, want builtin", body.Backends["grammar_check"])
	}
}
