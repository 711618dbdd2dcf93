// Package textapi provides HTTP handlers for the text analysis endpoints:
// grammar checking, analysis, improvement suggestions, completion, and
// usage statistics.
package textapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"textlens/internal/handler/http/respond"
)

// textRequest is the common request body. Text is a pointer so an absent
// field can be told apart from an empty string: only the former is an error.
type textRequest struct {
	Text      *string `json:"text"`
	MaxLength int     `json:"max_length"`
}

var errNoText = errors.New("No text provided")

// decodeTextRequest parses the request body and validates that a text field
// is present. On failure it writes the error response and returns false.
func decodeTextRequest(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errNoText)
		return textRequest{}, false
	}
	if req.Text == nil {
		respond.Error(w, http.StatusBadRequest, errNoText)
		return textRequest{}, false
	}
	return req, true
}
