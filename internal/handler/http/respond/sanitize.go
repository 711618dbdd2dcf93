package respond

import (
	"regexp"
)

// API key patterns. The Anthropic pattern must be applied first since it is
// the more specific of the two.
var (
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
)

// SanitizeError returns the error message with API keys masked. Backend
// clients embed credentials in request errors, so raw messages must never
// reach logs or responses unmasked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")

	return msg
}
