// Package middleware provides cross-cutting HTTP middleware for the API.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"textlens/pkg/config"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins. The single entry
	// "*" allows every origin, which is the default for this public API.
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached, in seconds.
	MaxAge int
}

// LoadCORSConfig builds the CORS policy from the CORS_ALLOWED_ORIGINS
// environment variable, a comma-separated origin list. Unset means all
// origins are allowed.
func LoadCORSConfig() CORSConfig {
	origins := config.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})

	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

func (c CORSConfig) allows(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS returns middleware that handles cross-origin requests. Preflight
// OPTIONS requests are answered with 204 without reaching the next handler.
// Disallowed origins get no CORS headers; the browser blocks the response.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Same-origin request, nothing to do.
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.allows(origin) {
				slog.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
