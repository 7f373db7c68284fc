package logging

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxLoggedQuery bounds the search text copied into a log line
const maxLoggedQuery = 100

// LoggingMiddleware logs one line per HTTP request. Search requests carry the
// searched text under "search_query" whether it came as ?q= or as /search/{query}.
// Server errors are logged at warn level.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Probes and scrapes are too frequent to be worth a line each
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			requestID := middleware.GetReqID(r.Context())
			if requestID == "" {
				requestID = "unknown"
			}

			attrs := []any{
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
			}
			if q, ok := searchQuery(r); ok {
				attrs = append(attrs, "search_query", q)
			}
			attrs = append(attrs,
				"remote_addr", r.RemoteAddr,
				"status_code", ww.statusCode,
				"bytes_written", ww.bytesWritten,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			level := slog.LevelInfo
			if ww.statusCode >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "HTTP request", attrs...)
		})
	}
}

// searchQuery returns the text of a /search request. The path parameter is only
// known once the router has matched, so it must be read after the handler ran.
func searchQuery(r *http.Request) (string, bool) {
	if !strings.HasPrefix(r.URL.Path, "/search") {
		return "", false
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		q = chi.URLParam(r, "query")
	}
	q = strings.TrimSpace(q)
	if runes := []rune(q); len(runes) > maxLoggedQuery {
		q = string(runes[:maxLoggedQuery])
	}
	return q, true
}

// responseWriterWrapper captures status code and bytes written
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.bytesWritten += n
	return n, err
}
