package logging

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func newCapturingLogger() (*slog.Logger, *strings.Builder) {
	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, &out
}

func TestLoggingMiddlewareSkipsProbes(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/metrics"} {
		out.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if out.Len() != 0 {
			t.Errorf("Expected no logs for %s, got: %s", path, out.String())
		}
	}
}

func TestLoggingMiddlewareLogsRequest(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/search?q=aspirin", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-42"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	logs := out.String()
	for _, want := range []string{"request_id=req-42", "path=/search", "search_query=aspirin", "status_code=418", "bytes_written=5"} {
		if !strings.Contains(logs, want) {
			t.Errorf("Expected log to contain %q, got: %s", want, logs)
		}
	}
}

func TestLoggingMiddlewareUnknownRequestID(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(out.String(), "request_id=unknown") {
		t.Errorf("Expected unknown request id, got: %s", out.String())
	}
}

func TestLoggingMiddlewareSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"query param", "/search?q=ibuprofen", "search_query=ibuprofen"},
		{"path param", "/search/omeprazole", "search_query=omeprazole"},
		{"escaped query", "/search?q=acetaminophen%20%26%20codeine", `search_query="acetaminophen & codeine"`},
		{"empty query", "/search", `search_query=""`},
		{"long query", "/search?q=" + strings.Repeat("a", 150), "search_query=" + strings.Repeat("a", 100) + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out := newCapturingLogger()
			router := chi.NewRouter()
			router.Use(LoggingMiddleware(logger))
			ok := func(w http.ResponseWriter, r *http.Request) {}
			router.Get("/search", ok)
			router.Get("/search/{query}", ok)

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("Expected log to contain %q, got: %s", tt.want, out.String())
			}
		})
	}
}

func TestLoggingMiddlewareOmitsSearchQueryElsewhere(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?q=aspirin", nil))

	if strings.Contains(out.String(), "search_query") {
		t.Errorf("Expected no search_query outside /search, got: %s", out.String())
	}
}

func TestLoggingMiddlewareServerErrorLevel(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?q=aspirin", nil))

	if !strings.Contains(out.String(), "level=WARN") {
		t.Errorf("Expected warn level for a 5xx, got: %s", out.String())
	}
}
