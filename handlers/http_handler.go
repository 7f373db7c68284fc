// Package handlers provides the HTTP handlers of the ops server.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/go-chi/chi/v5"
)

// Compile-time check to ensure HTTPHandlerImpl implements HTTPHandler
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	searcher      interfaces.Searcher
	healthChecker interfaces.HealthChecker
	store         interfaces.StatusStore
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(searcher interfaces.Searcher, healthChecker interfaces.HealthChecker, store interfaces.StatusStore) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		searcher:      searcher,
		healthChecker: healthChecker,
		store:         store,
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status string         `json:"status"`
	Uptime string         `json:"uptime"`
	Data   map[string]any `json:"data"`
	System map[string]any `json:"system"`
}

// SearchResponse is the JSON form of a chat answer
type SearchResponse struct {
	Query   string `json:"query"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err, "payload_type", fmt.Sprintf("%T", payload))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Warn("Failed to write JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	})
}

// formatUptimeHuman formats duration into a human-readable string
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// Index answers with a short plain-text banner
func (h *HTTPHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "medicamentos-bot: medication information bot")
	fmt.Fprintln(w, "GET /search?q=<medicamento>  GET /health  GET /metrics")
}

// HealthCheck returns the probe-based health status
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.healthChecker.HealthCheck()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	RespondWithJSON(w, httpStatus, HealthResponse{
		Status: status,
		Uptime: formatUptimeHuman(time.Since(h.store.GetServerStartTime())),
		Data:   data,
		System: map[string]any{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": int(m.Alloc / 1024 / 1024),
				"sys_mb":   int(m.Sys / 1024 / 1024),
				"num_gc":   m.NumGC,
			},
		},
	})
}

// Search runs a query through the same pipeline as the chat and returns the message.
// The query comes from ?q= or the {query} path parameter.
func (h *HTTPHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if query == "" {
		query = r.URL.Query().Get("q")
	}

	cleaned, message, ok := h.searcher.Check(query)
	if !ok {
		RespondWithError(w, http.StatusBadRequest, message)
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Query:   cleaned,
		Message: h.searcher.Process(r.Context(), cleaned),
	})
}
