// Package interfaces defines core abstractions for the medication bot
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
)

// Translator defines the contract for best-effort text translation.
// Implementations never fail: on error the input text is returned unchanged.
type Translator interface {
	// Translate returns text translated into targetLang, or text itself
	Translate(ctx context.Context, text, targetLang string) string

	// IsSpanish reports whether text already looks Spanish
	IsSpanish(text string) bool
}

// TranslationBackend is one step of the translation strategy chain
type TranslationBackend interface {
	Name() string
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Source defines the contract for one external medication knowledge source.
// A nil record with a nil error means the source had nothing for the query.
type Source interface {
	Name() string
	Search(ctx context.Context, name string) (*entities.Record, error)
}

// Finder queries every configured source for a medication
type Finder interface {
	Search(ctx context.Context, query string) (*entities.ResultSet, error)
}

// QueryProcessor is the single entry point used by the chat and HTTP boundaries:
// process a query string and return the message to display.
type QueryProcessor interface {
	Process(ctx context.Context, query string) string
}

// Searcher validates a query before processing it
type Searcher interface {
	QueryProcessor
	// Check returns the cleaned query, or the guidance message to answer with when ok is false
	Check(query string) (cleaned string, message string, ok bool)
}

// StatusStore holds the latest connectivity probe results.
// It provides thread-safe access with atomic operations.
type StatusStore interface {
	GetProbeResults() []entities.ProbeResult
	GetLastProbe() time.Time
	UpdateProbeResults(results []entities.ProbeResult)
	BeginProbe() bool
	EndProbe()
	IsProbing() bool

	SetBotConnected(connected bool)
	IsBotConnected() bool
	GetServerStartTime() time.Time
}

// Prober checks connectivity of external dependencies
type Prober interface {
	Targets() []entities.ProbeTarget
	Probe(ctx context.Context) []entities.ProbeResult
}

// Scheduler defines the contract for periodic background jobs.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current status, details and the HTTP status to answer with
	HealthCheck() (status string, details map[string]any, httpStatus int)
}

// QueryValidator checks user-typed medication names before any external call
type QueryValidator interface {
	// ValidateQuery returns the trimmed query, or an error wrapping one of the validation sentinels
	ValidateQuery(query string) (string, error)
}

// HTTPHandler defines the contract for the ops HTTP endpoints
type HTTPHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}
