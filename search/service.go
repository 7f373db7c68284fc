// Package search wires the query pipeline together: validate, look the medication
// up in every source, translate, and render the reply.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/giygas/medicamentos-bot/aggregator"
	"github.com/giygas/medicamentos-bot/config"
	"github.com/giygas/medicamentos-bot/formatter"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/metrics"
	"github.com/giygas/medicamentos-bot/sources"
	"github.com/giygas/medicamentos-bot/translation"
	"github.com/giygas/medicamentos-bot/validation"
	"github.com/google/uuid"
)

// TranslatorFactory builds the translator used by a single query
type TranslatorFactory func() interfaces.Translator

// FinderFactory builds the finder used by a single query
type FinderFactory func() interfaces.Finder

// Service processes medication queries. It holds no per-query state, so a
// single instance serves concurrent requests.
type Service struct {
	validator      interfaces.QueryValidator
	newTranslator  TranslatorFactory
	newFinder      FinderFactory
	targetLanguage string
	minFieldLength int
	now            func() time.Time
}

// Compile-time check to ensure Service implements Searcher
var _ interfaces.Searcher = (*Service)(nil)

// New creates the service backed by the public APIs
func New(cfg *config.Config, client *http.Client) *Service {
	translationCfg := translation.ConfigFrom(cfg)
	sourcesCfg := sources.ConfigFrom(cfg)

	return NewWithFactories(
		validation.NewQueryValidator(),
		func() interfaces.Translator { return translation.New(translationCfg, client) },
		func() interfaces.Finder { return sources.NewFinder(sourcesCfg, client) },
		cfg.TargetLanguage,
		cfg.MinFieldTranslationLength,
	)
}

// NewWithFactories creates the service with custom collaborators
func NewWithFactories(
	validator interfaces.QueryValidator,
	newTranslator TranslatorFactory,
	newFinder FinderFactory,
	targetLanguage string,
	minFieldLength int,
) *Service {
	return &Service{
		validator:      validator,
		newTranslator:  newTranslator,
		newFinder:      newFinder,
		targetLanguage: targetLanguage,
		minFieldLength: minFieldLength,
		now:            time.Now,
	}
}

// WithClock replaces the clock used in message timestamps
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Check validates query without searching. It returns the cleaned query, or
// the guidance message to show and false.
func (s *Service) Check(query string) (string, string, bool) {
	cleaned, err := s.validator.ValidateQuery(query)
	if err == nil {
		return cleaned, "", true
	}

	switch {
	case errors.Is(err, validation.ErrQueryTooShort):
		return "", formatter.TooShortMessage, false
	case errors.Is(err, validation.ErrQueryTooLong):
		return "", formatter.TooLongMessage, false
	default:
		return "", formatter.InvalidQueryMessage, false
	}
}

// Process runs the whole pipeline for query and always returns a message to display
func (s *Service) Process(ctx context.Context, query string) (message string) {
	start := time.Now()
	queryID := uuid.NewString()
	logger := logging.Logger().With("query_id", queryID)
	outcome := metrics.OutcomeError

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Query pipeline panicked",
				"query", query,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
			message = formatter.SearchError(query)
			outcome = metrics.OutcomeError
		}
		metrics.QueriesTotal.WithLabelValues(outcome).Inc()
		metrics.QueryDuration.Observe(time.Since(start).Seconds())
	}()

	cleaned, guidance, ok := s.Check(query)
	if !ok {
		outcome = metrics.OutcomeInvalid
		logger.Debug("Rejected query", "query", query)
		return guidance
	}

	logger.Info("Processing query", "query", cleaned)

	translator := s.newTranslator()
	rs, err := s.newFinder().Search(ctx, cleaned)
	if err != nil {
		logger.Error("Search failed", "query", cleaned, "error", err)
		return formatter.SearchError(cleaned)
	}

	rs = aggregator.New(translator, s.targetLanguage, s.minFieldLength).TranslateResults(ctx, rs)
	message = formatter.New(translator, s.targetLanguage).WithClock(s.now).Format(ctx, rs, cleaned)

	outcome = metrics.OutcomeResults
	if rs.IsEmpty() {
		outcome = metrics.OutcomeNoResults
	}
	logger.Info("Query processed",
		"query", cleaned,
		"sources", rs.Sources(),
		"translated", rs.AnyTranslated(),
		"duration_ms", time.Since(start).Milliseconds())

	return message
}
