// Package sources queries the public medication knowledge APIs and collects
// one record per source that had something to say.
package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/metrics"
	"github.com/hashicorp/go-multierror"
)

// fallbackThreshold is the number of answering sources below which the fallback is consulted
const fallbackThreshold = 2

// Finder queries its sources one after another
type Finder struct {
	primary  []interfaces.Source
	fallback interfaces.Source
}

var _ interfaces.Finder = (*Finder)(nil)

// NewFinder creates a finder over Wikipedia, MedlinePlus and openFDA, with DuckDuckGo as fallback
func NewFinder(cfg Config, client *http.Client) *Finder {
	return NewFinderWithSources(
		[]interfaces.Source{
			NewWikipedia(cfg, client),
			NewMedlinePlus(cfg, client),
			NewOpenFDA(cfg, client),
		},
		NewDuckDuckGo(cfg, client),
	)
}

// NewFinderWithSources creates a finder over arbitrary sources. fallback may be nil.
func NewFinderWithSources(primary []interfaces.Source, fallback interfaces.Source) *Finder {
	return &Finder{primary: primary, fallback: fallback}
}

// Search normalizes query and asks every source. Source failures only make that
// source absent; the returned error is non-nil only when ctx is done.
func (f *Finder) Search(ctx context.Context, query string) (*entities.ResultSet, error) {
	name := NormalizeName(query)
	rs := entities.NewResultSet()
	var errs *multierror.Error

	for _, source := range f.primary {
		if err := f.query(ctx, source, name, rs); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if f.fallback != nil && rs.Len() < fallbackThreshold {
		if err := f.query(ctx, f.fallback, name, rs); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if errs.ErrorOrNil() != nil {
		logging.Warn("Some sources failed", "query", name, "failed", errs.Len(), "errors", errs.Error())
	}
	logging.Info("Source lookup completed", "query", name, "sources", rs.Sources())

	if err := ctx.Err(); err != nil {
		return rs, fmt.Errorf("search %q interrupted: %w", name, err)
	}
	return rs, nil
}

func (f *Finder) query(ctx context.Context, source interfaces.Source, name string, rs *entities.ResultSet) error {
	if ctx.Err() != nil {
		return nil
	}

	start := time.Now()
	record, err := source.Search(ctx, name)
	metrics.SourceRequestDuration.WithLabelValues(source.Name()).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.SourceRequestsTotal.WithLabelValues(source.Name(), metrics.OutcomeError).Inc()
		return fmt.Errorf("%s: %w", source.Name(), err)
	case record == nil:
		metrics.SourceRequestsTotal.WithLabelValues(source.Name(), metrics.OutcomeMiss).Inc()
		logging.Debug("Source had no data", "source", source.Name(), "query", name)
	default:
		metrics.SourceRequestsTotal.WithLabelValues(source.Name(), metrics.OutcomeHit).Inc()
		rs.Add(source.Name(), record)
	}
	return nil
}
