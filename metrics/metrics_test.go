package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/search/{query}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	before := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues(http.MethodGet, "/search/{query}", "202"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search/aspirin", nil))

	after := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues(http.MethodGet, "/search/{query}", "202"))
	if after-before != 1 {
		t.Errorf("Expected counter to increase by 1, got %v", after-before)
	}
	if got := testutil.ToFloat64(HTTPRequestInFlight); got != 0 {
		t.Errorf("Expected no in-flight requests after completion, got %v", got)
	}
}

func TestPipelineCollectorsAreUsable(t *testing.T) {
	before := testutil.ToFloat64(SourceRequestsTotal.WithLabelValues("FDA", OutcomeHit))
	SourceRequestsTotal.WithLabelValues("FDA", OutcomeHit).Inc()

	if got := testutil.ToFloat64(SourceRequestsTotal.WithLabelValues("FDA", OutcomeHit)); got != before+1 {
		t.Errorf("Expected %v, got %v", before+1, got)
	}

	DependencyUp.WithLabelValues("Wikipedia", "source").Set(1)
	if got := testutil.ToFloat64(DependencyUp.WithLabelValues("Wikipedia", "source")); got != 1 {
		t.Errorf("Expected gauge 1, got %v", got)
	}
}
