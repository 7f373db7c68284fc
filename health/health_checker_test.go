package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giygas/medicamentos-bot/config"
	"github.com/giygas/medicamentos-bot/data"
	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func source(name string, reachable bool) entities.ProbeResult {
	return entities.ProbeResult{
		Target:    entities.ProbeTarget{Name: name, Kind: entities.ProbeKindSource},
		Reachable: reachable,
	}
}

func translator(name string, reachable bool) entities.ProbeResult {
	return entities.ProbeResult{
		Target:    entities.ProbeTarget{Name: name, Kind: entities.ProbeKindTranslation},
		Reachable: reachable,
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		results      []entities.ProbeResult
		probed       bool
		botExpected  bool
		botConnected bool
		wantStatus   string
		wantHTTP     int
	}{
		{
			name:       "no probe yet",
			wantStatus: StatusStarting,
			wantHTTP:   http.StatusOK,
		},
		{
			name:       "all reachable",
			results:    []entities.ProbeResult{source("Wikipedia", true), translator("MyMemory", true)},
			probed:     true,
			wantStatus: StatusHealthy,
			wantHTTP:   http.StatusOK,
		},
		{
			name:       "one translator down",
			results:    []entities.ProbeResult{source("Wikipedia", true), translator("MyMemory", false)},
			probed:     true,
			wantStatus: StatusDegraded,
			wantHTTP:   http.StatusOK,
		},
		{
			name:       "every source down",
			results:    []entities.ProbeResult{source("Wikipedia", false), source("FDA", false), translator("MyMemory", true)},
			probed:     true,
			wantStatus: StatusUnhealthy,
			wantHTTP:   http.StatusServiceUnavailable,
		},
		{
			name:        "bot not connected",
			results:     []entities.ProbeResult{source("Wikipedia", true)},
			probed:      true,
			botExpected: true,
			wantStatus:  StatusUnhealthy,
			wantHTTP:    http.StatusServiceUnavailable,
		},
		{
			name:         "bot connected",
			results:      []entities.ProbeResult{source("Wikipedia", true)},
			probed:       true,
			botExpected:  true,
			botConnected: true,
			wantStatus:   StatusHealthy,
			wantHTTP:     http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := data.NewStatusContainer()
			store.SetServerStartTime(time.Now().Add(-time.Minute))
			store.SetBotConnected(tt.botConnected)
			if tt.probed {
				store.UpdateProbeResults(tt.results)
			}

			status, details, httpStatus := NewHealthChecker(store, tt.botExpected, 15*time.Minute).HealthCheck()
			if status != tt.wantStatus || httpStatus != tt.wantHTTP {
				t.Errorf("Expected %s/%d, got %s/%d", tt.wantStatus, tt.wantHTTP, status, httpStatus)
			}
			if _, ok := details["last_probe"]; ok != tt.probed {
				t.Errorf("Expected last_probe present=%v, details %v", tt.probed, details)
			}
			if deps := details["dependencies"].([]map[string]any); len(deps) != len(tt.results) {
				t.Errorf("Expected %d dependencies, got %d", len(tt.results), len(deps))
			}
		})
	}
}

func TestProbe(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Expected HEAD, got %s", r.Method)
		}
		// API roots often reject HEAD; still reachable
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer up.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	targets := []entities.ProbeTarget{
		{Name: "probe-up", Kind: entities.ProbeKindSource, URL: up.URL},
		{Name: "probe-down", Kind: entities.ProbeKindTranslation, URL: downURL},
	}
	client := fetch.New(fetch.NewHTTPClient(), "test-agent", time.Second)

	results := NewProber(targets, client).Probe(context.Background())
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if !results[0].Reachable || results[0].CheckedAt.IsZero() {
		t.Errorf("Expected first target reachable, got %+v", results[0])
	}
	if results[1].Reachable || results[1].Error == "" {
		t.Errorf("Expected second target unreachable with error, got %+v", results[1])
	}

	if got := testutil.ToFloat64(metrics.DependencyUp.WithLabelValues("probe-up", "source")); got != 1 {
		t.Errorf("Expected probe-up gauge 1, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.DependencyUp.WithLabelValues("probe-down", "translation")); got != 0 {
		t.Errorf("Expected probe-down gauge 0, got %v", got)
	}
}

func TestTargetsFrom(t *testing.T) {
	cfg := &config.Config{
		TargetLanguage:        "es",
		DefaultLanguage:       "en",
		LibreTranslateMirrors: []string{"https://libre.example"},
	}

	targets := TargetsFrom(cfg)
	if len(targets) != 6 {
		t.Fatalf("Expected 4 sources and 2 translators, got %+v", targets)
	}
	if targets[0].Name != "DuckDuckGo" || targets[0].Kind != entities.ProbeKindSource {
		t.Errorf("Expected sources sorted by name first, got %+v", targets[0])
	}
	if targets[5].Name != "LibreTranslate libre.example" {
		t.Errorf("Unexpected mirror target %+v", targets[5])
	}

	cfg.TelegramToken = "123:abc"
	targets = TargetsFrom(cfg)
	if last := targets[len(targets)-1]; last.Kind != entities.ProbeKindChat || last.URL != TelegramAPIURL {
		t.Errorf("Expected Telegram target when a token is set, got %+v", last)
	}
}
