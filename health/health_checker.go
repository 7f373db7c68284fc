// Package health probes the external dependencies and reports the bot's health.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/interfaces"
)

// Health statuses
const (
	StatusStarting  = "starting"
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// staleProbes is how many probe intervals may pass before results are considered stale
const staleProbes = 3

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	store         interfaces.StatusStore
	botExpected   bool
	probeInterval time.Duration
}

// NewHealthChecker creates a new health checker with injected dependencies.
// botExpected is true when a Telegram token is configured.
func NewHealthChecker(store interfaces.StatusStore, botExpected bool, probeInterval time.Duration) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		store:         store,
		botExpected:   botExpected,
		probeInterval: probeInterval,
	}
}

// HealthCheck returns the status derived from the last probe and the bot connection.
// Used by /health HTTP endpoint
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	results := h.store.GetProbeResults()
	lastProbe := h.store.GetLastProbe()
	botConnected := h.store.IsBotConnected()

	sourcesUp, sourcesTotal, down := 0, 0, make([]string, 0)
	dependencies := make([]map[string]any, 0, len(results))
	for _, r := range results {
		if r.Target.Kind == entities.ProbeKindSource {
			sourcesTotal++
			if r.Reachable {
				sourcesUp++
			}
		}
		if !r.Reachable {
			down = append(down, r.Target.Name)
		}
		dependencies = append(dependencies, map[string]any{
			"name":       r.Target.Name,
			"kind":       string(r.Target.Kind),
			"reachable":  r.Reachable,
			"latency_ms": r.Latency.Milliseconds(),
		})
	}

	probeAge := time.Since(lastProbe)

	switch {
	case h.botExpected && !botConnected:
		status = StatusUnhealthy
		httpStatus = http.StatusServiceUnavailable

	case lastProbe.IsZero():
		status = StatusStarting
		httpStatus = http.StatusOK

	case sourcesTotal > 0 && sourcesUp == 0:
		status = StatusUnhealthy
		httpStatus = http.StatusServiceUnavailable

	case h.probeInterval > 0 && probeAge > staleProbes*h.probeInterval:
		status = StatusDegraded
		httpStatus = http.StatusServiceUnavailable

	case len(down) > 0:
		status = StatusDegraded
		httpStatus = http.StatusOK

	default:
		status = StatusHealthy
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"bot_enabled":    h.botExpected,
		"bot_connected":  botConnected,
		"is_probing":     h.store.IsProbing(),
		"dependencies":   dependencies,
		"unreachable":    down,
		"uptime_seconds": math.Round(time.Since(h.store.GetServerStartTime()).Seconds()),
	}
	if !lastProbe.IsZero() {
		data["last_probe"] = lastProbe.Format(time.RFC3339)
		data["probe_age_minutes"] = math.Round(probeAge.Minutes()*10) / 10
	}

	return status, data, httpStatus
}
