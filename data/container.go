// Package data provides thread-safe runtime status for the bot: the latest
// connectivity probe results, whether the Telegram client is polling, and start time.
package data

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
)

// Compile-time check to ensure StatusContainer implements StatusStore
var _ interfaces.StatusStore = (*StatusContainer)(nil)

// StatusContainer holds the status with atomic values so readers never block the prober
type StatusContainer struct {
	probeResults    atomic.Value // []entities.ProbeResult
	lastProbe       atomic.Value // time.Time
	probing         atomic.Bool
	botConnected    atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewStatusContainer creates an empty container
func NewStatusContainer() *StatusContainer {
	sc := &StatusContainer{}
	sc.probeResults.Store(make([]entities.ProbeResult, 0))
	sc.lastProbe.Store(time.Time{})
	sc.serverStartTime.Store(time.Time{})
	return sc
}

// GetProbeResults returns a copy of the latest probe results
func (sc *StatusContainer) GetProbeResults() []entities.ProbeResult {
	if v := sc.probeResults.Load(); v != nil {
		if results, ok := v.([]entities.ProbeResult); ok {
			return slices.Clone(results)
		}
	}

	logging.Warn("Probe results are empty or invalid")
	return []entities.ProbeResult{}
}

// GetLastProbe returns when the probe results were last replaced
func (sc *StatusContainer) GetLastProbe() time.Time {
	if v := sc.lastProbe.Load(); v != nil {
		if lastProbe, ok := v.(time.Time); ok {
			return lastProbe
		}
	}

	logging.Warn("Could not get the last probe value")
	return time.Time{}
}

// UpdateProbeResults atomically replaces the probe results
func (sc *StatusContainer) UpdateProbeResults(results []entities.ProbeResult) {
	sc.probeResults.Store(slices.Clone(results))
	sc.lastProbe.Store(time.Now())
}

// BeginProbe marks the start of a probe run.
// Returns true if the probe can proceed, false if another one is in progress
func (sc *StatusContainer) BeginProbe() bool {
	return sc.probing.CompareAndSwap(false, true)
}

// EndProbe marks the end of a probe run
func (sc *StatusContainer) EndProbe() {
	sc.probing.Store(false)
}

// IsProbing returns true if a probe run is in progress
func (sc *StatusContainer) IsProbing() bool {
	return sc.probing.Load()
}

func (sc *StatusContainer) SetBotConnected(connected bool) {
	sc.botConnected.Store(connected)
}

func (sc *StatusContainer) IsBotConnected() bool {
	return sc.botConnected.Load()
}

// SetServerStartTime sets the server start time
func (sc *StatusContainer) SetServerStartTime(startTime time.Time) {
	sc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (sc *StatusContainer) GetServerStartTime() time.Time {
	if v := sc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}
