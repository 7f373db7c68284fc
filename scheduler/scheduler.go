// Package scheduler runs the periodic connectivity probe and keeps its results in
// the status store.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler probes dependencies on a fixed interval using dependency injection
type Scheduler struct {
	store     interfaces.StatusStore
	prober    interfaces.Prober
	interval  time.Duration
	scheduler *gocron.Scheduler

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.StatusStore, prober interfaces.Prober, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		store:     store,
		prober:    prober,
		interval:  interval,
		scheduler: gocron.NewScheduler(time.Local),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the probe. The first run happens immediately, in the background.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("invalid probe interval: %s", s.interval)
	}

	_, err := s.scheduler.Every(s.interval).Do(s.runProbe)
	if err != nil {
		logging.Error("Failed to schedule connectivity probe", "error", err)
		return fmt.Errorf("failed to schedule connectivity probe: %w", err)
	}

	s.scheduler.StartAsync()
	logging.Info("Connectivity probe scheduled", "interval", s.interval.String(), "targets", len(s.prober.Targets()))

	return nil
}

// Stop stops the scheduler and aborts a probe in progress
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
}

// runProbe checks every dependency and stores the results
func (s *Scheduler) runProbe() {
	// Prevent concurrent probes
	if !s.store.BeginProbe() {
		logging.Info("Probe already in progress, skipping...")
		return
	}
	defer s.store.EndProbe()

	start := time.Now()
	results := s.prober.Probe(s.ctx)
	if s.ctx.Err() != nil {
		logging.Info("Connectivity probe interrupted")
		return
	}

	s.store.UpdateProbeResults(results)

	reachable := 0
	for _, r := range results {
		if r.Reachable {
			reachable++
		}
	}
	logging.Info("Connectivity probe completed",
		"duration", time.Since(start).String(),
		"reachable", reachable,
		"total", len(results))
}
