package health

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/config"
	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/metrics"
	"github.com/giygas/medicamentos-bot/sources"
	"github.com/giygas/medicamentos-bot/translation"
)

// TelegramAPIURL is probed when a bot token is configured
const TelegramAPIURL = "https://api.telegram.org"

// Compile-time check to ensure Prober implements the interface
var _ interfaces.Prober = (*Prober)(nil)

// Prober checks that every external dependency answers HTTP
type Prober struct {
	targets []entities.ProbeTarget
	client  *fetch.Client
}

// NewProber creates a prober for the given targets
func NewProber(targets []entities.ProbeTarget, client *fetch.Client) *Prober {
	return &Prober{targets: targets, client: client}
}

// TargetsFrom lists the dependencies used by the configured pipeline
func TargetsFrom(cfg *config.Config) []entities.ProbeTarget {
	endpoints := sources.ConfigFrom(cfg).Endpoints()
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	slices.Sort(names)

	targets := make([]entities.ProbeTarget, 0, len(names)+len(cfg.LibreTranslateMirrors)+2)
	for _, name := range names {
		targets = append(targets, entities.ProbeTarget{Name: name, Kind: entities.ProbeKindSource, URL: endpoints[name]})
	}

	tcfg := translation.ConfigFrom(cfg)
	targets = append(targets, entities.ProbeTarget{Name: "MyMemory", Kind: entities.ProbeKindTranslation, URL: tcfg.MyMemoryURL})
	for _, mirror := range tcfg.Mirrors {
		host := strings.TrimPrefix(strings.TrimPrefix(mirror, "https://"), "http://")
		targets = append(targets, entities.ProbeTarget{Name: "LibreTranslate " + host, Kind: entities.ProbeKindTranslation, URL: mirror})
	}

	if cfg.BotEnabled() {
		targets = append(targets, entities.ProbeTarget{Name: "Telegram", Kind: entities.ProbeKindChat, URL: TelegramAPIURL})
	}
	return targets
}

// Targets returns the probed dependencies
func (p *Prober) Targets() []entities.ProbeTarget {
	return slices.Clone(p.targets)
}

// Probe checks each target in turn. Any HTTP answer counts as reachable, since the
// probe uses HEAD against API roots that may reject it.
func (p *Prober) Probe(ctx context.Context) []entities.ProbeResult {
	results := make([]entities.ProbeResult, 0, len(p.targets))

	for _, target := range p.targets {
		start := time.Now()
		result := entities.ProbeResult{Target: target}

		code, err := p.client.Status(ctx, target.URL)
		result.Latency = time.Since(start)
		result.CheckedAt = time.Now()
		if err != nil {
			result.Error = err.Error()
			logging.Warn("Dependency unreachable", "name", target.Name, "url", target.URL, "error", err)
		} else {
			result.Reachable = true
			logging.Debug("Dependency reachable", "name", target.Name, "status", code, "latency", result.Latency)
		}

		up := 0.0
		if result.Reachable {
			up = 1
		}
		metrics.DependencyUp.WithLabelValues(target.Name, string(target.Kind)).Set(up)

		results = append(results, result)
	}

	return results
}
