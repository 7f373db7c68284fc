package entities

import "time"

// ProbeKind groups probe targets by role
type ProbeKind string

const (
	ProbeKindSource      ProbeKind = "source"
	ProbeKindTranslation ProbeKind = "translation"
	ProbeKindChat        ProbeKind = "chat"
)

// ProbeTarget is an external dependency checked by the connectivity probe
type ProbeTarget struct {
	Name string
	Kind ProbeKind
	URL  string
}

// ProbeResult is the outcome of checking one target
type ProbeResult struct {
	Target    ProbeTarget
	Reachable bool
	Latency   time.Duration
	Error     string
	CheckedAt time.Time
}
