// Package translation provides best-effort English to Spanish translation through an
// ordered chain of backends: MyMemory, LibreTranslate mirrors and a static medical glossary.
package translation

import (
	"context"
	"net/http"

	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/metrics"
	"github.com/giygas/medicamentos-bot/textutil"
)

// Translator tries each backend in order and keeps the first acceptable result
type Translator struct {
	cfg      Config
	backends []interfaces.TranslationBackend
}

var _ interfaces.Translator = (*Translator)(nil)

// New creates a translator with the default backend chain
func New(cfg Config, client *http.Client) *Translator {
	cfg = cfg.withDefaults()
	return NewWithBackends(cfg,
		NewMyMemory(cfg.MyMemoryURL, cfg.MyMemoryEmail, cfg.UserAgent, cfg.Timeout, client),
		NewLibreTranslate(cfg.Mirrors, cfg.UserAgent, cfg.Timeout, client),
		NewGlossary(),
	)
}

// NewWithBackends creates a translator with a custom backend chain
func NewWithBackends(cfg Config, backends ...interfaces.TranslationBackend) *Translator {
	return &Translator{
		cfg:      cfg.withDefaults(),
		backends: backends,
	}
}

// Translate returns text in targetLang, or text unchanged when it is too short,
// already Spanish, or no backend produced an acceptable result.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) string {
	if textutil.Len(text) < t.cfg.MinTextLength || t.IsSpanish(text) {
		return text
	}
	if targetLang == "" {
		targetLang = t.cfg.TargetLanguage
	}

	for _, backend := range t.backends {
		translated, err := backend.Translate(ctx, text, t.cfg.SourceLanguage, targetLang)
		if err != nil {
			logging.Debug("Translation attempt failed", "backend", backend.Name(), "error", err)
			metrics.TranslationAttemptsTotal.WithLabelValues(backend.Name(), metrics.OutcomeError).Inc()
			continue
		}
		if textutil.Len(translated) <= t.cfg.MinAcceptedLength {
			metrics.TranslationAttemptsTotal.WithLabelValues(backend.Name(), metrics.OutcomeRejected).Inc()
			continue
		}
		metrics.TranslationAttemptsTotal.WithLabelValues(backend.Name(), metrics.OutcomeAccepted).Inc()
		return translated
	}

	logging.Warn("All translation backends failed, keeping original text", "length", textutil.Len(text))
	return text
}

// IsSpanish reports whether text already looks Spanish
func (t *Translator) IsSpanish(text string) bool {
	return IsSpanish(text, t.cfg.SpanishThreshold)
}
