package translation

import (
	"time"

	"github.com/giygas/medicamentos-bot/config"
)

// Config parameterizes a Translator. Zero values fall back to the defaults below.
type Config struct {
	SourceLanguage string
	TargetLanguage string
	Timeout        time.Duration // per attempt
	UserAgent      string

	SpanishThreshold  float64 // stop-word ratio above which text counts as Spanish
	MinTextLength     int     // shorter inputs are returned unchanged
	MinAcceptedLength int     // results must be longer than this to be accepted

	MyMemoryURL   string
	MyMemoryEmail string
	Mirrors       []string // LibreTranslate base URLs, tried in order
}

const (
	DefaultMyMemoryURL       = "https://api.mymemory.translated.net"
	DefaultSpanishThreshold  = 0.15
	DefaultMinTextLength     = 10
	DefaultMinAcceptedLength = 10
	DefaultTimeout           = 10 * time.Second

	// maxQueryLength bounds what is sent to remote services
	maxQueryLength = 1000
)

// ConfigFrom builds a translator configuration from the application configuration
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		SourceLanguage:    cfg.DefaultLanguage,
		TargetLanguage:    cfg.TargetLanguage,
		Timeout:           cfg.TranslateTimeout,
		UserAgent:         cfg.UserAgent,
		SpanishThreshold:  cfg.SpanishThreshold,
		MinTextLength:     cfg.MinTranslationLength,
		MinAcceptedLength: cfg.MinTranslationLength,
		MyMemoryURL:       DefaultMyMemoryURL,
		MyMemoryEmail:     cfg.MyMemoryEmail,
		Mirrors:           cfg.LibreTranslateMirrors,
	}
}

func (c Config) withDefaults() Config {
	if c.SourceLanguage == "" {
		c.SourceLanguage = "en"
	}
	if c.TargetLanguage == "" {
		c.TargetLanguage = "es"
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.SpanishThreshold <= 0 {
		c.SpanishThreshold = DefaultSpanishThreshold
	}
	if c.MinTextLength <= 0 {
		c.MinTextLength = DefaultMinTextLength
	}
	if c.MinAcceptedLength <= 0 {
		c.MinAcceptedLength = DefaultMinAcceptedLength
	}
	if c.MyMemoryURL == "" {
		c.MyMemoryURL = DefaultMyMemoryURL
	}
	if c.Mirrors == nil {
		c.Mirrors = config.DefaultLibreTranslateMirrors
	}
	return c
}
