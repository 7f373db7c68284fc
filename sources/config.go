package sources

import (
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/config"
)

// Public endpoints
const (
	DefaultWikipediaURL   = "https://{lang}.wikipedia.org"
	DefaultMedlinePlusURL = "https://medlineplus.gov/medlineplus-rest/v2"
	DefaultOpenFDAURL     = "https://api.fda.gov/drug/label.json"
	DefaultDuckDuckGoURL  = "https://api.duckduckgo.com/"

	DefaultTimeout = 8 * time.Second
)

// Config parameterizes the sources. Base URLs are overridable for tests.
type Config struct {
	Timeout         time.Duration // per request
	UserAgent       string
	TargetLanguage  string
	DefaultLanguage string

	WikipediaURL   string // "{lang}" is replaced by the edition language
	MedlinePlusURL string
	OpenFDAURL     string
	DuckDuckGoURL  string
}

// ConfigFrom builds the sources configuration from the application configuration
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Timeout:         cfg.SourceTimeout,
		UserAgent:       cfg.UserAgent,
		TargetLanguage:  cfg.TargetLanguage,
		DefaultLanguage: cfg.DefaultLanguage,
	}
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TargetLanguage == "" {
		c.TargetLanguage = "es"
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.WikipediaURL == "" {
		c.WikipediaURL = DefaultWikipediaURL
	}
	if c.MedlinePlusURL == "" {
		c.MedlinePlusURL = DefaultMedlinePlusURL
	}
	if c.OpenFDAURL == "" {
		c.OpenFDAURL = DefaultOpenFDAURL
	}
	if c.DuckDuckGoURL == "" {
		c.DuckDuckGoURL = DefaultDuckDuckGoURL
	}
	return c
}

// wikipediaBase returns the site root of a Wikipedia edition
func (c Config) wikipediaBase(lang string) string {
	return strings.TrimRight(strings.ReplaceAll(c.WikipediaURL, "{lang}", lang), "/")
}

// Endpoints lists one URL per source, used by the connectivity probe
func (c Config) Endpoints() map[string]string {
	c = c.withDefaults()
	return map[string]string{
		"Wikipedia":   c.wikipediaBase(c.TargetLanguage) + "/w/api.php",
		"MedlinePlus": c.MedlinePlusURL,
		"FDA":         c.OpenFDAURL,
		"DuckDuckGo":  c.DuckDuckGoURL,
	}
}
