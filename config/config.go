// Package config has the configuration for the bot, read from environment variables
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment names
const (
	EnvDevelopment = "dev"
	EnvStaging     = "staging"
	EnvProduction  = "prod"
	EnvTest        = "test"
)

// Default LibreTranslate mirrors, tried in order
var DefaultLibreTranslateMirrors = []string{
	"https://libretranslate.com",
	"https://translate.argosopentech.com",
	"https://libretranslate.de",
}

// Config holds all application configuration
type Config struct {
	Port              string
	Address           string
	Env               string
	LogLevel          string
	LogDir            string
	LogRetentionWeeks int   // Number of weeks to keep log files
	MaxLogFileSize    int64 // Maximum log file size in bytes

	TelegramToken     string
	BotMaxRetries     int
	BotRetryBaseDelay time.Duration

	TargetLanguage  string
	DefaultLanguage string
	UserAgent       string

	SourceTimeout    time.Duration
	TranslateTimeout time.Duration
	ProbeInterval    time.Duration

	// Heuristics, see translation.Config
	SpanishThreshold          float64
	MinTranslationLength      int
	MinFieldTranslationLength int

	MyMemoryEmail         string
	LibreTranslateMirrors []string
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8000"),
		Address:           getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:               strings.ToLower(getEnvWithDefault("ENV", EnvDevelopment)),
		LogLevel:          strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		LogDir:            getEnvWithDefault("LOG_DIR", "logs"),
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4),         // 4 weeks default
		MaxLogFileSize:    getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 104857600), // 100MB default

		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		BotMaxRetries:     getIntEnvWithDefault("BOT_MAX_RETRIES", 3),
		BotRetryBaseDelay: getDurationEnvWithDefault("BOT_RETRY_BASE_DELAY", 5*time.Second),

		TargetLanguage:  strings.ToLower(getEnvWithDefault("TARGET_LANGUAGE", "es")),
		DefaultLanguage: strings.ToLower(getEnvWithDefault("DEFAULT_LANGUAGE", "en")),
		UserAgent:       getEnvWithDefault("HTTP_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),

		SourceTimeout:    getDurationEnvWithDefault("SOURCE_TIMEOUT", 8*time.Second),
		TranslateTimeout: getDurationEnvWithDefault("TRANSLATE_TIMEOUT", 10*time.Second),
		ProbeInterval:    getDurationEnvWithDefault("PROBE_INTERVAL", 15*time.Minute),

		SpanishThreshold:          getFloatEnvWithDefault("SPANISH_THRESHOLD", 0.15),
		MinTranslationLength:      getIntEnvWithDefault("MIN_TRANSLATION_LENGTH", 10),
		MinFieldTranslationLength: getIntEnvWithDefault("MIN_FIELD_TRANSLATION_LENGTH", 30),

		MyMemoryEmail:         getEnvWithDefault("MYMEMORY_EMAIL", "telegram_bot@medication.com"),
		LibreTranslateMirrors: getListEnvWithDefault("LIBRETRANSLATE_MIRRORS", DefaultLibreTranslateMirrors),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// BotEnabled reports whether a Telegram token was configured
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateLogRetentionWeeks(cfg.LogRetentionWeeks); err != nil {
		return fmt.Errorf("invalid LOG_RETENTION_WEEKS: %w", err)
	}

	if err := validateMaxLogFileSize(cfg.MaxLogFileSize); err != nil {
		return fmt.Errorf("invalid MAX_LOG_FILE_SIZE: %w", err)
	}

	if err := validateLanguage(cfg.TargetLanguage); err != nil {
		return fmt.Errorf("invalid TARGET_LANGUAGE: %w", err)
	}

	if err := validateLanguage(cfg.DefaultLanguage); err != nil {
		return fmt.Errorf("invalid DEFAULT_LANGUAGE: %w", err)
	}

	if err := validateTimeout(cfg.SourceTimeout, "SOURCE_TIMEOUT"); err != nil {
		return fmt.Errorf("invalid SOURCE_TIMEOUT: %w", err)
	}

	if err := validateTimeout(cfg.TranslateTimeout, "TRANSLATE_TIMEOUT"); err != nil {
		return fmt.Errorf("invalid TRANSLATE_TIMEOUT: %w", err)
	}

	if cfg.ProbeInterval < time.Minute {
		return fmt.Errorf("invalid PROBE_INTERVAL: must be at least 1m, got: %s", cfg.ProbeInterval)
	}

	if cfg.SpanishThreshold <= 0 || cfg.SpanishThreshold >= 1 {
		return fmt.Errorf("invalid SPANISH_THRESHOLD: must be between 0 and 1, got: %g", cfg.SpanishThreshold)
	}

	if cfg.MinTranslationLength < 0 || cfg.MinFieldTranslationLength < 0 {
		return fmt.Errorf("translation length thresholds cannot be negative")
	}

	if cfg.BotMaxRetries < 0 || cfg.BotMaxRetries > 20 {
		return fmt.Errorf("invalid BOT_MAX_RETRIES: must be between 0 and 20, got: %d", cfg.BotMaxRetries)
	}

	if cfg.BotRetryBaseDelay <= 0 {
		return fmt.Errorf("invalid BOT_RETRY_BASE_DELAY: must be positive, got: %s", cfg.BotRetryBaseDelay)
	}

	if len(cfg.LibreTranslateMirrors) == 0 {
		return fmt.Errorf("LIBRETRANSLATE_MIRRORS cannot be empty")
	}

	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" || address == "0.0.0.0" {
		return nil
	}

	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	validEnvs := []string{EnvDevelopment, EnvStaging, EnvProduction, EnvTest}

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateLogRetentionWeeks validates the LOG_RETENTION_WEEKS environment variable
func validateLogRetentionWeeks(weeks int) error {
	if weeks <= 0 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be positive, got: %d", weeks)
	}

	if weeks > 52 {
		return fmt.Errorf("LOG_RETENTION_WEEKS is too large (max 52 weeks), got: %d", weeks)
	}

	return nil
}

// validateMaxLogFileSize validates the MAX_LOG_FILE_SIZE environment variable
func validateMaxLogFileSize(size int64) error {
	// Minimum 1MB, maximum 1GB
	if size < 1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too small (min 1MB), got: %d bytes", size)
	}

	if size > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too large (max 1GB), got: %d bytes", size)
	}

	return nil
}

// validateLanguage checks for a two-letter ISO 639-1 code
func validateLanguage(lang string) error {
	if len(lang) != 2 {
		return fmt.Errorf("language must be a two-letter code, got: %q", lang)
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("language must be a two-letter code, got: %q", lang)
		}
	}
	return nil
}

// validateTimeout bounds per-call timeouts
func validateTimeout(d time.Duration, name string) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got: %s", name, d)
	}
	if d > 2*time.Minute {
		return fmt.Errorf("%s is too large (max 2m), got: %s", name, d)
	}
	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnvWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getDurationEnvWithDefault accepts Go durations ("8s") or plain seconds ("8")
func getDurationEnvWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getListEnvWithDefault splits a comma-separated variable
func getListEnvWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.TrimRight(item, "/"))
		}
	}
	return out
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"PORT",
		"ADDRESS",
		"ENV",
		"LOG_LEVEL",
		"LOG_DIR",
		"LOG_RETENTION_WEEKS",
		"MAX_LOG_FILE_SIZE",
		"TELEGRAM_BOT_TOKEN",
		"BOT_MAX_RETRIES",
		"BOT_RETRY_BASE_DELAY",
		"TARGET_LANGUAGE",
		"DEFAULT_LANGUAGE",
		"HTTP_USER_AGENT",
		"SOURCE_TIMEOUT",
		"TRANSLATE_TIMEOUT",
		"PROBE_INTERVAL",
		"SPANISH_THRESHOLD",
		"MIN_TRANSLATION_LENGTH",
		"MIN_FIELD_TRANSLATION_LENGTH",
		"MYMEMORY_EMAIL",
		"LIBRETRANSLATE_MIRRORS",
	}
}
