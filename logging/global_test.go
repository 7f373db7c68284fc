package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer := SetupLogger(Options{Dir: dir, Level: "info", Env: "test", MaxFileSize: 1024 * 1024})
	if closer == nil {
		t.Fatal("Expected a file closer when a directory is configured")
	}

	logger.Info("probe finished", "reachable", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Failed to close log file: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "bot.log"))
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	if len(content) == 0 {
		t.Error("Expected log file to contain the record")
	}
}

func TestSetupLoggerConsoleOnly(t *testing.T) {
	logger, closer := SetupLogger(Options{Level: "debug", Env: "dev"})
	if logger == nil {
		t.Fatal("Expected a logger")
	}
	if closer != nil {
		t.Error("Expected no closer without a log directory")
	}
}

func TestPackageHelpersWithoutInit(t *testing.T) {
	saved := DefaultLoggingService
	DefaultLoggingService = nil
	defer func() { DefaultLoggingService = saved }()

	// Must not panic when the global logger is not initialized
	Info("info")
	Warn("warn")
	Error("error")
	Debug("debug")

	if err := Close(); err != nil {
		t.Errorf("Expected nil error from Close without init, got %v", err)
	}
}
