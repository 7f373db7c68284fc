package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/giygas/medicamentos-bot/bot"
	"github.com/giygas/medicamentos-bot/config"
	"github.com/giygas/medicamentos-bot/data"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/handlers"
	"github.com/giygas/medicamentos-bot/health"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/scheduler"
	"github.com/giygas/medicamentos-bot/search"
	"github.com/giygas/medicamentos-bot/server"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.InitLogger(logging.Options{
		Dir:            cfg.LogDir,
		Level:          cfg.LogLevel,
		Env:            cfg.Env,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
	})
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
		}
	}()

	logging.Info("Starting medication bot",
		"env", cfg.Env,
		"target_language", cfg.TargetLanguage,
		"bot_enabled", cfg.BotEnabled())

	httpClient := fetch.NewHTTPClient()

	status := data.NewStatusContainer()
	status.SetServerStartTime(time.Now())

	prober := health.NewProber(health.TargetsFrom(cfg), fetch.New(httpClient, cfg.UserAgent, cfg.SourceTimeout))
	probeScheduler := scheduler.NewScheduler(status, prober, cfg.ProbeInterval)
	if err := probeScheduler.Start(); err != nil {
		logging.Error("Connectivity probe disabled", "error", err)
	}

	searchService := search.New(cfg, httpClient)
	healthChecker := health.NewHealthChecker(status, cfg.BotEnabled(), cfg.ProbeInterval)
	srv := server.NewServer(cfg, handlers.NewHTTPHandler(searchService, healthChecker, status))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	var wg sync.WaitGroup
	if cfg.BotEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tg, err := bot.Connect(ctx, cfg.TelegramToken, bot.RetryPolicyFrom(cfg), bot.NewHandler(searchService), status)
			if err != nil {
				// The ops server keeps running so /health reports the failure
				logging.Error("Telegram bot stopped", "error", err)
				return
			}
			tg.Run(ctx)
		}()
	} else {
		logging.Warn("TELEGRAM_BOT_TOKEN is not set, only the HTTP server is running")
	}

	// Block until a signal is received
	<-ctx.Done()

	probeScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server shutdown failed", "error", err)
	}

	wg.Wait()
	logging.Info("Shutdown complete")
}
