package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DukeRupert/frontdoor/internal"
	"github.com/DukeRupert/frontdoor/internal/handler"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/view"
	"github.com/DukeRupert/frontdoor/web"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	if cfg.ExportMode != site.ExportServer {
		logger.Warn("EXPORT_MODE is not 'server'; serving anyway, publish with sitectl export", "mode", cfg.ExportMode)
	}

	// Load site content
	siteCfg, err := site.Load(cfg.SiteConfigPath)
	if err != nil {
		return fmt.Errorf("site config failed: %w", err)
	}
	logger.Info("Site loaded", "business", siteCfg.Business.Name, "source", siteSource(cfg.SiteConfigPath))

	// ==========================================================================
	// Create router
	// ==========================================================================

	router := handler.NewRouter(handler.RouterConfig{
		Site: siteCfg,
		Options: view.Options{
			Mode:     site.ExportServer,
			BasePath: cfg.BasePath,
		},
		Assets:          web.Static(),
		Logger:          logger,
		IsSecure:        !cfg.IsDevelopment(),
		MetricsUsername: cfg.MetricsUsername,
		MetricsPassword: cfg.MetricsPassword,
	})

	if cfg.MetricsUsername == "" && cfg.MetricsPassword == "" {
		logger.Warn("/metrics is unprotected; set METRICS_USERNAME and METRICS_PASSWORD")
	}

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "base_path", cfg.BasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-sigChan:
	}
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func siteSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
