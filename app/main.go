package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/singgihasu/gramlens/app/api"
	"github.com/singgihasu/gramlens/app/cfg"
	"github.com/singgihasu/gramlens/app/config"
	"github.com/singgihasu/gramlens/app/database"
	"github.com/singgihasu/gramlens/app/instagram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help or version output was requested
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Gramlens", "version", appCfg.Version)

	settings, err := config.NewLoader(appCfg.SettingsFile).Load()
	if err != nil {
		slog.Error("Failed to load settings", "file", appCfg.SettingsFile, "error", err)
		os.Exit(1)
	}

	// The database is an optional collaborator surfaced by the diagnostics
	// endpoint; a missing or broken one must not prevent startup
	var db *database.DB
	if appCfg.DatabaseURL != "" {
		db, err = database.NewConnection(appCfg.DatabaseURL)
		if err != nil {
			slog.Warn("Failed to open database, diagnostics will report it", "error", err)
		} else {
			defer db.Close()
		}
	} else {
		slog.Info("No database configured")
	}

	fetcher := instagram.NewFetcher(&http.Client{}, settings)
	inspector := instagram.NewInspector(fetcher)
	diagnostics := database.NewDiagnostics(db, appCfg.DatabaseURL, appCfg.DatabaseName)

	handler := api.NewHandler(inspector, diagnostics)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
