package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/ekisa-team/salescript/internal/config"
	"github.com/ekisa-team/salescript/internal/env"
	"github.com/ekisa-team/salescript/internal/logger"
	httpserver "github.com/ekisa-team/salescript/internal/server/http"
	"github.com/ekisa-team/salescript/internal/service"
	"github.com/ekisa-team/salescript/internal/telemetry"
	"github.com/joho/godotenv"
)

const version = "1.0.0-sales-script-generator"

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", config.DefaultHTTPPort(), "HTTP port to listen on")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "salescript.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	// A missing .env file is not an error; plain environment variables
	// still apply.
	_ = godotenv.Load()

	environment := env.FromEnv()

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}
		slog.Info("Serving variant", "variant", cfg.Variant)
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	cfg := watcher.Snapshot()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/salescript.log"),
			logger.WithLevel(logger.ParseLevel(cfg.Logging.Level)),
		),
	)

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	port := cfg.Server.HTTPPort
	if port == 0 {
		port = *flagHTTPPort
	}

	stats := telemetry.NewStats(version)
	srv := httpserver.NewServer(watcher.Snapshot, service.NewScript(stats), stats)

	deployment := config.ResolveDeployment(port, version)
	slog.Info("Starting Sales Script Generator",
		"version", version,
		"variant", cfg.Variant,
		"environment", deployment.Environment,
		"base_url", deployment.BaseURL,
		"docs", deployment.BaseURL+config.RoutePrefix()+"/docs",
		"api", deployment.APIEndpoint,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: srv.Handler(),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
