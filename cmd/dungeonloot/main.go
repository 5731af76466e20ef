// Package main is the entry point for DungeonLoot.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonloot/internal/game"
	"github.com/samdwyer/dungeonloot/internal/logger"
	"github.com/samdwyer/dungeonloot/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger.Init(cfg.LogLevel, cfg.LogFormat, logFile)
	logger.Log.WithField("session_id", telemetry.SessionID).Info("starting dungeonloot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Error("shutting down telemetry")
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Error("failed to initialize game")
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint has been configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONLOOT_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONLOOT_DATASET")
	if dataset == "" {
		dataset = "dungeonloot"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
