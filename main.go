package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"Rockbolt/internal/config"
	"Rockbolt/internal/logging"
	"Rockbolt/internal/server"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, loaded := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if !loaded {
		logger.Info("no .env file found, using environment variables")
	}

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
