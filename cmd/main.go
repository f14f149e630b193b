package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"body-measure/config"
	"body-measure/internal/container"
	"body-measure/internal/infrastructure/render"
	"body-measure/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	os.Exit(run(cfg, logger))
}

func run(cfg *config.Config, logger *zap.Logger) int {
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Модели живут ровно один запуск
	c, err := container.FromConfig(cfg, logger)
	if err != nil {
		logger.Error("failed to build pipeline", zap.Error(err))
		return 1
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("failed to release models", zap.Error(err))
		}
	}()

	svc := c.MeasurementService
	out, err := svc.Measure(ctx, cfg.ImagePath)
	if err != nil {
		logger.Error("measurement failed",
			zap.String("operation", logging.FailedOperation(err)),
			zap.Error(err))
		return 1
	}

	if err := render.WriteReport(os.Stdout, out.Result); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		return 1
	}

	if err := svc.Present(ctx, cfg.ImagePath, out); err != nil {
		logger.Error("failed to present result",
			zap.String("operation", logging.FailedOperation(err)),
			zap.Error(err))
		return 1
	}

	return 0
}
