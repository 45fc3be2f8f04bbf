package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/glamour-aluminium/catalogue/internal/app"
	jobmetrics "github.com/glamour-aluminium/catalogue/internal/jobs"
	"github.com/glamour-aluminium/catalogue/internal/media"
	"github.com/glamour-aluminium/catalogue/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	minioClient, err := media.NewClient(cfg.MediaEndpoint, cfg.MediaAccessKey, cfg.MediaSecretKey, cfg.MediaUseSSL)
	if err != nil {
		logger.Error("connect media store", slog.Any("error", err))
		os.Exit(1)
	}
	mediaStore := media.New(minioClient, cfg.MediaBucket, cfg.MediaBaseURL)

	worker := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Cleanup:   jobs.NewCleanupHandler(mediaStore, jobmetrics.NewMetrics(nil), logger),
	})

	logger.Info("starting worker", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker shut down")
}
