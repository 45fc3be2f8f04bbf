package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firestoredb "cloud.google.com/go/firestore"
	"github.com/hibiken/asynq"

	"github.com/glamour-aluminium/catalogue/internal/app"
	"github.com/glamour-aluminium/catalogue/internal/catalog"
	"github.com/glamour-aluminium/catalogue/internal/media"
	"github.com/glamour-aluminium/catalogue/internal/observability"
	"github.com/glamour-aluminium/catalogue/internal/platform/cache"
	"github.com/glamour-aluminium/catalogue/internal/store/firestore"
	"github.com/glamour-aluminium/catalogue/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	fsClient, err := firestoredb.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		logger.Error("connect firestore", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := fsClient.Close(); err != nil {
			logger.Warn("firestore close", slog.Any("error", err))
		}
	}()
	productStore := firestore.New(fsClient, cfg.FirestoreCollection)

	minioClient, err := media.NewClient(cfg.MediaEndpoint, cfg.MediaAccessKey, cfg.MediaSecretKey, cfg.MediaUseSSL)
	if err != nil {
		logger.Error("connect media store", slog.Any("error", err))
		os.Exit(1)
	}
	if err := media.EnsureBucket(ctx, minioClient, cfg.MediaBucket); err != nil {
		logger.Warn("ensure media bucket", slog.Any("error", err))
	}
	mediaStore := media.New(minioClient, cfg.MediaBucket, cfg.MediaBaseURL)

	// Redis is optional: without it the service reads straight from
	// the document store and skips deferred media cleanup.
	var snapshotCache *catalog.SnapshotCache
	var jobsClient *jobs.Client
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", slog.Any("error", err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		snapshotCache = catalog.NewSnapshotCache(redisClient, cfg.SnapshotCacheTTL)
		jobsClient = jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := jobsClient.Close(); err != nil {
				logger.Warn("jobs client close", slog.Any("error", err))
			}
		}()
	}

	metrics := observability.NewMetrics()

	var enqueuer catalog.CleanupEnqueuer
	if jobsClient != nil {
		enqueuer = jobsClient
	}
	service := catalog.NewService(productStore, mediaStore, snapshotCache, enqueuer, metrics, logger)
	handler := catalog.NewHandler(logger, service, cfg.AdminKeyHash)

	var jobHandler *jobs.Handler
	if redisClient != nil {
		inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogueHandler: handler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
