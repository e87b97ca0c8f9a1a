package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/climate-report-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/climate-report-service/internal/adapter/kafka"
	"github.com/couchcryptid/climate-report-service/internal/config"
	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/observability"
	"github.com/couchcryptid/climate-report-service/internal/pipeline"
	"github.com/couchcryptid/climate-report-service/internal/reportflow"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Report sink: Kafka when configured, structured log otherwise.
	var loader pipeline.BatchLoader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loader = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaReportsTopic)
	} else {
		loader = pipeline.NewLogSink(logger)
		logger.Info("kafka publishing disabled, reports are logged")
	}

	dispatcher := pipeline.New(loader, logger, metrics, pipeline.Options{
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.BatchFlushInterval,
		QueueSize:     cfg.QueueSize,
	})

	var seed []domain.Report
	if cfg.SeedMockReports {
		seed = domain.MockReports()
	}
	svc := reportflow.NewService(
		reportflow.NewStore(seed),
		domain.NewMockAnalyzer(cfg.AnalysisDelay),
		dispatcher,
		logger,
		metrics,
	)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, dispatcher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// The dispatcher outlives the HTTP server so reports accepted by in-flight
	// requests are still queued before the final drain.
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	g.Go(func() error {
		return dispatcher.Run(dispatchCtx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		defer stopDispatch()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", "error", err)
	}

	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
