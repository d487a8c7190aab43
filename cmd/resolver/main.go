// Command resolver consumes GRIB1 field descriptors from Kafka, annotates
// each with its parameter table entry, and publishes the result.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/grib-param-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/grib-param-service/internal/adapter/kafka"
	"github.com/couchcryptid/grib-param-service/internal/config"
	"github.com/couchcryptid/grib-param-service/internal/observability"
	"github.com/couchcryptid/grib-param-service/internal/pipeline"
	"github.com/couchcryptid/grib-param-service/internal/tableload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, loaded, err := tableload.BuildRegistry(ctx, cfg.ParamTableDir, cfg.ParamTableLoadConcurrency)
	if err != nil {
		logger.Error("failed to build parameter registry", "error", err)
		os.Exit(1)
	}
	for _, t := range loaded {
		logger.Info("parameter table loaded", "table", t.Key.String(), "path", t.Path, "entries", len(t.Entries))
	}
	metrics.ObserveRegistry(reg.Len(), reg.EntryCount())
	logger.Info("parameter registry built", "tables", reg.Len(), "entries", reg.EntryCount())

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	resolver := pipeline.NewResolver(reg, logger, metrics)

	p := pipeline.New(reader, resolver, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, reg, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start resolution pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
