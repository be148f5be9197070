// Package main wires together the imgscout service binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/skellison/imgscout/internal/api"
	"github.com/skellison/imgscout/internal/config"
	collyfetcher "github.com/skellison/imgscout/internal/fetcher/colly"
	"github.com/skellison/imgscout/internal/logging"
	"github.com/skellison/imgscout/internal/metrics"
	"github.com/skellison/imgscout/internal/scraper"
	"github.com/skellison/imgscout/internal/thesaurus"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	fetcher := collyfetcher.New(collyfetcher.Config{
		BaseURL:   cfg.Scraper.CategoryBaseURL,
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   cfg.Timeout(),
	}, logger.Named("fetcher"))
	synonyms := thesaurus.New(
		cfg.Thesaurus.BaseURL,
		cfg.Thesaurus.APIKey,
		cfg.Timeout(),
		logger.Named("thesaurus"),
	)
	resolver := scraper.NewResolver(fetcher, synonyms, logger.Named("resolver"))
	apiServer := api.NewServer(resolver, cfg, logger.Named("api"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
