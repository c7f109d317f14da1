package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/brewery"
	"github.com/tinytelemetry/brewdeck/internal/httpserver"
	"github.com/tinytelemetry/brewdeck/internal/logger"
	"golang.org/x/sync/errgroup"
)

// runServe serves the brewery page until SIGINT or SIGTERM.
func runServe(cfg appConfig) error {
	log, closeLog, err := logger.New(cfg.LogLevel, "")
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closeLog()

	srv := httpserver.NewServer(httpserver.Options{
		Addr:     cfg.ServeAddr,
		Fetcher:  brewery.NewClient(cfg.clientOptions()),
		Entrance: anim.NewEntrance(springFor(cfg)),
		Place:    cfg.Place,
		CacheTTL: cfg.CacheTTL,
		Logger:   log,
	})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down")
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
