// Command server runs the localized front door: locale-prefixed pages with
// session and ad-click attribution capture.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/frontdoor/pkg/config"
	"github.com/dmitrymomot/frontdoor/pkg/httpserver"
	"github.com/dmitrymomot/frontdoor/pkg/i18n"
	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/requestid"
	"github.com/dmitrymomot/frontdoor/pkg/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := errors.Join(
		config.Load(&cfg.Log),
		config.Load(&cfg.HTTP),
		config.Load(&cfg.Cookie),
		config.Load(&cfg.Session),
		config.Load(&cfg.Pipeline),
		config.Load(&cfg.I18n),
		config.Load(&cfg.Ledger),
	); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		i18n.LoggerExtractor(),
		session.LoggerExtractor(),
	))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledger, err := openStore(ctx, cfg.Ledger, log)
	if err != nil {
		return err
	}
	defer ledger.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := newRouter(cfg, ledger, registry, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting server",
		logger.Component("server"),
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("ledger", cfg.Ledger.Driver),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
