package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/frontdoor/internal/web"
	"github.com/dmitrymomot/frontdoor/pkg/attribution"
	"github.com/dmitrymomot/frontdoor/pkg/cookie"
	"github.com/dmitrymomot/frontdoor/pkg/httpserver"
	"github.com/dmitrymomot/frontdoor/pkg/i18n"
	"github.com/dmitrymomot/frontdoor/pkg/pipeline"
	"github.com/dmitrymomot/frontdoor/pkg/requestid"
	"github.com/dmitrymomot/frontdoor/pkg/session"
)

func newRouter(cfg appConfig, ledger ledgerStore, registry *prometheus.Registry, log *slog.Logger) (http.Handler, error) {
	resolver, err := i18n.NewResolver(cfg.I18n.Locales, cfg.I18n.BaseLocale, i18n.WithCookieName(cfg.I18n.CookieName))
	if err != nil {
		return nil, err
	}
	translator, err := i18n.NewTranslator(web.Translations(), resolver.Base(), i18n.WithTranslatorLogger(log))
	if err != nil {
		return nil, err
	}
	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return nil, err
	}

	sessions := session.NewFromConfig(cookies, cfg.Session, session.WithLogger(log))
	attributions := attribution.NewLedger(ledger.store,
		attribution.WithLogger(log),
		attribution.WithMetrics(attribution.NewMetrics(registry)),
	)
	pipe := pipeline.New(resolver, sessions, attributions, cookies,
		pipeline.WithConfig(cfg.Pipeline),
		pipeline.WithLogger(log),
		pipeline.WithMetrics(pipeline.NewMetrics(registry)),
	)
	pages := web.NewPages(translator, resolver, log)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthHandler(log, ledger.checks...))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	r.Group(func(r chi.Router) {
		r.Use(pipe.Middleware)
		pages.Routes(r)
	})

	return r, nil
}
