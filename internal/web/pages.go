package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/frontdoor/handler"
	"github.com/dmitrymomot/frontdoor/pkg/i18n"
)

// Pages serves the localized pages. Requests are expected to have passed the
// pipeline middleware, which puts the locale in the context.
type Pages struct {
	translator *i18n.Translator
	supported  []string
	base       string
	errors     handler.ErrorHandler
}

// NewPages creates the page handlers. supported drives the language switcher.
func NewPages(translator *i18n.Translator, resolver *i18n.Resolver, log *slog.Logger) *Pages {
	return &Pages{
		translator: translator,
		supported:  resolver.Supported(),
		base:       resolver.Base(),
		errors:     handler.NewErrorHandler(log),
	}
}

// Routes registers the pages on r. The catch-all route makes un-prefixed
// paths reach the middleware stack so they can be redirected.
func (p *Pages) Routes(r chi.Router) {
	home := handler.Wrap(p.Home, handler.WithErrorHandler[struct{}](p.errors))
	r.Get("/{locale}", home)
	r.Get("/{locale}/", home)
	r.Get("/{locale}/about", handler.Wrap(p.About, handler.WithErrorHandler[struct{}](p.errors)))
	r.Get("/*", handler.Wrap(p.NotFound, handler.WithErrorHandler[struct{}](p.errors)))
}

func (p *Pages) Home(ctx handler.Context, _ struct{}) handler.Response {
	v := p.page(ctx, "/", "home.title")
	return handler.Templ(homeView(v))
}

func (p *Pages) About(ctx handler.Context, _ struct{}) handler.Response {
	v := p.page(ctx, "/about", "about.title")
	return handler.Templ(aboutView(v))
}

func (p *Pages) NotFound(ctx handler.Context, _ struct{}) handler.Response {
	v := p.page(ctx, "/", "notfound.title")
	return handler.TemplWithStatus(http.StatusNotFound, notFoundView(v, ctx.Request().URL.Path))
}

func (p *Pages) page(ctx handler.Context, path, titleKey string) page {
	locale := ctx.Locale()
	if locale == "" {
		locale = p.base
	}
	t := func(key string, args ...string) string {
		return p.translator.T(locale, key, args...)
	}
	return page{
		Locale:   locale,
		Title:    t(titleKey),
		Path:     path,
		Switcher: i18n.LanguageOptions(p.supported, locale),
		T:        t,
	}
}
