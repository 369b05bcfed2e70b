package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/frontdoor/pkg/attribution"
	"github.com/dmitrymomot/frontdoor/pkg/cookie"
	"github.com/dmitrymomot/frontdoor/pkg/i18n"
	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/session"
	"github.com/dmitrymomot/frontdoor/pkg/statemachine"
)

// CookieBuilder builds outgoing cookies from shared defaults. *cookie.Manager implements it.
type CookieBuilder interface {
	Cookie(name, value string, opts ...cookie.Option) *http.Cookie
}

// Pipeline runs the pre-render steps of a page request: locale resolution,
// the locale-prefix redirect, the session cookie and attribution capture.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	resolver *i18n.Resolver
	sessions *session.Manager
	ledger   *attribution.Ledger
	cookies  CookieBuilder
	config   Config
	logger   *slog.Logger
	metrics  *Metrics
}

// New creates a pipeline. All collaborators are required.
func New(resolver *i18n.Resolver, sessions *session.Manager, ledger *attribution.Ledger, cookies CookieBuilder, opts ...Option) *Pipeline {
	switch {
	case resolver == nil:
		panic("pipeline: nil locale resolver")
	case sessions == nil:
		panic("pipeline: nil session manager")
	case ledger == nil:
		panic("pipeline: nil attribution ledger")
	case cookies == nil:
		panic("pipeline: nil cookie builder")
	}

	p := &Pipeline{
		resolver: resolver,
		sessions: sessions,
		ledger:   ledger,
		cookies:  cookies,
		config:   DefaultConfig(),
		logger:   slog.Default(),
		metrics:  NewMetrics(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline against ex. A request whose path does not start
// with a supported locale is redirected to the prefixed path and nothing else
// happens. Otherwise the locale is fixed, the session ensured and the gclid
// recorded. Run never fails: optional steps that cannot complete are skipped.
func (p *Pipeline) Run(ex Exchange) Outcome {
	began := time.Now()
	m := flow.Start(ResolvingLocale)
	u := ex.URL()

	out := Outcome{Locale: p.resolver.Resolve(u, ex.Header())}
	ctx := ex.Context()

	if _, ok := p.resolver.PathLocale(u.Path); !ok {
		out.RedirectTo = RedirectTarget(out.Locale, u)
		p.advance(ctx, m, Redirecting)
		if err := ex.Redirect(out.RedirectTo); err != nil {
			p.logger.WarnContext(ctx, "redirect not written",
				logger.Component("pipeline"),
				slog.String("target", out.RedirectTo),
				logger.Error(err),
			)
		}
		return p.finish(ctx, m, out, began)
	}

	p.advance(ctx, m, LocaleFixed)
	ctx = i18n.WithLocale(ctx, out.Locale)
	jar := ex.Jar()
	p.rememberLocale(ctx, jar, out.Locale)

	p.advance(ctx, m, TrackingAttribution)
	if id, ok := p.sessions.Ensure(jar); ok {
		out.SessionID = id
		ctx = session.WithID(ctx, id)
	}
	out.GCLID = p.gclid(ctx, u)
	if out.GCLID != "" {
		p.rememberGCLID(ctx, jar, out.GCLID)
		p.ledger.RecordAttribution(ctx, out.SessionID, out.GCLID)
	}

	p.advance(ctx, m, Rendering)
	p.metrics.Locales.WithLabelValues(out.Locale).Inc()
	return p.finish(ctx, m, out, began)
}

// Middleware runs the pipeline before next. Redirected requests never reach
// next; the others carry the locale and session id in their context.
func (p *Pipeline) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := p.Run(NewHTTPExchange(w, r, p.config.RedirectCode))
		if out.Redirected() {
			return
		}

		ctx := i18n.WithLocale(r.Context(), out.Locale)
		if out.SessionID != "" {
			ctx = session.WithID(ctx, out.SessionID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectTarget prefixes the path of u with locale and keeps the raw query verbatim.
func RedirectTarget(locale string, u *url.URL) string {
	target := "/" + locale
	if path := u.EscapedPath(); path != "" && path != "/" {
		target += path
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}

// advance fires a transition of the static flow. A failure means the flow
// table and Run disagree, so it is logged loudly rather than surfaced.
func (p *Pipeline) advance(ctx context.Context, m *statemachine.Machine[State], to State) {
	if err := m.Fire(to); err != nil {
		p.logger.ErrorContext(ctx, "pipeline transition rejected",
			logger.Component("pipeline"),
			logger.State(m.Current().String()),
			logger.Error(err),
		)
	}
}

func (p *Pipeline) finish(ctx context.Context, m *statemachine.Machine[State], out Outcome, began time.Time) Outcome {
	out.State = m.Current()
	elapsed := time.Since(began)

	p.metrics.Runs.WithLabelValues(out.State.String()).Inc()
	p.metrics.Duration.Observe(elapsed.Seconds())
	p.logger.DebugContext(ctx, "pipeline finished",
		logger.Component("pipeline"),
		logger.State(out.State.String()),
		logger.Locale(out.Locale),
		logger.Duration(elapsed),
	)
	return out
}
