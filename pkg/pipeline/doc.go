// Package pipeline runs the pre-render phase of a page request.
//
// Each run walks a small state machine:
//
//	ResolvingLocale -> Redirecting
//	ResolvingLocale -> LocaleFixed -> TrackingAttribution -> Rendering
//
// The locale comes from the i18n.Resolver cascade. A path that does not start
// with a supported locale is redirected to "/{locale}{path}" with the original
// query kept verbatim; no cookie is written and no attribution is recorded on
// that hop. On a prefixed path the locale is fixed, the locale cookie is
// refreshed when it changed, the session cookie is ensured and the gclid query
// parameter, when valid, is written to the gclid cookie and the attribution
// ledger.
//
// The pipeline works against an Exchange. NewHTTPExchange serves a server round
// trip; NewClientExchange is the read-only variant for navigations that have no
// response to write to. Middleware wires Run into net/http:
//
//	p := pipeline.New(resolver, sessions, ledger, cookies,
//	    pipeline.WithConfig(cfg),
//	    pipeline.WithLogger(log),
//	    pipeline.WithMetrics(pipeline.NewMetrics(registry)),
//	)
//	r.Group(func(r chi.Router) {
//	    r.Use(p.Middleware)
//	    r.Get("/{locale}/about", about)
//	    r.Get("/*", notFound) // un-prefixed paths still reach the redirect
//	})
//
// Every decision is returned as an Outcome, so callers and tests can inspect
// the final state, the locale, the session id and the redirect target.
package pipeline
