package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/dmitrymomot/frontdoor/pkg/binder"
	"github.com/dmitrymomot/frontdoor/pkg/cookie"
	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/validator"
)

const maxGCLIDLength = 512

var gclidPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type trackingQuery struct {
	GCLID string `query:"gclid"`
}

// gclid returns the validated gclid query parameter, or "" when it is absent
// or malformed.
func (p *Pipeline) gclid(ctx context.Context, u *url.URL) string {
	var q trackingQuery
	if err := binder.Query(u.Query(), &q); err != nil {
		p.logger.DebugContext(ctx, "tracking query not bound", logger.Component("pipeline"), logger.Error(err))
		return ""
	}
	if q.GCLID == "" {
		return ""
	}

	err := validator.Apply(
		validator.MaxLen("gclid", q.GCLID, maxGCLIDLength),
		validator.Matches("gclid", q.GCLID, gclidPattern, "url-safe base64"),
		validator.NoControlChars("gclid", q.GCLID),
	)
	if err != nil {
		p.logger.InfoContext(ctx, "ignoring invalid gclid",
			logger.Component("pipeline"),
			slog.Int("length", len(q.GCLID)),
			logger.Error(err),
		)
		return ""
	}
	return q.GCLID
}

// rememberLocale persists locale in the locale cookie when the client holds a different value.
func (p *Pipeline) rememberLocale(ctx context.Context, jar cookie.Jar, locale string) {
	name := p.resolver.CookieName()
	if current, _ := jar.Get(name); current == locale {
		return
	}
	p.setCookie(ctx, jar, p.cookies.Cookie(name, locale,
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(false),
		cookie.WithSecure(p.config.SecureCookies),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(p.config.LocaleCookieLifetime.Seconds())),
	))
}

// rememberGCLID persists the last ad click id when it changed.
func (p *Pipeline) rememberGCLID(ctx context.Context, jar cookie.Jar, gclid string) {
	name := p.config.GCLIDCookieName
	if current, _ := jar.Get(name); current == gclid {
		return
	}
	p.setCookie(ctx, jar, p.cookies.Cookie(name, gclid,
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(p.config.SecureCookies),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(p.config.GCLIDLifetime.Seconds())),
	))
}

func (p *Pipeline) setCookie(ctx context.Context, jar cookie.Jar, c *http.Cookie) {
	if !jar.Writable() {
		return
	}
	if err := jar.Set(c); err != nil && !errors.Is(err, cookie.ErrNotWritable) {
		p.logger.DebugContext(ctx, "cookie not written",
			logger.Component("pipeline"),
			slog.String("cookie", c.Name),
			logger.Error(err),
		)
	}
}
