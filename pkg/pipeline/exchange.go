package pipeline

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/frontdoor/handler"
	"github.com/dmitrymomot/frontdoor/pkg/cookie"
)

// Exchange is the request/response capability a pipeline run works against.
type Exchange interface {
	Context() context.Context
	URL() *url.URL
	Header() http.Header
	Jar() cookie.Jar
	// Redirect answers the request with a redirect to target.
	Redirect(target string) error
}

type httpExchange struct {
	w    http.ResponseWriter
	r    *http.Request
	jar  cookie.Jar
	code int
}

// NewHTTPExchange binds an exchange to a server round trip. DataStar requests
// are redirected over SSE, everything else with code.
func NewHTTPExchange(w http.ResponseWriter, r *http.Request, code int) Exchange {
	return &httpExchange{w: w, r: r, jar: cookie.NewJar(w, r), code: code}
}

func (e *httpExchange) Context() context.Context { return e.r.Context() }
func (e *httpExchange) URL() *url.URL            { return e.r.URL }
func (e *httpExchange) Header() http.Header      { return e.r.Header }
func (e *httpExchange) Jar() cookie.Jar          { return e.jar }

func (e *httpExchange) Redirect(target string) error {
	return handler.RedirectWithCode(target, e.code).Render(e.w, e.r)
}

type clientExchange struct {
	ctx context.Context
	u   *url.URL
	h   http.Header
	jar cookie.Jar
}

// NewClientExchange is an exchange without a response: cookies are readable
// but never written and Redirect does nothing. The caller navigates using
// Outcome.RedirectTo.
func NewClientExchange(ctx context.Context, u *url.URL, h http.Header) Exchange {
	if h == nil {
		h = http.Header{}
	}
	return &clientExchange{
		ctx: ctx,
		u:   u,
		h:   h,
		jar: cookie.ReadOnlyJar(&http.Request{URL: u, Header: h}),
	}
}

func (e *clientExchange) Context() context.Context { return e.ctx }
func (e *clientExchange) URL() *url.URL            { return e.u }
func (e *clientExchange) Header() http.Header      { return e.h }
func (e *clientExchange) Jar() cookie.Jar          { return e.jar }
func (e *clientExchange) Redirect(string) error    { return nil }
