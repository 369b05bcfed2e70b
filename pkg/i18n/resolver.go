package i18n

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const (
	// DefaultCookieName is the cookie carrying a previously resolved locale.
	DefaultCookieName = "PARAGLIDE_LOCALE"

	// maxLangCodeLength follows the RFC 5646 recommendation for tag length.
	maxLangCodeLength = 35
)

// DefaultQueryParams are checked in order; the first non-empty one is the
// query candidate.
var DefaultQueryParams = []string{"lang", "gl"}

// Resolver maps a request's URL and headers to one of a fixed set of locales.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	supported   []string
	base        string
	cookieName  string
	queryParams []string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCookieName sets the cookie consulted by the cookie tier.
func WithCookieName(name string) ResolverOption {
	return func(r *Resolver) {
		if name != "" {
			r.cookieName = name
		}
	}
}

// WithQueryParams replaces the query parameters consulted by the query tier.
func WithQueryParams(names ...string) ResolverOption {
	return func(r *Resolver) {
		if len(names) > 0 {
			r.queryParams = slices.Clone(names)
		}
	}
}

// NewResolver validates the locale set and returns a Resolver.
// The base locale must belong to the supported set, otherwise a redirect
// to the base locale could never settle.
func NewResolver(supported []string, base string, opts ...ResolverOption) (*Resolver, error) {
	r := newResolver(supported, base, opts...)
	if len(r.supported) == 0 {
		return nil, ErrNoSupportedLocales
	}
	if r.base == "" {
		return nil, ErrEmptyBaseLocale
	}
	if !r.IsSupported(r.base) {
		return nil, ErrBaseNotSupported
	}
	return r, nil
}

func newResolver(supported []string, base string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		supported:   make([]string, 0, len(supported)),
		base:        normalizeTag(base),
		cookieName:  DefaultCookieName,
		queryParams: DefaultQueryParams,
	}
	for _, tag := range supported {
		if tag = normalizeTag(tag); tag != "" && !slices.Contains(r.supported, tag) {
			r.supported = append(r.supported, tag)
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is the functional form of (*Resolver).Resolve for callers that do
// not keep a Resolver around. base is returned as given when nothing matches.
func Resolve(u *url.URL, h http.Header, supported []string, base string) string {
	r := newResolver(supported, base)
	if tag, ok := r.match(u, h); ok {
		return tag
	}
	return base
}

// Resolve evaluates the tiers in order and returns on the first match:
//  1. query parameter (lang, then gl)
//  2. first path segment
//  3. locale cookie
//  4. primary subtag of the first Accept-Language entry
//
// Unknown values are skipped. When no tier matches the base locale is returned.
func (r *Resolver) Resolve(u *url.URL, h http.Header) string {
	if tag, ok := r.match(u, h); ok {
		return tag
	}
	return r.base
}

func (r *Resolver) match(u *url.URL, h http.Header) (string, bool) {
	if u != nil {
		if tag, ok := r.Match(r.queryCandidate(u)); ok {
			return tag, true
		}
		if tag, ok := r.PathLocale(u.Path); ok {
			return tag, true
		}
	}
	if h != nil {
		if tag, ok := r.Match(cookieFromHeader(h, r.cookieName)); ok {
			return tag, true
		}
		if tag, ok := r.Match(primaryLanguage(h.Get("Accept-Language"))); ok {
			return tag, true
		}
	}
	return "", false
}

// queryCandidate returns the first non-empty configured query parameter.
// A present but unsupported lang does not fall through to gl.
func (r *Resolver) queryCandidate(u *url.URL) string {
	q := u.Query()
	for _, name := range r.queryParams {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// PathLocale reports whether the first segment of path names a supported locale.
func (r *Resolver) PathLocale(path string) (string, bool) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return r.Match(segment)
}

// Match returns the canonical form of tag when it is supported.
func (r *Resolver) Match(tag string) (string, bool) {
	if len(tag) > maxLangCodeLength {
		return "", false
	}
	tag = normalizeTag(tag)
	if tag == "" || !slices.Contains(r.supported, tag) {
		return "", false
	}
	return tag, true
}

// IsSupported reports whether tag names a supported locale, ignoring case.
func (r *Resolver) IsSupported(tag string) bool {
	_, ok := r.Match(tag)
	return ok
}

// Supported returns the canonical supported locales in configuration order.
func (r *Resolver) Supported() []string { return slices.Clone(r.supported) }

// Base returns the fallback locale.
func (r *Resolver) Base() string { return r.base }

// CookieName returns the name of the locale cookie.
func (r *Resolver) CookieName() string { return r.cookieName }

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// cookieFromHeader reads one cookie from raw headers. Going through
// http.Request keeps the lenient parser that skips malformed pairs.
func cookieFromHeader(h http.Header, name string) string {
	if name == "" || len(h.Values("Cookie")) == 0 {
		return ""
	}
	req := http.Request{Header: http.Header{"Cookie": h.Values("Cookie")}}
	c, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
