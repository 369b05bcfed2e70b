package session

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/frontdoor/pkg/cookie"
)

// CookieSigner builds and authenticates cookie values. *cookie.Manager implements it.
type CookieSigner interface {
	Cookie(name, value string, opts ...cookie.Option) *http.Cookie
	Sign(value string) string
	Verify(signed string) (string, error)
}

// Manager issues the visitor session identifier. It keeps no per-request
// state: everything it reads or writes goes through the cookie.Jar it is given.
type Manager struct {
	cookies CookieSigner
	config  Config
	now     func() time.Time
	logger  *slog.Logger
}

// New creates a session manager signing its cookie with cookies.
func New(cookies CookieSigner, opts ...Option) *Manager {
	if cookies == nil {
		panic("session: cookie signer is required")
	}

	m := &Manager{
		cookies: cookies,
		config:  DefaultConfig(),
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure returns the visitor's session identifier, issuing one when the client
// holds none. The cookie is written only when it changes: a valid cookie the
// client already holds is never re-sent, and expiry is fixed at creation.
//
// When jar cannot write, Ensure returns the identifier the client already holds
// or ("", false). It never fails the caller.
func (m *Manager) Ensure(jar cookie.Jar) (string, bool) {
	if jar == nil {
		return "", false
	}

	if id, ok := m.current(jar); ok {
		return id, true
	}

	if !jar.Writable() {
		return "", false
	}

	id := uuid.NewString()
	now := m.now()
	c := m.cookies.Cookie(m.config.CookieName, m.cookies.Sign(id),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(m.config.Secure),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(m.config.Lifetime.Seconds())),
		cookie.WithExpires(now.Add(m.config.Lifetime)),
	)
	if err := jar.Set(c); err != nil {
		m.logger.Debug("session cookie not written", slog.Any("error", err))
		return "", false
	}
	return id, true
}

// Current returns the identifier the client holds without issuing one.
func (m *Manager) Current(jar cookie.Jar) (string, bool) {
	if jar == nil {
		return "", false
	}
	return m.current(jar)
}

func (m *Manager) current(jar cookie.Jar) (string, bool) {
	raw, err := jar.Get(m.config.CookieName)
	if err != nil || raw == "" {
		return "", false
	}

	id, err := m.cookies.Verify(raw)
	if err != nil {
		m.logger.Debug("discarding session cookie", slog.Any("error", err))
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// CookieName returns the session cookie name.
func (m *Manager) CookieName() string { return m.config.CookieName }
