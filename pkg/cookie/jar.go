package cookie

import (
	"errors"
	"net/http"
	"sync"
)

// Jar is the cookie capability of one request/response exchange.
type Jar interface {
	// Get returns the value the client holds for name, or the value written
	// earlier through this Jar.
	Get(name string) (string, error)

	// Set queues c on the response. Read-only jars return ErrNotWritable.
	Set(c *http.Cookie) error

	// Writable reports whether Set can reach the client.
	Writable() bool
}

type httpJar struct {
	w http.ResponseWriter
	r *http.Request

	mu      sync.Mutex
	written map[string]*http.Cookie
}

// NewJar returns a Jar bound to w and r. A nil w yields a read-only jar.
func NewJar(w http.ResponseWriter, r *http.Request) Jar {
	if w == nil {
		return ReadOnlyJar(r)
	}
	return &httpJar{w: w, r: r, written: make(map[string]*http.Cookie)}
}

func (j *httpJar) Get(name string) (string, error) {
	j.mu.Lock()
	c, ok := j.written[name]
	j.mu.Unlock()
	if ok {
		if c.MaxAge < 0 {
			return "", ErrCookieNotFound
		}
		return c.Value, nil
	}
	return readCookie(j.r, name)
}

func (j *httpJar) Set(c *http.Cookie) error {
	if c == nil || c.Name == "" {
		return ErrInvalidFormat
	}
	http.SetCookie(j.w, c)

	j.mu.Lock()
	j.written[c.Name] = c
	j.mu.Unlock()
	return nil
}

func (j *httpJar) Writable() bool { return true }

type readOnlyJar struct {
	r *http.Request
}

// ReadOnlyJar serves reads from r (which may be nil) and drops every write.
func ReadOnlyJar(r *http.Request) Jar {
	return readOnlyJar{r: r}
}

func (j readOnlyJar) Get(name string) (string, error) { return readCookie(j.r, name) }

func (readOnlyJar) Set(*http.Cookie) error { return ErrNotWritable }

func (readOnlyJar) Writable() bool { return false }

func readCookie(r *http.Request, name string) (string, error) {
	if r == nil {
		return "", ErrCookieNotFound
	}
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}
