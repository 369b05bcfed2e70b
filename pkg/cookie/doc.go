// Package cookie builds, signs and verifies HTTP cookies and exposes the per-exchange
// cookie capability (Jar) used by the request pipeline.
//
// # Overview
//
// The Manager type is initialised with one or more secret keys and a set of default cookie
// Options. Secrets are used for HMAC-SHA256 signatures; the first secret signs, all of them
// verify, which allows key rotation without invalidating visitors' cookies.
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRETS")},
//		cookie.WithSecure(true),
//		cookie.WithHTTPOnly(true),
//	)
//	if err != nil { log.Fatal(err) }
//
//	c := man.Cookie("session_id", man.Sign(id), cookie.WithMaxAge(2592000))
//
// # Jar
//
// A Jar is the cookie view of a single request/response pair. NewJar wraps an
// http.ResponseWriter and *http.Request; ReadOnlyJar serves contexts that have no response
// to write to (client-side navigation, background rendering). Writes made through a Jar are
// visible to later reads on the same Jar, so repeated calls within one request agree on the
// value without emitting duplicate Set-Cookie headers.
//
// # Error Handling
//
// Package-level sentinel errors (ErrCookieNotFound, ErrInvalidSignature, ErrNotWritable, ...)
// can be matched with errors.Is.
package cookie
