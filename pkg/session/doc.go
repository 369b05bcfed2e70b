// Package session issues and reads the visitor session identifier.
//
// A session is an opaque UUIDv4 stored in an HMAC-signed, http-only, Secure, SameSite=Lax
// cookie with a fixed 30-day expiry from creation. There is no server-side session record:
// the identifier exists to key other data (click attribution) to one browser.
//
//	mgr := session.New(cookieMgr)
//	id, ok := mgr.Ensure(cookie.NewJar(w, r))
//
// Ensure follows a write-on-change policy: a valid cookie the client already holds is never
// re-sent, and calling Ensure again on the same Jar returns the same identifier without a
// second Set-Cookie. With a read-only Jar (no response to write to) Ensure degrades to
// returning the identifier already held, or ("", false).
package session
