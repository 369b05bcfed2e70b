// Package attribution captures ad-click attribution per visitor session.
//
// The Ledger records the Google Ads click identifier (gclid) a visitor arrived with,
// keyed by the session identifier. Capture is best-effort and idempotent:
//
//   - a request without a gclid writes nothing;
//   - the first gclid of a session inserts a record with upload status PENDING;
//   - a later gclid overwrites the stored one (last touch wins) and puts the record back to
//     PENDING; repeating the same gclid only bumps updated_at;
//   - store failures are logged and swallowed, never retried or queued.
//
// Uniqueness per session and atomicity under concurrent requests are delegated to the
// Store's insert-or-update on the session key. Implementations are provided for PostgreSQL
// (pgx), Redis (a Lua script over a hash), MongoDB (an update pipeline with upsert) and
// memory.
//
//	store := attribution.NewPostgresStore(pool)
//	ledger := attribution.NewLedger(store, attribution.WithLogger(log))
//	ledger.RecordAttribution(ctx, sessionID, r.URL.Query().Get("gclid"))
//
// Uploading PENDING records to an ads platform is someone else's job; this package never
// changes SENT/FAILED except by resetting to PENDING when a new click arrives.
package attribution
