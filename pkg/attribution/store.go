package attribution

import "context"

// Store persists attribution records keyed by session id.
type Store interface {
	// Upsert atomically inserts {gclid, PENDING, created_at=At} for an unknown
	// session, or overwrites gclid on the existing record. The upload status is
	// reset to PENDING only when the gclid actually changes. An empty session id
	// or gclid is rejected with ErrEmptySessionID or ErrEmptyGCLID.
	Upsert(ctx context.Context, sessionID string, patch Patch) error

	// Get returns the record of a session or ErrRecordNotFound.
	Get(ctx context.Context, sessionID string) (*Record, error)
}
