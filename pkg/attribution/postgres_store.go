package attribution

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/frontdoor/pkg/pg"
)

// PgxQuerier is the subset of *pgxpool.Pool used by PostgresStore.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps records in the attribution_records table.
type PostgresStore struct {
	db PgxQuerier
}

// NewPostgresStore returns a store over db. The schema comes from the
// migrations, nothing is created here.
func NewPostgresStore(db PgxQuerier) *PostgresStore {
	return &PostgresStore{db: db}
}

const upsertRecordSQL = `
INSERT INTO attribution_records (session_id, gclid, upload_status, created_at, updated_at)
VALUES ($1, $2, 'PENDING', $3, $3)
ON CONFLICT (session_id) DO UPDATE SET
    gclid = EXCLUDED.gclid,
    upload_status = CASE
        WHEN attribution_records.gclid IS DISTINCT FROM EXCLUDED.gclid THEN 'PENDING'
        ELSE attribution_records.upload_status
    END,
    updated_at = EXCLUDED.updated_at
`

const getRecordSQL = `
SELECT session_id, gclid, upload_status, created_at, updated_at
FROM attribution_records
WHERE session_id = $1
`

// Upsert is a single INSERT ... ON CONFLICT, so concurrent clicks on one
// session leave one row with the last committed gclid.
func (s *PostgresStore) Upsert(ctx context.Context, sessionID string, patch Patch) error {
	if err := patch.validate(sessionID); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, upsertRecordSQL, sessionID, patch.GCLID, patch.At); err != nil {
		return errors.Join(ErrFailedToUpsert, err)
	}
	return nil
}

// Get returns ErrRecordNotFound when no row exists for sessionID.
func (s *PostgresStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	var (
		r       Record
		gclid   *string
		status  string
		created time.Time
		updated time.Time
	)
	err := s.db.QueryRow(ctx, getRecordSQL, sessionID).Scan(&r.SessionID, &gclid, &status, &created, &updated)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrRecordNotFound
		}
		return nil, errors.Join(ErrFailedToGet, err)
	}

	st, err := ParseStatus(status)
	if err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	if gclid != nil {
		r.GCLID = *gclid
	}
	r.UploadStatus = st
	r.CreatedAt = created.UTC()
	r.UpdatedAt = updated.UTC()
	return &r, nil
}
