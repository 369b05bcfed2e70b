//go:build integration

package attribution_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontdoor/internal/testutil/containers"
	"github.com/dmitrymomot/frontdoor/pkg/attribution"
)

// storeContract runs the upsert rules against a real backend.
// markSent simulates the external uploader.
func storeContract(t *testing.T, store attribution.Store, markSent func(sessionID string)) {
	t.Helper()
	ctx := context.Background()
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("insert", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "S-insert", attribution.Patch{GCLID: "abc123", At: t0}))

		rec, err := store.Get(ctx, "S-insert")
		require.NoError(t, err)
		assert.Equal(t, "abc123", rec.GCLID)
		assert.Equal(t, attribution.StatusPending, rec.UploadStatus)
		assert.True(t, rec.CreatedAt.Equal(t0))
		assert.True(t, rec.UpdatedAt.Equal(t0))
	})

	t.Run("same gclid keeps status", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "S-same", attribution.Patch{GCLID: "abc", At: t0}))
		markSent("S-same")
		require.NoError(t, store.Upsert(ctx, "S-same", attribution.Patch{GCLID: "abc", At: t0.Add(time.Minute)}))

		rec, err := store.Get(ctx, "S-same")
		require.NoError(t, err)
		assert.Equal(t, attribution.StatusSent, rec.UploadStatus)
		assert.True(t, rec.CreatedAt.Equal(t0))
		assert.True(t, rec.UpdatedAt.Equal(t0.Add(time.Minute)))
	})

	t.Run("new gclid resets status", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "S-new", attribution.Patch{GCLID: "old", At: t0}))
		markSent("S-new")
		require.NoError(t, store.Upsert(ctx, "S-new", attribution.Patch{GCLID: "new", At: t0.Add(time.Hour)}))

		rec, err := store.Get(ctx, "S-new")
		require.NoError(t, err)
		assert.Equal(t, "new", rec.GCLID)
		assert.Equal(t, attribution.StatusPending, rec.UploadStatus)
		assert.True(t, rec.CreatedAt.Equal(t0))
	})

	t.Run("concurrent first visits", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.Upsert(ctx, "S-race", attribution.Patch{GCLID: "abc", At: t0})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		rec, err := store.Get(ctx, "S-race")
		require.NoError(t, err)
		assert.Equal(t, "abc", rec.GCLID)
	})

	t.Run("concurrent clicks on one session", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, "S-clicks", attribution.Patch{GCLID: "seed", At: t0}))
		markSent("S-clicks")

		written := make([]string, 20)
		for i := range written {
			written[i] = "g" + strconv.Itoa(i)
		}

		var wg sync.WaitGroup
		errs := make(chan error, len(written))
		for i, gclid := range written {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.Upsert(ctx, "S-clicks", attribution.Patch{GCLID: gclid, At: t0.Add(time.Duration(i+1) * time.Second)})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		rec, err := store.Get(ctx, "S-clicks")
		require.NoError(t, err)
		assert.Contains(t, written, rec.GCLID)
		assert.Equal(t, attribution.StatusPending, rec.UploadStatus)
		assert.True(t, rec.CreatedAt.Equal(t0))
	})

	t.Run("empty gclid rejected", func(t *testing.T) {
		err := store.Upsert(ctx, "S-empty", attribution.Patch{At: t0})
		require.ErrorIs(t, err, attribution.ErrEmptyGCLID)

		_, err = store.Get(ctx, "S-empty")
		assert.ErrorIs(t, err, attribution.ErrRecordNotFound)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := store.Get(ctx, "S-missing")
		assert.ErrorIs(t, err, attribution.ErrRecordNotFound)
	})
}

func TestPostgresStore(t *testing.T) {
	pool := containers.NewPostgres(t)
	store := attribution.NewPostgresStore(pool)

	storeContract(t, store, func(sessionID string) {
		_, err := pool.Exec(context.Background(),
			`UPDATE attribution_records SET upload_status = 'SENT' WHERE session_id = $1`, sessionID)
		require.NoError(t, err)
	})

	t.Run("one row per session", func(t *testing.T) {
		for _, sid := range []string{"S-race", "S-clicks"} {
			var n int
			err := pool.QueryRow(context.Background(),
				`SELECT count(*) FROM attribution_records WHERE session_id = $1`, sid).Scan(&n)
			require.NoError(t, err)
			assert.Equal(t, 1, n, sid)
		}
	})
}

func TestRedisStore(t *testing.T) {
	client := containers.NewRedis(t)
	store := attribution.NewRedisStore(client, attribution.WithKeyPrefix("test:attribution:"))

	storeContract(t, store, func(sessionID string) {
		require.NoError(t, client.HSet(context.Background(), "test:attribution:"+sessionID, "upload_status", "SENT").Err())
	})
}

func TestMongoStore(t *testing.T) {
	db := containers.NewMongo(t)
	store := attribution.NewMongoStore(db, "")
	require.NoError(t, store.EnsureIndexes(context.Background()))

	storeContract(t, store, func(sessionID string) {
		_, err := db.Collection(attribution.DefaultMongoCollection).UpdateByID(context.Background(), sessionID,
			map[string]any{"$set": map[string]any{"upload_status": "SENT"}})
		require.NoError(t, err)
	})

	t.Run("one document per session", func(t *testing.T) {
		n, err := db.Collection(attribution.DefaultMongoCollection).CountDocuments(context.Background(),
			map[string]any{"_id": "S-clicks"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}
