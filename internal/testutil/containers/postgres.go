//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/dmitrymomot/frontdoor/internal/db"
	"github.com/dmitrymomot/frontdoor/pkg/pg"
)

// NewPostgres starts PostgreSQL, applies the embedded migrations and returns a pool.
// The container is terminated when the test ends.
func NewPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("frontdoor"),
		tcpostgres.WithUsername("frontdoor"),
		tcpostgres.WithPassword("frontdoor"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	cfg := pg.Config{
		ConnectionString: dsn,
		MaxOpenConns:     10,
		MaxIdleConns:     1,
		RetryAttempts:    3,
		MigrationsTable:  "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pg.Migrate(ctx, pool, db.Migrations(), cfg, nil); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return pool
}
