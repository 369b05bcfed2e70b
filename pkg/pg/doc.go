// Package pg bootstraps PostgreSQL access with pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config (PG_* environment variables) and retries
// until the database answers a ping. Migrate runs goose migrations from an fs.FS,
// normally the embedded internal/db migrations, over the same pool. Healthcheck wraps
// Ping for the health endpoint.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, db.Migrations(), cfg, log); err != nil {
//	    return err
//	}
package pg
