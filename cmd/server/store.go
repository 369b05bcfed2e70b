package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/frontdoor/internal/db"
	"github.com/dmitrymomot/frontdoor/pkg/attribution"
	"github.com/dmitrymomot/frontdoor/pkg/config"
	"github.com/dmitrymomot/frontdoor/pkg/httpserver"
	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/mongo"
	"github.com/dmitrymomot/frontdoor/pkg/pg"
	"github.com/dmitrymomot/frontdoor/pkg/redis"
	"github.com/dmitrymomot/frontdoor/pkg/validator"
)

// ledgerStore is the selected attribution store with its health checks and cleanup.
type ledgerStore struct {
	store  attribution.Store
	checks []httpserver.Check
	close  func()
}

func openStore(ctx context.Context, cfg ledgerConfig, log *slog.Logger) (ledgerStore, error) {
	err := validator.Apply(validator.OneOf("LEDGER_DRIVER", cfg.Driver,
		driverPostgres, driverRedis, driverMongo, driverMemory))
	if err != nil {
		return ledgerStore{}, fmt.Errorf("%w: %w", attribution.ErrUnknownDriver, err)
	}

	switch cfg.Driver {
	case driverPostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return ledgerStore{}, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return ledgerStore{}, err
		}
		if err := pg.Migrate(ctx, pool, db.Migrations(), pgCfg, log); err != nil {
			pool.Close()
			return ledgerStore{}, err
		}
		return ledgerStore{
			store:  attribution.NewPostgresStore(pool),
			checks: []httpserver.Check{{Name: "postgres", Ping: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case driverRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return ledgerStore{}, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return ledgerStore{}, err
		}
		return ledgerStore{
			store:  attribution.NewRedisStore(client, attribution.WithKeyPrefix(cfg.RedisKeyPrefix)),
			checks: []httpserver.Check{{Name: "redis", Ping: redis.Healthcheck(client)}},
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close redis client", logger.Error(err))
				}
			},
		}, nil

	case driverMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return ledgerStore{}, err
		}
		client, database, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return ledgerStore{}, err
		}
		store := attribution.NewMongoStore(database, cfg.MongoCollection)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return ledgerStore{}, err
		}
		return ledgerStore{
			store:  store,
			checks: []httpserver.Check{{Name: "mongo", Ping: mongo.Healthcheck(client)}},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("failed to disconnect mongo client", logger.Error(err))
				}
			},
		}, nil
	}

	log.Warn("attribution ledger kept in memory, records are lost on restart", logger.Component("server"))
	return ledgerStore{store: attribution.NewMemoryStore(), close: func() {}}, nil
}
