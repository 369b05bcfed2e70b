package main

import (
	"github.com/dmitrymomot/frontdoor/pkg/attribution"
	"github.com/dmitrymomot/frontdoor/pkg/cookie"
	"github.com/dmitrymomot/frontdoor/pkg/httpserver"
	"github.com/dmitrymomot/frontdoor/pkg/i18n"
	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/pipeline"
	"github.com/dmitrymomot/frontdoor/pkg/session"
)

// Ledger drivers accepted in LEDGER_DRIVER.
const (
	driverPostgres = "postgres"
	driverRedis    = "redis"
	driverMongo    = "mongo"
	driverMemory   = "memory"
)

type ledgerConfig struct {
	Driver          string `env:"LEDGER_DRIVER" envDefault:"memory"`
	RedisKeyPrefix  string `env:"LEDGER_REDIS_KEY_PREFIX" envDefault:"attribution:"`
	MongoCollection string `env:"LEDGER_MONGO_COLLECTION" envDefault:"attribution_records"`
}

type i18nConfig struct {
	Locales    []string `env:"I18N_LOCALES" envDefault:"en,fr,de,es" envSeparator:","`
	BaseLocale string   `env:"I18N_BASE_LOCALE" envDefault:"en"`
	CookieName string   `env:"I18N_COOKIE_NAME" envDefault:"PARAGLIDE_LOCALE"`
}

// appConfig composes the package configs. Store configs are loaded only for
// the selected driver, so PG_CONN_URL is required only with postgres.
type appConfig struct {
	Log      logger.Config
	HTTP     httpserver.Config
	Cookie   cookie.Config
	Session  session.Config
	Pipeline pipeline.Config
	I18n     i18nConfig
	Ledger   ledgerConfig
}

var defaultLedgerConfig = ledgerConfig{
	Driver:          driverMemory,
	RedisKeyPrefix:  "attribution:",
	MongoCollection: attribution.DefaultMongoCollection,
}

var defaultI18nConfig = i18nConfig{
	Locales:    []string{"en", "fr", "de", "es"},
	BaseLocale: "en",
	CookieName: i18n.DefaultCookieName,
}
