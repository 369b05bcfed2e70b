// Package logger builds slog loggers for the service.
//
// New returns a *slog.Logger configured by Option functions: output format (text or
// json), level, static attributes and ContextExtractor callbacks. Extractors run on every
// Handle call so request-scoped values (request id, locale, session id) end up in each
// record logged with a request context:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "frontdoor"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        i18n.LoggerExtractor(),
//	        session.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(ctx, "attribution recorded", logger.GCLID(gclid))
//
// NewFromConfig does the same from the LOG_* and APP_* environment variables.
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error returns an empty Attr for a nil error, which slog drops.
package logger
