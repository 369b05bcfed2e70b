// Package requestid tags every request with an X-Request-ID.
//
// Middleware keeps a client-supplied id when it is at most 128 characters of
// [A-Za-z0-9_-], otherwise it generates a UUID. LoggerExtractor plugs the id into
// logger.WithContextExtractors.
package requestid
