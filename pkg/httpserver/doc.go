// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run returns when ctx is canceled or the process receives SIGINT or SIGTERM.
// HealthHandler turns dependency pings into a /healthz endpoint.
package httpserver
