// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context (the request context plus the locale and
// session id fixed by the pipeline) and a request value bound by the configured
// binders, and returns a Response:
//
//	type aboutRequest struct{}
//
//	about := handler.HandlerFunc[aboutRequest](func(ctx handler.Context, _ aboutRequest) handler.Response {
//	    return handler.Templ(pages.About(ctx.Locale()))
//	})
//	r.Get("/{locale}/about", handler.Wrap(about))
//
// Responses are DataStar aware: Templ patches the component over SSE and
// Redirect emits an SSE redirect when IsDataStar reports a DataStar request.
// Bind failures become 400 responses; other errors go through the ErrorHandler.
package handler
