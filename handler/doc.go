// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc and routes binding and rendering failures to an
// ErrorHandler.
//
// Responses are aware of the datastar client: Templ patches the component
// into the page over server-sent events when the request comes from a
// datastar action, and renders a full HTML document otherwise. Redirect
// likewise becomes a client-side navigation for datastar requests.
//
//	r := chi.NewRouter()
//	r.Get("/pillars/{slug}", handler.Wrap(show,
//		handler.WithBinders[handler.Context, showRequest](handler.PathParams(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, showRequest](errorHandler),
//	))
//
// Return HTTPError values such as ErrNotFound to choose the status code
// rendered by the error handler.
package handler
