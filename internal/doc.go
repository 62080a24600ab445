// Package internal is the small HTTP framework the tracker runs on.
//
// It wraps chi with a Context-based handler signature, centralised error
// handling, health endpoints and graceful shutdown.
//
// # Core Types
//
//   - App: owns the router, middleware stack and server lifecycle
//   - Context: request/response access plus rendering and logging helpers
//   - Router: what handlers use to declare routes
//   - Handler: implemented by types that register routes
//   - HandlerFunc: route handler signature that returns an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed straight to repository
// calls:
//
//	func (h *Tracker) edit(c internal.Context) error {
//	    id, ok := internal.Param[int64](c, "id")
//	    if !ok {
//	        return internal.ErrNotFound("no such entry")
//	    }
//	    entry, err := h.repo.Get(c, id)
//	    if err != nil {
//	        return err
//	    }
//	    return c.Render(http.StatusOK, views.EditPage(views.EditData{Entry: entry}))
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewTracker(repo)),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("db", db.Healthcheck(pool))),
//	)
//	err := app.Run(":8080", internal.Logger(log), internal.ShutdownHook("postgres", db.Shutdown(pool)))
//
// # Errors
//
// Handlers return errors instead of writing failure responses. An *HTTPError
// carries the status code and user-facing message; anything else is treated
// as an internal error by the configured ErrorHandler.
package internal
