// Package middlewares provides the HTTP middleware the tracker runs behind.
//
// # Request ID
//
// RequestID reuses an incoming X-Request-ID or X-Correlation-ID header, or
// generates a UUID, and echoes it on the response. Pair it with
// RequestIDExtractor so every log record carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns a panic into a *PanicError for the ErrorHandler and logs
// the stack.
//
// # Timeout
//
// Timeout attaches a deadline to the request context. Handlers and the
// repository observe it through the context; when it expires before anything
// was written the middleware returns a *TimeoutError.
//
// # I18n
//
// I18n resolves the request locale from ?lang=, the lang cookie or
// Accept-Language and stores it, with a template namespace bound to it, in
// the request context.
//
// # Metrics
//
// Metrics records request counts, latencies and in-flight requests in a
// Prometheus registry.
//
// # Order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    metrics.Middleware(),
//	    middlewares.Recover(),
//	    middlewares.I18n(locales),
//	    middlewares.Timeout(30*time.Second),
//	)
package middlewares
