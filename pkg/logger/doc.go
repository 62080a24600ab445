// Package logger builds the application's structured logger on log/slog.
//
// Logs go to stdout as JSON (or text for local development). Request-scoped
// values such as the request ID are added by context extractors, which run on
// every log call:
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"},
//		middlewares.RequestIDExtractor(),
//	)
//	log.InfoContext(ctx, "entry saved", slog.Int64("id", id))
//	// {"level":"INFO","msg":"entry saved","id":7,"request_id":"..."}
//
// When SentryDSN is set, warnings and errors are also forwarded to Sentry;
// errors create issues. A missing DSN or a failed Sentry initialization falls
// back to stdout-only logging, so the same code path runs everywhere.
package logger
