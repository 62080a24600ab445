// Package db connects to PostgreSQL through pgx and applies goose migrations.
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := db.Migrate(ctx, pool, migrations.FS, cfg.MigrationsTable, log); err != nil {
//		return err
//	}
//
// Connect retries with linear backoff so the tracker can start alongside its
// database container. Healthcheck and Shutdown return closures for readiness
// probes and shutdown hooks.
//
// Errors are joined with the package sentinels ([ErrFailedToParseDBConfig],
// [ErrFailedToOpenDBConnection], [ErrHealthcheckFailed], [ErrSetDialect],
// [ErrApplyMigrations]) so callers can match them with errors.Is.
package db
