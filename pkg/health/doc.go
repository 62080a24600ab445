// Package health serves the liveness and readiness endpoints.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(
//		health.Checks{"postgres": db.Healthcheck(pool)},
//		health.WithDetails(health.Details{"schema_version": db.SchemaVersion(pool, table)}),
//		health.WithLogger(log),
//	))
//
// Responses are plain text by default, a status line followed by one line
// per check and detail. Clients sending Accept: application/json or
// ?format=json get:
//
//	{"status":"unhealthy","checks":{"postgres":{"status":"unhealthy","error":"..."}},"details":{"schema_version":"1"}}
//
// Checks and details run concurrently under a shared timeout (5s by default).
// Only checks decide the status.
package health
