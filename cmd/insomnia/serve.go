package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insomniacure/insomnia/handlers"
	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
	"github.com/insomniacure/insomnia/migrations"
	"github.com/insomniacure/insomnia/pkg/db"
	"github.com/insomniacure/insomnia/pkg/i18n"
	"github.com/insomniacure/insomnia/pkg/logger"
	"github.com/insomniacure/insomnia/repository"
	"github.com/insomniacure/insomnia/views"
)

func serve(ctx context.Context, cfg config, runMigrations bool) error {
	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	locales, err := i18n.NewRegistry(cfg.DefaultLocale, i18n.DefaultFormats())
	if err != nil {
		return fmt.Errorf("locales: %w", err)
	}

	pool, err := connect(ctx, cfg, log, runMigrations)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	schemaVersion := db.SchemaVersion(pool, cfg.DB.MigrationsTable)

	metrics, err := middlewares.NewMetrics(reg, cfg.MetricsNamespace)
	if err != nil {
		pool.Close()
		return fmt.Errorf("metrics: %w", err)
	}

	app := internal.New(
		internal.WithLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			metrics.Middleware(),
			middlewares.Recover(),
			middlewares.I18n(locales),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		internal.WithHandlers(handlers.NewTracker(repository.New(pool))),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithStaticFiles("/static/", views.Assets, "static"),
		internal.WithHTTPHandler("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("postgres", db.Healthcheck(pool)),
			internal.WithReadinessDetail("schema_version", schemaVersion),
			internal.WithReadinessDetail("locales", localeDetail(locales)),
		),
	)

	return app.Run(cfg.Address,
		internal.WithContext(ctx),
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.StartupAttrs(startupAttrs(ctx, locales, schemaVersion)...),
		internal.ShutdownHook("postgres", db.Shutdown(pool)),
		internal.ShutdownHook("logger", logger.Flush),
	)
}

// localeDetail lists the supported locales, marking the default one.
func localeDetail(locales *i18n.Registry) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		langs := locales.Languages()
		langs[0] += " (default)"
		return strings.Join(langs, ", "), nil
	}
}

func startupAttrs(ctx context.Context, locales *i18n.Registry, schemaVersion func(context.Context) (string, error)) []slog.Attr {
	def, _ := locales.Default()
	attrs := []slog.Attr{
		slog.String("default_locale", def),
		slog.Int("locales", len(locales.Languages())),
	}
	if v, err := schemaVersion(ctx); err == nil {
		attrs = append(attrs, slog.String("schema_version", v))
	}
	return attrs
}

func migrate(ctx context.Context, cfg config) error {
	log := logger.New(cfg.Log)
	defer func() { _ = logger.Flush(context.Background()) }()

	pool, err := connect(ctx, cfg, log, true)
	if err != nil {
		return err
	}
	pool.Close()

	log.Info("migrations applied")
	return nil
}

func connect(ctx context.Context, cfg config, log *slog.Logger, runMigrations bool) (*pgxpool.Pool, error) {
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if !runMigrations {
		return pool, nil
	}
	if err := db.Migrate(ctx, pool, migrations.FS, cfg.DB.MigrationsTable, log); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
