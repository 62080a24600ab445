package health

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable. db.Healthcheck returns one.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// DetailFunc reports a piece of deployment state shown next to the checks,
// such as the applied schema version. A failing detail never fails readiness.
type DetailFunc func(ctx context.Context) (string, error)

// Details is a map of named detail functions.
type Details map[string]DetailFunc

// detailUnknown is reported for a detail that could not be read.
const detailUnknown = "unknown"

// Response represents a health check response.
type Response struct {
	Checks  map[string]Check  `json:"checks,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Status  string            `json:"status"`
}

// Check represents the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// config holds health check configuration.
type config struct {
	logger  *slog.Logger
	details Details
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout sets the timeout for all checks.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for error logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDetails adds deployment details to readiness responses.
func WithDetails(details Details) Option {
	return func(c *config) {
		if len(details) > 0 {
			c.details = details
		}
	}
}

// newConfig creates a config with defaults, modified by options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// runChecks executes all checks concurrently and aggregates their status.
// Every check runs to completion; a failing check never cancels the others.
func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 && len(cfg.details) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Check, len(checks))
		details = make(map[string]string, len(cfg.details))
		status  = StatusHealthy
	)

	for name, check := range checks {
		g.Go(func() error {
			result := Check{Status: StatusHealthy}
			if err := check(ctx); err != nil {
				result = Check{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = result
			if result.Status == StatusUnhealthy {
				status = StatusUnhealthy
			}
			return nil
		})
	}
	for name, detail := range cfg.details {
		g.Go(func() error {
			value, err := detail(ctx)
			if err != nil {
				value = detailUnknown
				cfg.logger.WarnContext(ctx, "health detail unavailable",
					slog.String("detail", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			details[name] = value
			return nil
		})
	}
	_ = g.Wait()

	resp := &Response{Status: status, Checks: results}
	if len(details) > 0 {
		resp.Details = details
	}
	return resp
}
