package internal

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// RunOption configures the server runtime.
type RunOption func(*runConfig)

type runConfig struct {
	logger          *slog.Logger
	baseCtx         context.Context
	onListen        func(net.Addr)
	shutdownHooks   []shutdownHook
	startupAttrs    []any
	shutdownTimeout time.Duration
}

func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		baseCtx:         context.Background(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Logger sets the server lifecycle logger. If nil, logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ShutdownTimeout bounds graceful shutdown of the server and its hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// ShutdownHook registers a named cleanup step run after the server stops.
// Hooks run in registration order, also when the server failed to start.
//
// Example:
//
//	internal.ShutdownHook("postgres", db.Shutdown(pool))
func ShutdownHook(name string, fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, shutdownHook{name: name, fn: fn})
		}
	}
}

// StartupAttrs adds attributes to the "server started" log record,
// e.g. the default locale and schema version.
func StartupAttrs(attrs ...slog.Attr) RunOption {
	return func(c *runConfig) {
		for _, a := range attrs {
			c.startupAttrs = append(c.startupAttrs, a)
		}
	}
}

// OnListen is called with the bound address once the listener is open.
// With ":0" it is the only way to learn the port.
func OnListen(fn func(net.Addr)) RunOption {
	return func(c *runConfig) {
		c.onListen = fn
	}
}

// WithContext sets the base context for signal handling.
// Cancelling it stops the server the same way SIGTERM does.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}
