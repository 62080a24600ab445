package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insomniacure/insomnia/pkg/logger"
)

// shutdownHook is a named cleanup step run after the server drains.
type shutdownHook struct {
	fn   func(context.Context) error
	name string
}

// lifecycle owns one server run: listen, serve until the context ends,
// drain, then release resources in hook order.
type lifecycle struct {
	server   *http.Server
	log      *slog.Logger
	cfg      *runConfig
	listener net.Listener
}

func newLifecycle(handler http.Handler, addr string, cfg *runConfig) *lifecycle {
	if addr == "" {
		addr = ":8080"
	}
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}

	return &lifecycle{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}
}

// run blocks until the base context is cancelled or SIGINT/SIGTERM arrives.
// A listen or serve failure still runs the hooks so the pool is closed.
func (rt *lifecycle) run() error {
	ctx, stop := signal.NotifyContext(rt.cfg.baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", rt.server.Addr)
	if err != nil {
		return errors.Join(fmt.Errorf("listen %s: %w", rt.server.Addr, err), rt.shutdown(false))
	}
	rt.listener = ln

	attrs := append([]any{slog.String("address", ln.Addr().String())}, rt.cfg.startupAttrs...)
	rt.log.Info("server started", attrs...)
	if rt.cfg.onListen != nil {
		rt.cfg.onListen(ln.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		err := rt.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		rt.log.Error("server stopped unexpectedly", slog.Any("error", err))
		return errors.Join(err, rt.shutdown(false))
	case <-ctx.Done():
		rt.log.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	}

	return rt.shutdown(true)
}

// shutdown drains in-flight requests when the server is running, then runs
// every hook under the shared shutdown timeout. Hook errors carry the hook name.
func (rt *lifecycle) shutdown(serving bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.shutdownTimeout)
	defer cancel()

	started := time.Now()
	var errs []error

	if serving {
		if err := rt.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drain requests: %w", err))
		}
	}

	for _, hook := range rt.cfg.shutdownHooks {
		if err := hook.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s: %w", hook.name, err))
			rt.log.Error("shutdown hook failed", slog.String("hook", hook.name), slog.Any("error", err))
			continue
		}
		rt.log.Debug("shutdown hook done", slog.String("hook", hook.name))
	}

	err := errors.Join(errs...)
	rt.log.Info("shutdown completed",
		slog.Duration("took", time.Since(started)),
		slog.Bool("clean", err == nil),
	)
	return err
}
