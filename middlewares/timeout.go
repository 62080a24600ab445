package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/insomniacure/insomnia/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
// Database calls made with the handler's Context observe it. When the deadline
// passes before anything was written, the handler's error becomes a *TimeoutError.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			parent := c.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
