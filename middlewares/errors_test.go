package middlewares_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/middlewares"
)

func TestPanicError_Error(t *testing.T) {
	t.Parallel()

	require.Equal(t, "panic: something went wrong", (&middlewares.PanicError{Value: "something went wrong"}).Error())
	require.Equal(t, "panic: 42", (&middlewares.PanicError{Value: 42}).Error())
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	err := &middlewares.TimeoutError{Duration: 2 * time.Second, Err: context.DeadlineExceeded}
	require.Equal(t, "request timeout after 2s", err.Error())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestErrorHelpers_Wrapped(t *testing.T) {
	t.Parallel()

	wrappedPanic := fmt.Errorf("handler: %w", &middlewares.PanicError{Value: "x"})
	require.True(t, middlewares.IsPanicError(wrappedPanic))
	require.False(t, middlewares.IsTimeoutError(wrappedPanic))

	wrappedTimeout := fmt.Errorf("handler: %w", &middlewares.TimeoutError{Duration: time.Second})
	te, ok := middlewares.AsTimeoutError(wrappedTimeout)
	require.True(t, ok)
	require.Equal(t, time.Second, te.Duration)

	_, ok = middlewares.AsPanicError(errors.New("plain"))
	require.False(t, ok)
}
