package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/edit_log/3", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Contains(t, ctx.logs, "panic recovered")
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("plain failure")

		err := middlewares.Recover()(func(c internal.Context) error { return want })(ctx)
		require.ErrorIs(t, err, want)
		require.False(t, middlewares.IsPanicError(err))
		require.Empty(t, ctx.logs)
	})

	t.Run("disable print stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic(42)
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Equal(t, 42, pe.Value)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size bounds the trace", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic(errors.New("boom"))
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})
}
