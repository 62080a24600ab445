package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID when not present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		var captured string
		handler := middlewares.RequestID()(func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})

		require.NoError(t, handler(ctx))
		require.NotEmpty(t, captured)
		require.Equal(t, captured, rec.Header().Get("X-Request-ID"))
		_, err := uuid.Parse(captured)
		require.NoError(t, err)
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream-123")
		rec := httptest.NewRecorder()

		handler := middlewares.RequestID()(func(c internal.Context) error { return nil })

		require.NoError(t, handler(newTestContext(rec, req)))
		require.Equal(t, "upstream-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("ignores oversized upstream IDs", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := httptest.NewRecorder()

		handler := middlewares.RequestID()(func(c internal.Context) error { return nil })

		require.NoError(t, handler(newTestContext(rec, req)))
		require.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("custom generator", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		mw := middlewares.RequestID(
			middlewares.WithRequestIDHeaders(),
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
		)
		require.NoError(t, mw(func(c internal.Context) error { return nil })(newTestContext(rec, req)))
		require.Equal(t, "fixed", rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()
	require.Empty(t, middlewares.GetRequestID(context.Background()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-9")
	ctx := newTestContext(httptest.NewRecorder(), req)

	require.NoError(t, middlewares.RequestID()(func(c internal.Context) error { return nil })(ctx))

	attr, ok := middlewares.RequestIDExtractor()(ctx.Context())
	require.True(t, ok)
	require.Equal(t, "request_id", attr.Key)
	require.Equal(t, "req-9", attr.Value.String())

	_, ok = middlewares.RequestIDExtractor()(context.Background())
	require.False(t, ok)
}
