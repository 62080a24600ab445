package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{"postgres": ok, "other": ok})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK\nother: healthy\npostgres: healthy", rec.Body.String())
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("one failing", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{"postgres": fail, "other": ok})

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["other"].Status)
		require.Equal(t, "connection refused", resp.Checks["postgres"].Error)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		slow := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		h := health.ReadinessHandler(health.Checks{"slow": slow}, health.WithTimeout(10*time.Millisecond))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "Service Unavailable\nslow: unhealthy (context deadline exceeded)", rec.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReadinessHandler_Details(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	details := health.Details{
		"schema_version": func(context.Context) (string, error) { return "1", nil },
		"default_locale": func(context.Context) (string, error) { return "de-DE", nil },
		"broken":         func(context.Context) (string, error) { return "", errors.New("no table") },
	}
	h := health.ReadinessHandler(health.Checks{"postgres": ok}, health.WithDetails(details))

	tests := []struct {
		name   string
		target string
		accept string
		check  func(t *testing.T, body []byte)
	}{
		{
			name:   "text",
			target: "/health/ready",
			check: func(t *testing.T, body []byte) {
				require.Equal(t,
					"OK\npostgres: healthy\nbroken = unknown\ndefault_locale = de-DE\nschema_version = 1",
					string(body))
			},
		},
		{
			name:   "json with accept list",
			target: "/health/ready",
			accept: "text/html;q=0.9, application/json",
			check: func(t *testing.T, body []byte) {
				var resp health.Response
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Equal(t, health.StatusHealthy, resp.Status)
				require.Equal(t, map[string]string{
					"schema_version": "1",
					"default_locale": "de-DE",
					"broken":         "unknown",
				}, resp.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			tt.check(t, rec.Body.Bytes())
		})
	}
}
