package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
)

type metricsRoutes struct{}

func (metricsRoutes) Routes(r internal.Router) {
	r.GET("/edit_log/{id}", func(c internal.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})
	r.GET("/fail", func(c internal.Context) error {
		return errors.New("boom")
	})
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := middlewares.NewMetrics(reg, "insomnia")
	require.NoError(t, err)

	app := internal.New(
		internal.WithMiddleware(m.Middleware()),
		internal.WithHandlers(metricsRoutes{}),
	)

	for _, target := range []string{"/edit_log/1", "/edit_log/2", "/fail", "/nowhere"} {
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.InDelta(t, 2, counter(t, reg, "GET", "/edit_log/{id}", "200"), 0)
	require.InDelta(t, 1, counter(t, reg, "GET", "/fail", "500"), 0)
	require.InDelta(t, 1, counter(t, reg, "GET", "unmatched", "404"), 0)
	require.InDelta(t, 0, testutil.ToFloat64(m.InFlight()), 0)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := middlewares.NewMetrics(reg, "insomnia")
	require.NoError(t, err)

	_, err = middlewares.NewMetrics(reg, "insomnia")
	require.Error(t, err)
}

func counter(t *testing.T, reg *prometheus.Registry, method, route, code string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "insomnia_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["route"] == route && labels["code"] == code {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}
