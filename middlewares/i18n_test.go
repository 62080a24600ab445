package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
	"github.com/insomniacure/insomnia/pkg/i18n"
	"github.com/insomniacure/insomnia/pkg/utils"
)

func newRegistry(t *testing.T) *i18n.Registry {
	t.Helper()
	reg, err := i18n.NewRegistry(i18n.DefaultLang, i18n.DefaultFormats())
	require.NoError(t, err)
	return reg
}

func TestI18nMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		cookie   string
		header   string
		wantLang string
		wantDate string
	}{
		{name: "default without hints", target: "/", wantLang: "en-US", wantDate: "Jan 5, 2024"},
		{name: "accept-language", target: "/", header: "de-CH,de;q=0.9,en;q=0.5", wantLang: "de-DE", wantDate: "5. Jan. 2024"},
		{name: "cookie wins over header", target: "/", cookie: "en-GB", header: "de-DE", wantLang: "en-GB", wantDate: "5 Jan 2024"},
		{name: "query wins over cookie", target: "/?lang=fr-FR", cookie: "en-GB", wantLang: "fr-FR", wantDate: "5 janv. 2024"},
		{name: "unsupported cookie falls through", target: "/", cookie: "xx-invalid!", header: "pl", wantLang: "pl-PL", wantDate: "5 sty 2024"},
		{name: "unmatched header uses default", target: "/", header: "ja-JP", wantLang: "en-US", wantDate: "Jan 5, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.LanguageCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			ctx := newTestContext(httptest.NewRecorder(), req)

			var lang, date string
			var efficiency float64
			handler := middlewares.I18n(newRegistry(t))(func(c internal.Context) error {
				lang = middlewares.GetLanguage(c)
				ns := utils.FromContext(c)
				date = ns.FormatDate("2024-01-05")
				efficiency = ns.CalculateSleepEfficiency(480, 420)
				return nil
			})

			require.NoError(t, handler(ctx))
			require.Equal(t, tt.wantLang, lang)
			require.Equal(t, tt.wantDate, date)
			require.Equal(t, float64(88), efficiency)
		})
	}
}

func TestI18nMiddleware_CustomExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Locale", "es-ES")
	ctx := newTestContext(httptest.NewRecorder(), req)

	mw := middlewares.I18n(newRegistry(t), middlewares.WithI18nExtractor(
		internal.NewExtractor(internal.FromHeader("X-Locale")),
	))

	var lang string
	require.NoError(t, mw(func(c internal.Context) error {
		lang = middlewares.GetLanguage(c)
		return nil
	})(ctx))
	require.Equal(t, "es-ES", lang)
}
