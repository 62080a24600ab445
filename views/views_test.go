package views_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/pkg/i18n"
	"github.com/insomniacure/insomnia/pkg/utils"
	"github.com/insomniacure/insomnia/requests"
	"github.com/insomniacure/insomnia/sleeplog"
	"github.com/insomniacure/insomnia/views"
)

func entries() []sleeplog.Entry {
	return []sleeplog.Entry{
		{
			ID:            2,
			SleepDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Bedtime:       "23:00",
			WakeupTime:    "07:00",
			SleepDuration: 8,
			SleepLatency:  60,
			SleepQuality:  7,
			StressLevel:   3,
			Exercise:      true,
			Notes:         "**calm** night<script>alert(1)</script>",
		},
		{
			ID:           1,
			SleepDate:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			Bedtime:      "22:00",
			WakeupTime:   "22:00",
			SleepQuality: 2,
			StressLevel:  9,
		},
	}
}

func localized(lang string, format *i18n.LocaleFormat) context.Context {
	ctx := i18n.WithLocale(context.Background(), lang, format)
	ctx = i18n.WithLanguages(ctx, []string{"en-US", "de-DE"})
	return utils.NewContext(ctx, utils.New(format))
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	list := entries()
	data := views.IndexData{
		Entries: list,
		Form:    requests.NewSleepLogRequest(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)),
		Summary: sleeplog.Summarize(list),
	}

	tests := []struct {
		name     string
		ctx      context.Context
		contains []string
	}{
		{
			name: "default namespace",
			ctx:  context.Background(),
			contains: []string{
				`<html lang="en-US">`,
				"Jan 5, 2024",
				"Jan 4, 2024",
				"88%",
				"n/a",
			},
		},
		{
			name: "german locale",
			ctx:  localized("de-DE", i18n.FormatDeDE()),
			contains: []string{
				`<html lang="de-DE">`,
				"5. Jan. 2024",
				"88\u00a0%",
				`<option value="de-DE" selected>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, views.IndexPage(data).Render(tt.ctx, &buf))

			html := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			assert.Contains(t, html, `value="2024-01-06"`)
			assert.Contains(t, html, "<strong>calm</strong>")
			assert.NotContains(t, html, "<script>alert")
			assert.Contains(t, html, `href="/edit_log/2"`)
			assert.Contains(t, html, `action="/delete_log/2"`)
		})
	}
}

func TestIndexPage_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := views.IndexPage(views.IndexData{Form: requests.SleepLogRequest{}}).Render(context.Background(), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No nights logged yet.")
	assert.NotContains(t, buf.String(), "Average sleep")
}

func TestEditPage_ValidationErrors(t *testing.T) {
	t.Parallel()

	entry := entries()[0]
	form := requests.FromEntry(entry)
	form.Bedtime = "25:99"
	_, errs := form.Validate()
	require.True(t, errs.Has(requests.FieldBedtime))

	var buf bytes.Buffer
	err := views.EditPage(views.EditData{Entry: entry, Form: form, Errors: errs}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `action="/edit_log/2"`)
	assert.Contains(t, html, `value="25:99"`)
	assert.Contains(t, html, errs.Get(requests.FieldBedtime))
	assert.Contains(t, html, "Edit night of Jan 5, 2024")
	assert.Contains(t, html, "Logged efficiency: 88%")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := views.ErrorPage(views.ErrorData{
		Code:      http.StatusNotFound,
		Message:   "That night is not in the log.",
		RequestID: "req-1",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "404 · Not Found")
	assert.Contains(t, html, "That night is not in the log.")
	assert.Contains(t, html, "req-1")
}

func TestAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"static/app.js", "static/style.css"} {
		_, err := views.Assets.ReadFile(name)
		assert.NoError(t, err, name)
	}
}
