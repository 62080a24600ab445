// Package handlers serves the sleep tracker pages and the chart endpoint.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/requests"
	"github.com/insomniacure/insomnia/sleeplog"
	"github.com/insomniacure/insomnia/views"
)

// Repository is the storage the tracker needs.
type Repository interface {
	List(ctx context.Context) ([]sleeplog.Entry, error)
	Recent(ctx context.Context, limit int) ([]sleeplog.Entry, error)
	Get(ctx context.Context, id int64) (sleeplog.Entry, error)
	Create(ctx context.Context, p sleeplog.Params) (sleeplog.Entry, error)
	Update(ctx context.Context, id int64, p sleeplog.Params) (sleeplog.Entry, error)
	Delete(ctx context.Context, id int64) error
}

// chartError is the body of a failed /sleep-data response.
const chartError = "Could not load chart data"

// Tracker handles the sleep log pages.
type Tracker struct {
	repo Repository
	now  func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock sets the clock used to prefill the form date.
func WithClock(now func() time.Time) TrackerOption {
	return func(h *Tracker) {
		h.now = now
	}
}

// NewTracker creates the tracker handler.
func NewTracker(repo Repository, opts ...TrackerOption) *Tracker {
	h := &Tracker{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements internal.Handler.
func (h *Tracker) Routes(r internal.Router) {
	r.GET("/", h.index)
	r.POST("/", h.create)
	r.GET("/sleep-data", h.chartData)
	r.GET("/edit_log/{id}", h.edit)
	r.POST("/edit_log/{id}", h.update)
	r.POST("/delete_log/{id}", h.delete)
}

func (h *Tracker) index(c internal.Context) error {
	return h.renderIndex(c, http.StatusOK, requests.NewSleepLogRequest(h.now()), nil)
}

func (h *Tracker) create(c internal.Context) error {
	form, err := requests.ParseSleepLog(c.Response(), c.Request())
	if err != nil {
		return internal.ErrBadRequest("The form could not be read.", internal.WithError(err))
	}

	params, errs := form.Validate()
	if len(errs) > 0 {
		return h.renderIndex(c, http.StatusUnprocessableEntity, form, errs)
	}

	entry, err := h.repo.Create(c, params)
	if err != nil {
		return err
	}
	c.LogInfo("sleep log created", "id", entry.ID, "sleep_date", entry.SleepDate.Format(time.DateOnly))

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Tracker) renderIndex(c internal.Context, code int, form requests.SleepLogRequest, errs requests.ValidationErrors) error {
	entries, err := h.repo.List(c)
	if err != nil {
		return err
	}

	return c.Render(code, views.IndexPage(views.IndexData{
		Entries: entries,
		Form:    form,
		Errors:  errs,
		Summary: sleeplog.Summarize(entries),
	}))
}

// chartData answers with JSON even on failure since the page script reads the error field.
func (h *Tracker) chartData(c internal.Context) error {
	recent, err := h.repo.Recent(c, sleeplog.ChartSize)
	if err != nil {
		c.LogError("failed to load chart data", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": chartError})
	}
	return c.JSON(http.StatusOK, sleeplog.NewChartData(recent))
}

func (h *Tracker) edit(c internal.Context) error {
	entry, err := h.entry(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.EditPage(views.EditData{
		Entry: entry,
		Form:  requests.FromEntry(entry),
	}))
}

func (h *Tracker) update(c internal.Context) error {
	entry, err := h.entry(c)
	if err != nil {
		return err
	}

	form, err := requests.ParseSleepLog(c.Response(), c.Request())
	if err != nil {
		return internal.ErrBadRequest("The form could not be read.", internal.WithError(err))
	}

	params, errs := form.Validate()
	if len(errs) > 0 {
		return c.Render(http.StatusUnprocessableEntity, views.EditPage(views.EditData{
			Entry:  entry,
			Form:   form,
			Errors: errs,
		}))
	}

	if _, err := h.repo.Update(c, entry.ID, params); err != nil {
		return notFound(err)
	}
	c.LogInfo("sleep log updated", "id", entry.ID)

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Tracker) delete(c internal.Context) error {
	id, ok := internal.Param[int64](c, "id")
	if !ok {
		return errEntryNotFound()
	}
	if err := h.repo.Delete(c, id); err != nil {
		return notFound(err)
	}
	c.LogInfo("sleep log deleted", "id", id)

	return c.Redirect(http.StatusSeeOther, "/")
}

// entry loads the entry named by the {id} path parameter.
func (h *Tracker) entry(c internal.Context) (sleeplog.Entry, error) {
	id, ok := internal.Param[int64](c, "id")
	if !ok {
		return sleeplog.Entry{}, errEntryNotFound()
	}
	entry, err := h.repo.Get(c, id)
	if err != nil {
		return sleeplog.Entry{}, notFound(err)
	}
	return entry, nil
}

func errEntryNotFound() *internal.HTTPError {
	return internal.ErrNotFound("That night is not in the log.")
}

// notFound turns sleeplog.ErrNotFound into a 404 and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, sleeplog.ErrNotFound) {
		return internal.ErrNotFound("That night is not in the log.", internal.WithError(err))
	}
	return err
}
