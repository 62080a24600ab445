// Package views renders the tracker pages.
//
// Pages are html/template files embedded into the binary and exposed as
// templ components, so handlers render them through Context.Render like any
// other component. Every render binds the template helpers to the locale
// stored in the request context.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/insomniacure/insomnia/requests"
	"github.com/insomniacure/insomnia/sleeplog"
)

//go:embed templates
var templateFS embed.FS

// Assets holds the stylesheet and script under static/.
//
//go:embed static
var Assets embed.FS

const (
	pageIndex = "index.html"
	pageEdit  = "edit.html"
	pageError = "error.html"
)

// pages are parsed once and only ever cloned, never executed directly.
var pages = map[string]*template.Template{
	pageIndex: mustParse(pageIndex),
	pageEdit:  mustParse(pageEdit),
	pageError: mustParse(pageError),
}

func mustParse(page string) *template.Template {
	return template.Must(template.New(page).
		Funcs(funcs(context.Background())).
		ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html", "templates/"+page))
}

// FormView is what the shared sleep log form partial renders.
type FormView struct {
	Action string
	Submit string
	Form   requests.SleepLogRequest
	Errors requests.ValidationErrors
}

// IndexData feeds the tracker page: the new-entry form, the log and its summary.
type IndexData struct {
	Entries []sleeplog.Entry
	Form    requests.SleepLogRequest
	Errors  requests.ValidationErrors
	Summary sleeplog.Summary
}

// FormView returns the form posting a new entry.
func (d IndexData) FormView() FormView {
	return FormView{Action: "/", Submit: "Save night", Form: d.Form, Errors: d.Errors}
}

// EditData feeds the edit page for a stored entry.
type EditData struct {
	Form   requests.SleepLogRequest
	Errors requests.ValidationErrors
	Entry  sleeplog.Entry
}

// FormView returns the form updating the entry.
func (d EditData) FormView() FormView {
	return FormView{
		Action: fmt.Sprintf("/edit_log/%d", d.Entry.ID),
		Submit: "Update night",
		Form:   d.Form,
		Errors: d.Errors,
	}
}

// ErrorData feeds the error page.
type ErrorData struct {
	Title     string
	Message   string
	RequestID string
	Code      int
}

// IndexPage renders the tracker page.
func IndexPage(data IndexData) templ.Component {
	return render(pageIndex, data)
}

// EditPage renders the edit form for one entry.
func EditPage(data EditData) templ.Component {
	return render(pageEdit, data)
}

// ErrorPage renders a user-facing error. Title defaults to the status text.
func ErrorPage(data ErrorData) templ.Component {
	if data.Title == "" {
		data.Title = http.StatusText(data.Code)
	}
	return render(pageError, data)
}

func render(page string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, err := pages[page].Clone()
		if err != nil {
			return fmt.Errorf("views: clone %s: %w", page, err)
		}
		if err := t.Funcs(funcs(ctx)).ExecuteTemplate(w, "layout", data); err != nil {
			return fmt.Errorf("views: render %s: %w", page, err)
		}
		return nil
	})
}
