package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Component is the interface for renderable templates.
// This is compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// ResponseWriter returns the status-tracking writer wrapping Response.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// Form returns the form value by name, parsing the body on first access.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Cookie returns a plain cookie value.
	Cookie(name string) (string, error)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to the given URL with the given status code.
	Redirect(code int, url string) error

	// Render renders a component as HTML with the given status code.
	Render(code int, component Component) error

	// Error creates an HTTPError without writing a response.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether a response has already been written.
	Written() bool

	// Logger returns the request logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// The value can be retrieved using Get or from c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value from the request context.
	Get(key any) any

	// SetContext replaces the request context, e.g. to attach a deadline.
	SetContext(ctx context.Context)
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{
		request:        r,
		responseWriter: rw,
		logger:         log,
	}
}

func (c *requestContext) Request() *http.Request            { return c.request }
func (c *requestContext) Response() http.ResponseWriter     { return c.responseWriter }
func (c *requestContext) ResponseWriter() *ResponseWriter   { return c.responseWriter }
func (c *requestContext) Context() context.Context          { return c.request.Context() }
func (c *requestContext) Deadline() (time.Time, bool)       { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}             { return c.request.Context().Done() }
func (c *requestContext) Err() error                        { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any                 { return c.request.Context().Value(key) }
func (c *requestContext) Param(name string) string          { return chi.URLParam(c.request, name) }
func (c *requestContext) Query(name string) string          { return c.request.URL.Query().Get(name) }
func (c *requestContext) Form(name string) string           { return c.request.FormValue(name) }
func (c *requestContext) Header(name string) string         { return c.request.Header.Get(name) }
func (c *requestContext) SetHeader(name, value string)      { c.responseWriter.Header().Set(name, value) }
func (c *requestContext) Written() bool                     { return c.responseWriter.Written() }
func (c *requestContext) Logger() *slog.Logger              { return c.logger }
func (c *requestContext) Get(key any) any                   { return c.request.Context().Value(key) }
func (c *requestContext) LogDebug(msg string, attrs ...any) { c.logger.DebugContext(c, msg, attrs...) }
func (c *requestContext) LogInfo(msg string, attrs ...any)  { c.logger.InfoContext(c, msg, attrs...) }
func (c *requestContext) LogWarn(msg string, attrs ...any)  { c.logger.WarnContext(c, msg, attrs...) }
func (c *requestContext) LogError(msg string, attrs ...any) { c.logger.ErrorContext(c, msg, attrs...) }

func (c *requestContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *requestContext) JSON(code int, v any) error {
	c.SetHeader("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.SetHeader("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := io.WriteString(c.responseWriter, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.responseWriter, c.request, url, code)
	return nil
}

// Render writes the component into a buffer first so a failing template
// never leaves a half-written page with a 200 status.
func (c *requestContext) Render(code int, component Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.request.Context(), &buf); err != nil {
		return err
	}

	c.SetHeader("Content-Type", "text/html; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := buf.WriteTo(c.responseWriter)
	return err
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

// Set stores the value on a derived request so later middleware and the
// handler observe it through Get and Value.
func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
