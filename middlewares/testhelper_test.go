package middlewares_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/insomniacure/insomnia/internal"
)

// testContext is a minimal internal.Context for driving a middleware directly.
type testContext struct {
	request *http.Request
	rw      *internal.ResponseWriter
	logs    []string
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{request: r, rw: internal.NewResponseWriter(w)}
}

func (c *testContext) Request() *http.Request                   { return c.request }
func (c *testContext) Response() http.ResponseWriter            { return c.rw }
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context                 { return c.request.Context() }
func (c *testContext) Param(string) string                      { return "" }
func (c *testContext) Query(name string) string                 { return c.request.URL.Query().Get(name) }
func (c *testContext) Form(name string) string                  { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string                { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)             { c.rw.Header().Set(name, value) }
func (c *testContext) Written() bool                            { return c.rw.Written() }
func (c *testContext) Logger() *slog.Logger                     { return slog.New(slog.DiscardHandler) }
func (c *testContext) LogDebug(msg string, _ ...any)            { c.logs = append(c.logs, msg) }
func (c *testContext) LogInfo(msg string, _ ...any)             { c.logs = append(c.logs, msg) }
func (c *testContext) LogWarn(msg string, _ ...any)             { c.logs = append(c.logs, msg) }
func (c *testContext) LogError(msg string, _ ...any)            { c.logs = append(c.logs, msg) }
func (c *testContext) Deadline() (time.Time, bool)              { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}                    { return c.request.Context().Done() }
func (c *testContext) Err() error                               { return c.request.Context().Err() }
func (c *testContext) Value(key any) any                        { return c.request.Context().Value(key) }
func (c *testContext) Get(key any) any                          { return c.request.Context().Value(key) }

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *testContext) JSON(code int, v any) error {
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := io.WriteString(c.rw, s)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Redirect(code int, url string) error {
	http.Redirect(c.rw, c.request, url, code)
	return nil
}

func (c *testContext) Render(code int, component internal.Component) error {
	c.rw.WriteHeader(code)
	return component.Render(c.request.Context(), c.rw)
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}
