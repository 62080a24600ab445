package handlers

import (
	"net/http"

	"github.com/insomniacure/insomnia/internal"
	"github.com/insomniacure/insomnia/middlewares"
	"github.com/insomniacure/insomnia/views"
)

const (
	internalErrorMessage = "Something went wrong on our side. Please try again."
	timeoutMessage       = "The request took too long. Please try again."
)

// ErrorHandler renders errors returned from handlers as HTML error pages.
// Client HTTPErrors keep their code and message, timeouts become a 503
// and anything else is shown as a 500.
func ErrorHandler(c internal.Context, err error) error {
	if httpErr := internal.AsHTTPError(err); httpErr != nil && httpErr.Code < http.StatusInternalServerError {
		return renderError(c, httpErr.Code, httpErr.Message)
	}

	// Timeout and Recover log their own failures.
	if middlewares.IsTimeoutError(err) {
		return renderError(c, http.StatusServiceUnavailable, timeoutMessage)
	}
	if !middlewares.IsPanicError(err) {
		c.LogError("request failed",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		)
	}

	return renderError(c, http.StatusInternalServerError, internalErrorMessage)
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c internal.Context) error {
	return renderError(c, http.StatusNotFound, "The page you're looking for doesn't exist.")
}

// MethodNotAllowed renders the 405 page.
func MethodNotAllowed(c internal.Context) error {
	return renderError(c, http.StatusMethodNotAllowed, "This method is not allowed for this page.")
}

func renderError(c internal.Context, code int, message string) error {
	return c.Render(code, views.ErrorPage(views.ErrorData{
		Code:      code,
		Message:   message,
		RequestID: middlewares.GetRequestID(c),
	}))
}
