package internal

// Handler declares routes on a router.
//
// Example:
//
//	type Tracker struct {
//	    repo Repository
//	}
//
//	func (h *Tracker) Routes(r internal.Router) {
//	    r.GET("/", h.index)
//	    r.POST("/", h.create)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
