package recipeparser

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies why a parse failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindConnection
	KindHTTPStatus
	KindNoRecipeFound
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindHTTPStatus:
		return "http_status"
	case KindNoRecipeFound:
		return "no_recipe_found"
	}
	return "unknown"
}

// Error is the only error type Parse returns. Its message is safe to show to
// end users; the underlying cause is kept for logging via Unwrap.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrTimeout       = &Error{Kind: KindTimeout}
	ErrConnection    = &Error{Kind: KindConnection}
	ErrHTTPStatus    = &Error{Kind: KindHTTPStatus}
	ErrNoRecipeFound = &Error{Kind: KindNoRecipeFound}
)

const (
	msgTimeout       = "Request timed out. The recipe page took too long to load."
	msgConnection    = "Could not connect to URL. Check the link or try again later."
	msgForbidden     = "Access denied (403). This site may block automated requests."
	msgNotFound      = "Page not found (404). Check the recipe URL."
	msgNoRecipeFound = "No recipe data found on this page. The site may use JavaScript to load the recipe, or the format is not supported."
)

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func transportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: msgTimeout, Err: err}
	}
	return &Error{Kind: KindConnection, Message: msgConnection, Err: err}
}

func statusError(code int, status string) *Error {
	e := &Error{Kind: KindHTTPStatus, StatusCode: code}
	switch code {
	case http.StatusForbidden:
		e.Message = msgForbidden
	case http.StatusNotFound:
		e.Message = msgNotFound
	default:
		if status == "" {
			status = fmt.Sprintf("%d %s", code, http.StatusText(code))
		}
		e.Message = "Failed to fetch recipe page: " + status
	}
	return e
}

func noRecipeError() *Error {
	return &Error{Kind: KindNoRecipeFound, Message: msgNoRecipeFound}
}
