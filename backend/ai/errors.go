package ai

import "fmt"

type Reason string

const (
	ReasonNotConfigured Reason = "not_configured"
	ReasonHTTPStatus    Reason = "http_status"
	ReasonTimeout       Reason = "timeout"
	ReasonConnection    Reason = "connection"
	ReasonMalformed     Reason = "malformed"
	ReasonRejected      Reason = "rejected"
)

// Error is returned by every client call that does not produce a usable payload.
type Error struct {
	Reason  Reason
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "ai error"
	}
	if e.Status != 0 {
		return fmt.Sprintf("ai %s (status=%d): %s", e.Reason, e.Status, e.Message)
	}
	if e.Message == "" {
		return "ai " + string(e.Reason)
	}
	return fmt.Sprintf("ai %s: %s", e.Reason, e.Message)
}

// Is matches any *Error with the same reason, so errors.Is(err, ErrTimeout) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t.Reason == e.Reason
}

var (
	ErrNotConfigured = &Error{Reason: ReasonNotConfigured}
	ErrHTTPStatus    = &Error{Reason: ReasonHTTPStatus}
	ErrTimeout       = &Error{Reason: ReasonTimeout}
	ErrConnection    = &Error{Reason: ReasonConnection}
	ErrMalformed     = &Error{Reason: ReasonMalformed}
	ErrRejected      = &Error{Reason: ReasonRejected}
)

func newError(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
