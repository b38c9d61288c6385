package api

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure at the API boundary.
type Kind int

const (
	// KindTransport covers network-level failures (refused connection,
	// timeout, DNS).
	KindTransport Kind = iota
	// KindAuth covers 401/403 responses (bad or revoked token).
	KindAuth
	// KindNotFound covers 404 responses (unknown user or goal slug).
	KindNotFound
	// KindValidation covers 422 responses (server rejected the payload).
	KindValidation
	// KindHTTP covers any other non-2xx status.
	KindHTTP
	// KindParse covers responses that could not be decoded.
	KindParse
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "network error"
	case KindAuth:
		return "authentication error"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation error"
	case KindHTTP:
		return "server error"
	case KindParse:
		return "parse error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a failure returned by the Beeminder API client.
type Error struct {
	Kind       Kind
	Op         string // operation that failed, e.g. "fetch goals"
	StatusCode int    // zero when the request never reached the server
	Message    string // server-provided message when available
	Err        error  // underlying error, if any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Op, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == k
	}
	return false
}
