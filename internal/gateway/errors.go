package gateway

import "fmt"

// ErrorKind classifies a settlement API failure.
type ErrorKind int8

const (
	// ErrKindAuthFailed is a non-2xx answer from the authentication endpoint.
	ErrKindAuthFailed ErrorKind = iota
	// ErrKindRemoteRejected is a non-2xx (or bodyless) answer from a money endpoint.
	ErrKindRemoteRejected
	// ErrKindUnreachable covers transport failures, timeouts and unparseable answers.
	ErrKindUnreachable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindAuthFailed:
		return "AuthFailed"
	case ErrKindRemoteRejected:
		return "RemoteRejected"
	case ErrKindUnreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// Error is the closed failure type returned by every client operation.
// Status is only meaningful for AuthFailed and RemoteRejected.
type Error struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gateway %s: status %d", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}
