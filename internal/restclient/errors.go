package restclient

import "fmt"

// StatusError means the server responded with a non-2xx status. Message is
// the server-provided message when the body carried one, otherwise a
// generic "api status N" string.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// TransportError means the request was handed to the transport but no
// response came back (connection refused, timeout, reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("no response: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }
