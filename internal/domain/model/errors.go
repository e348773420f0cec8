package model

import (
	"errors"
	"fmt"
)

var (
	// ErrCityNotFound is returned when the geocoding provider has no match for a place name
	ErrCityNotFound = errors.New("city not found")

	// ErrEmptyCity is returned when a query carries no place name
	ErrEmptyCity = errors.New("city name is required")
)

// TransportError reports a failed call to the weather provider: network failures, timeouts,
// non-2xx answers and undecodable bodies.
type TransportError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Message)
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Operation, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	default:
		return e.Operation + ": transport error"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err wraps a *TransportError
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
