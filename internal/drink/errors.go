package drink

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKegAttached is returned when a unit conversion is requested before a keg is attached
	ErrNoKegAttached = errors.New("no keg attached to drink record")

	// ErrNoDrinkerAttached is returned when a display name is requested before a drinker is attached
	ErrNoDrinkerAttached = errors.New("no drinker attached to drink record")
)

// MissingFieldError is returned by New when a required field is absent
type MissingFieldError struct {
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("drink record is missing required field %q", e.Field)
}

// InvalidFieldError is returned by New when a numeric field cannot be used
type InvalidFieldError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *InvalidFieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("drink record field %q has invalid value %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("drink record field %q has invalid value %q", e.Field, e.Value)
}

// Unwrap returns the underlying parse error, if any
func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// InvalidTimestampError is returned when a timestamp is not a 14-digit YYYYMMDDHHMMSS string
type InvalidTimestampError struct {
	Value string
}

// Error implements the error interface
func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected 14 digits YYYYMMDDHHMMSS", e.Value)
}
