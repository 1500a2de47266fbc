package kquant

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a quantization parameter is out of
// range. Concrete errors are *ParameterError values wrapping it, so callers
// test with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes which parameter was rejected and why.
type ParameterError struct {
	Name   string
	Value  int
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %d: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func invalidParameter(name string, value int, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}
