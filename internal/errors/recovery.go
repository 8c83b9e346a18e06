package errors

import (
	"fmt"
)

// Warning is a non-fatal diagnostic raised when an optional styling step fails
// and the pipeline continues with a fallback.
type Warning struct {
	Type      ErrorType
	Component string
	Operation string
	Message   string
	Cause     error
}

// String formats the warning for display and logs.
func (w Warning) String() string {
	msg := fmt.Sprintf("%s: %s", w.Operation, w.Message)
	if w.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, w.Cause)
	}
	return msg
}

// AsWarning downgrades a contextual error into a warning.
func (e *ContextualError) AsWarning() *Warning {
	return &Warning{
		Type:      e.Type,
		Component: e.Component,
		Operation: e.Operation,
		Message:   e.Message,
		Cause:     e.Cause,
	}
}

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value interface{}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Attempt runs fn and returns its value. If fn returns an error or panics,
// the fallback is returned together with a logged Warning of the given type.
func Attempt[T any](errorType ErrorType, component, operation string, fallback T, fn func() (T, error)) (result T, warning *Warning) {
	defer func() {
		if r := recover(); r != nil {
			result = fallback
			warning = NewErrorBuilder(errorType, component).
				WithOperation(operation).
				WithMessage("recovered from panic").
				WithCause(&PanicError{Value: r}).
				WithStackTrace().
				Build().
				AsWarning()
		}
	}()

	value, err := fn()
	if err != nil {
		return fallback, NewErrorBuilder(errorType, component).
			WithOperation(operation).
			WithMessage("falling back").
			WithCause(err).
			Build().
			AsWarning()
	}
	return value, nil
}

// Protect calls fn and converts a panic into an error. It is used where a
// caller-supplied function runs per cell and failures stay silent.
func Protect[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}
