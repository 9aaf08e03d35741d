package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInit is returned when the native engine instance cannot be created or initialised
	ErrInit = errors.New("engine initialisation failed")
	// ErrDestroyed is returned by every operation on a handle after Destroy
	ErrDestroyed = errors.New("engine handle already destroyed")
	// ErrTypeMismatch is returned when a value's format differs from the property's declared format
	ErrTypeMismatch = errors.New("property value has the wrong type")
	// ErrInvalidValue is returned when a value is outside the property's documented domain
	ErrInvalidValue = errors.New("property value out of range")
	// ErrUnexpectedValue means the engine answered with something the player does not understand.
	// The player treats this as fatal.
	ErrUnexpectedValue = errors.New("unexpected value from engine")
	// ErrRejected wraps failures reported by the engine for options, commands and properties
	ErrRejected = errors.New("engine rejected request")
	// ErrRender is returned when a frame could not be drawn
	ErrRender = errors.New("render failed")
)

// OpError records a failed engine operation.  Err is one of the package sentinels, Cause is the
// underlying error reported by the native layer, if any.
type OpError struct {
	Op     string
	Target string
	Err    error
	Cause  error
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	msg += ": " + e.Err.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the native cause to errors.Is / errors.As
func (e *OpError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Wrap builds an OpError, returning nil when cause is nil so it can wrap native calls directly.
func Wrap(op, target string, sentinel, cause error) error {
	if cause == nil {
		return nil
	}
	return &OpError{Op: op, Target: target, Err: sentinel, Cause: cause}
}

// IsFatal reports whether err leaves the player in a state it cannot continue from.  Rejected
// requests, out of range values and render failures are recoverable, everything else is not.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnexpectedValue) {
		return true
	}
	return !errors.Is(err, ErrRejected) && !errors.Is(err, ErrRender) && !errors.Is(err, ErrInvalidValue)
}

func mismatch(p Property, v Value) error {
	return &OpError{
		Op:     "set",
		Target: p.Name(),
		Err:    ErrTypeMismatch,
		Cause:  fmt.Errorf("want %s, got %s", p.Format(), v.Format()),
	}
}
