// Package gfx defines the error taxonomy of the graphics layer. Errors are
// created during window setup and asset loading and propagate unmodified to
// the process entry point.
package gfx

import (
	"errors"
	"fmt"
)

// Kind classifies a graphics failure.
type Kind int

const (
	// KindGeneric is any failure reported by the graphics subsystem itself,
	// such as an undecodable image.
	KindGeneric Kind = iota
	// KindInvalidInteger is a size, scale or offset the graphics layer cannot use.
	KindInvalidInteger
	// KindWindowBuild means the window could not be created or run.
	KindWindowBuild
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "graphics error"
	case KindInvalidInteger:
		return "invalid integer passed to graphics layer"
	case KindWindowBuild:
		return "error building window"
	default:
		return "unknown graphics error"
	}
}

// Error is a graphics-layer failure with its category.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Generic wraps err as a generic graphics error.
func Generic(msg string, err error) error {
	return &Error{Kind: KindGeneric, Msg: msg, Err: err}
}

// InvalidInteger reports an unusable numeric argument.
func InvalidInteger(msg string, err error) error {
	return &Error{Kind: KindInvalidInteger, Msg: msg, Err: err}
}

// WindowBuild wraps a window creation failure.
func WindowBuild(err error) error {
	return &Error{Kind: KindWindowBuild, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind, true
	}
	return 0, false
}
