// Package errors provides structured error handling for pixkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a scene file that could not be read or is invalid.
	KindConfig
	// KindMask indicates a mask that does not fit its icon geometry or could not be built.
	KindMask
	// KindRender indicates a failure while exporting rendered pixels.
	KindRender
	// KindInput indicates a malformed pointer event.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMask:
		return "mask"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PixError represents a structured error in pixkit.
type PixError struct {
	// Op is the operation that failed (e.g., "mask.FromRows").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget names the widget involved, if applicable.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PixError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PixError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.GradientIcon.PenDown").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// GeometryError reports a mask whose word count cannot cover an icon.
type GeometryError struct {
	Width, Height int
	// Words is the number of 32-bit words supplied.
	Words int
}

func (e *GeometryError) Error() string {
	need := (e.Width*e.Height + 15) / 16
	return fmt.Sprintf("mask of %d words cannot cover %dx%d pixels (need %d)", e.Words, e.Width, e.Height, need)
}

// ErrorHandler receives errors reported by pixkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PixError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
