// Package errors provides the structured errors returned and reported by
// animated nodes.
package errors

import (
	"fmt"
	"time"
)

import stderrors "errors"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a rejected node configuration.
	KindConfig
	// KindLifecycle indicates an attach, detach or evaluate call made in the
	// wrong state or with the wrong parent.
	KindLifecycle
	// KindArithmetic indicates an interpolation that has no defined result,
	// such as a zero-width input segment.
	KindArithmetic
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindArithmetic:
		return "arithmetic"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// NodeError is an error raised by an animated node.
type NodeError struct {
	// Op is the operation that failed (e.g., "animated.InterpolationNode.Attach").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Tag identifies the node, if known. Zero means untagged.
	Tag int
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *NodeError) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("%s [%s] node=%d: %v", e.Op, e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first NodeError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var ne *NodeError
	if stderrors.As(err, &ne) {
		return ne.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.Driver.Tick").
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

// ErrorHandler receives errors reported by drivers evaluating nodes.
type ErrorHandler interface {
	// HandleError is called when a node operation fails.
	HandleError(err *NodeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
