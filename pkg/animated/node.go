// Package animated implements the value nodes of a natively driven animation
// graph.
//
// A driver owns the graph. It attaches child nodes to their parents and, once
// per frame, calls Evaluate on every node in an order where each parent comes
// before its children. Nodes hold no locks: attach, detach and evaluate calls
// are expected on the driver's goroutine.
//
// The only derived node provided here is [InterpolationNode], which maps the
// value of a single parent through a piecewise-linear input/output range.
package animated

import (
	"errors"
	"fmt"

	drifterrors "github.com/go-drift/animated/pkg/errors"
)

// Lifecycle error classes. Errors returned by node operations wrap one of
// these so callers can use errors.Is.
var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// node's current attachment state.
	ErrInvalidState = errors.New("animated: invalid state")
	// ErrInvalidArgument is returned when an operation is given a node it
	// cannot accept.
	ErrInvalidArgument = errors.New("animated: invalid argument")
	// ErrInvalidConfig is returned when a node configuration is rejected.
	ErrInvalidConfig = errors.New("animated: invalid config")
)

// Node is a unit of the animation graph. Tags are assigned by the driver and
// identify the node in errors and metrics.
//
// Nodes are compared by identity, so implementations should be pointer types.
type Node interface {
	Tag() int
}

// ValueNode is a node exposing a scalar value that children can read.
type ValueNode interface {
	Node
	Value() float64
}

// Evaluator is a node recomputed once per tick.
type Evaluator interface {
	Node
	Evaluate() error
}

// Value is a source node whose value is set directly by the driver, for
// example from a gesture or a timing animation.
type Value struct {
	tag   int
	value float64
}

// NewValue creates a source node with an initial value.
func NewValue(tag int, value float64) *Value {
	return &Value{tag: tag, value: value}
}

// Tag returns the node tag.
func (v *Value) Tag() int { return v.tag }

// Value returns the current value.
func (v *Value) Value() float64 { return v.value }

// SetValue replaces the current value.
func (v *Value) SetValue(value float64) { v.value = value }

// Evaluate is a no-op; a source value only changes through SetValue.
func (v *Value) Evaluate() error { return nil }

func (v *Value) String() string {
	return fmt.Sprintf("Value(tag=%d, value=%g)", v.tag, v.value)
}

func lifecycleError(op string, tag int, class error, msg string) error {
	return &drifterrors.NodeError{
		Op:   op,
		Kind: drifterrors.KindLifecycle,
		Tag:  tag,
		Err:  fmt.Errorf("%w: %s", class, msg),
	}
}
