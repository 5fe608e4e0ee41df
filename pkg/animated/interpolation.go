package animated

import (
	"fmt"

	"github.com/go-drift/animated/pkg/animation"
	drifterrors "github.com/go-drift/animated/pkg/errors"
)

// InterpolationNode derives its value from a single parent by mapping the
// parent's value through a piecewise-linear input/output range.
//
// The node starts unattached. The state machine is:
//
//	           Attach(p)
//	Unattached ─────────► Attached
//	     ▲                   │
//	     └───── Detach(p) ───┘
//
// Evaluate is only valid while attached. A failed call never changes the
// parent or the stored value.
type InterpolationNode struct {
	tag    int
	config InterpolationConfig
	parent ValueNode
	value  float64
}

// NewInterpolationNode creates an unattached node. The config is validated
// and copied; later changes to the caller's slices do not affect the node.
func NewInterpolationNode(tag int, config InterpolationConfig) (*InterpolationNode, error) {
	if err := config.Validate(); err != nil {
		return nil, &drifterrors.NodeError{
			Op:   "animated.NewInterpolationNode",
			Kind: drifterrors.KindConfig,
			Tag:  tag,
			Err:  err,
		}
	}
	return &InterpolationNode{tag: tag, config: config.clone()}, nil
}

// NewInterpolationNodeFromMap parses payload with ParseInterpolationConfig and
// creates the node.
func NewInterpolationNodeFromMap(tag int, payload map[string]any) (*InterpolationNode, error) {
	config, err := ParseInterpolationConfig(payload)
	if err != nil {
		return nil, &drifterrors.NodeError{
			Op:   "animated.NewInterpolationNode",
			Kind: drifterrors.KindConfig,
			Tag:  tag,
			Err:  err,
		}
	}
	return NewInterpolationNode(tag, config)
}

// Tag returns the node tag.
func (n *InterpolationNode) Tag() int { return n.tag }

// Value returns the result of the last successful Evaluate. It is stale
// until the node has been evaluated after its latest Attach.
func (n *InterpolationNode) Value() float64 { return n.value }

// Config returns a copy of the node configuration.
func (n *InterpolationNode) Config() InterpolationConfig { return n.config.clone() }

// Parent returns the attached parent, or nil.
func (n *InterpolationNode) Parent() ValueNode { return n.parent }

// IsAttached reports whether a parent is attached.
func (n *InterpolationNode) IsAttached() bool { return n.parent != nil }

// Attach records parent as the node's input. It fails with ErrInvalidState if
// a parent is already attached and with ErrInvalidArgument if parent does not
// expose a value.
func (n *InterpolationNode) Attach(parent Node) error {
	const op = "animated.InterpolationNode.Attach"
	if n.parent != nil {
		return lifecycleError(op, n.tag, ErrInvalidState, "parent already attached")
	}
	vn, ok := parent.(ValueNode)
	if !ok {
		return lifecycleError(op, n.tag, ErrInvalidArgument, fmt.Sprintf("parent of type %T is not a value node", parent))
	}
	n.parent = vn
	return nil
}

// Detach releases parent. It fails with ErrInvalidArgument unless parent is
// the currently attached node.
func (n *InterpolationNode) Detach(parent Node) error {
	const op = "animated.InterpolationNode.Detach"
	if n.parent == nil {
		return lifecycleError(op, n.tag, ErrInvalidArgument, "no parent attached")
	}
	vn, ok := parent.(ValueNode)
	if !ok || vn != n.parent {
		return lifecycleError(op, n.tag, ErrInvalidArgument, "invalid parent node provided")
	}
	n.parent = nil
	return nil
}

// Evaluate reads the parent's value and stores the interpolated result.
// The parent must already have been evaluated for the current tick.
func (n *InterpolationNode) Evaluate() error {
	const op = "animated.InterpolationNode.Evaluate"
	if n.parent == nil {
		return lifecycleError(op, n.tag, ErrInvalidState, "interpolation node has not been attached to a parent")
	}

	input := n.parent.Value()
	var (
		value float64
		err   error
	)
	switch n.config.OutputType {
	case animation.OutputColor:
		value, err = animation.InterpolateColor(input, n.config.InputRange, n.config.OutputRange,
			n.config.ExtrapolateLeft, n.config.ExtrapolateRight)
	default:
		value, err = animation.Interpolate(input, n.config.InputRange, n.config.OutputRange,
			n.config.ExtrapolateLeft, n.config.ExtrapolateRight)
	}
	if err != nil {
		return &drifterrors.NodeError{
			Op:   op,
			Kind: drifterrors.KindArithmetic,
			Tag:  n.tag,
			Err:  fmt.Errorf("input %g: %w", input, err),
		}
	}
	n.value = value
	return nil
}

func (n *InterpolationNode) String() string {
	return fmt.Sprintf("InterpolationNode(tag=%d, output=%s, attached=%t)", n.tag, n.config.OutputType, n.parent != nil)
}
