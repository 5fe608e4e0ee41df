package animation

import (
	"fmt"
	"strings"
)

// Extrapolate selects what happens when an input falls outside the segment
// being interpolated.
//
//	Identity  return the input unchanged, skipping the output range entirely
//	Clamp     pin the input to the nearest segment boundary
//	Extend    keep the input and continue the line past the boundary
type Extrapolate int

const (
	// ExtrapolateIdentity passes the input through unchanged.
	ExtrapolateIdentity Extrapolate = iota
	// ExtrapolateClamp pins the input to the segment boundary.
	ExtrapolateClamp
	// ExtrapolateExtend continues the linear mapping beyond the boundary.
	ExtrapolateExtend
)

// String returns the configuration name of the policy.
func (e Extrapolate) String() string {
	switch e {
	case ExtrapolateIdentity:
		return "identity"
	case ExtrapolateClamp:
		return "clamp"
	case ExtrapolateExtend:
		return "extend"
	default:
		return fmt.Sprintf("Extrapolate(%d)", int(e))
	}
}

// ParseExtrapolate maps a configuration name to a policy. Matching ignores case.
func ParseExtrapolate(name string) (Extrapolate, error) {
	for _, e := range []Extrapolate{ExtrapolateIdentity, ExtrapolateClamp, ExtrapolateExtend} {
		if strings.EqualFold(e.String(), name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtrapolate, name)
}

// OutputType selects how output range entries are interpreted.
type OutputType int

const (
	// OutputNumber interpolates output entries as plain scalars.
	OutputNumber OutputType = iota
	// OutputColor treats output entries as packed 0xAARRGGBB colors and
	// interpolates each channel separately.
	OutputColor
)

// String returns the configuration name of the output type.
func (t OutputType) String() string {
	switch t {
	case OutputNumber:
		return "number"
	case OutputColor:
		return "color"
	default:
		return fmt.Sprintf("OutputType(%d)", int(t))
	}
}

// ParseOutputType maps a configuration name to an output type. The empty
// string selects OutputNumber.
func ParseOutputType(name string) (OutputType, error) {
	switch strings.ToLower(name) {
	case "", "number":
		return OutputNumber, nil
	case "color":
		return OutputColor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOutputType, name)
	}
}
