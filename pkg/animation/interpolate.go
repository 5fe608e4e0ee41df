// Package animation provides the interpolation primitives behind animated
// value nodes.
//
// A piecewise-linear mapping is described by an input range and an output
// range of equal length. [FindRangeIndex] picks the segment for an input,
// [InterpolateSegment] maps the input through it and
// [InterpolateColorSegment] does the same per channel for packed colors.
// [Extrapolate] policies decide what happens outside a segment.
package animation

import (
	"errors"

	"github.com/go-drift/animated/pkg/graphics"
)

// Errors returned by the interpolation helpers.
var (
	// ErrUnsupportedExtrapolate is returned for an unknown extrapolation name.
	ErrUnsupportedExtrapolate = errors.New("animation: unsupported extrapolate type")
	// ErrUnsupportedOutputType is returned for an unknown output type name.
	ErrUnsupportedOutputType = errors.New("animation: unsupported output type")
	// ErrRangeLength is returned when input and output ranges differ in length
	// or hold fewer than two entries.
	ErrRangeLength = errors.New("animation: input and output ranges need the same length of at least 2")
	// ErrDegenerateSegment is returned when the linear mapping is asked to
	// divide by a zero-width input segment.
	ErrDegenerateSegment = errors.New("animation: zero-width input segment")
)

// Segment is one linear piece of a piecewise mapping: the input interval
// [InputMin, InputMax] maps onto [OutputMin, OutputMax].
type Segment struct {
	InputMin  float64
	InputMax  float64
	OutputMin float64
	OutputMax float64
}

// SegmentAt returns segment i of the given ranges. Both ranges must hold at
// least i+2 entries.
func SegmentAt(i int, inputRange, outputRange []float64) Segment {
	return Segment{
		InputMin:  inputRange[i],
		InputMax:  inputRange[i+1],
		OutputMin: outputRange[i],
		OutputMax: outputRange[i+1],
	}
}

// FindRangeIndex returns the index of the segment of ranges used for value.
//
// The search walks the interior boundaries in ascending order and stops at the
// first one greater than or equal to value, so a value sitting on an interior
// boundary resolves to the lower segment. Values below the first boundary map
// to segment 0 and values past the last interior boundary map to len-2.
func FindRangeIndex(value float64, ranges []float64) int {
	index := 1
	for ; index < len(ranges)-1; index++ {
		if ranges[index] >= value {
			break
		}
	}
	return index - 1
}

// InterpolateSegment maps value through seg.
//
// The left policy is applied first when value < InputMin, then the right
// policy when the (possibly clamped) value > InputMax. An identity policy
// returns the input as-is without scaling it into output units.
func InterpolateSegment(value float64, seg Segment, left, right Extrapolate) (float64, error) {
	result := value

	if result < seg.InputMin {
		switch left {
		case ExtrapolateIdentity:
			return result, nil
		case ExtrapolateClamp:
			result = seg.InputMin
		case ExtrapolateExtend:
		}
	}

	if result > seg.InputMax {
		switch right {
		case ExtrapolateIdentity:
			return result, nil
		case ExtrapolateClamp:
			result = seg.InputMax
		case ExtrapolateExtend:
		}
	}

	if seg.InputMax == seg.InputMin {
		return 0, ErrDegenerateSegment
	}
	return seg.OutputMin + (seg.OutputMax-seg.OutputMin)*
		(result-seg.InputMin)/(seg.InputMax-seg.InputMin), nil
}

// InterpolateColorSegment maps value through seg where both output endpoints
// are packed 0xAARRGGBB colors.
//
// Each 8-bit channel is interpolated on its own with InterpolateSegment,
// truncated toward zero and shifted back into place. Channels are not clamped:
// a channel that leaves [0, 255] overlaps its neighbours when the result is
// OR-ed together. The packed result is returned as an unsigned 32-bit value.
func InterpolateColorSegment(value float64, seg Segment, left, right Extrapolate) (float64, error) {
	lo := graphics.FromPacked(seg.OutputMin)
	hi := graphics.FromPacked(seg.OutputMax)

	channel := func(from, to uint8) (int64, error) {
		v, err := InterpolateSegment(value, Segment{
			InputMin:  seg.InputMin,
			InputMax:  seg.InputMax,
			OutputMin: float64(from),
			OutputMax: float64(to),
		}, left, right)
		return int64(v), err
	}

	b, err := channel(lo.B(), hi.B())
	if err != nil {
		return 0, err
	}
	g, err := channel(lo.G(), hi.G())
	if err != nil {
		return 0, err
	}
	r, err := channel(lo.R(), hi.R())
	if err != nil {
		return 0, err
	}
	a, err := channel(lo.A(), hi.A())
	if err != nil {
		return 0, err
	}

	result := uint32(b)
	result |= uint32(g) << 8
	result |= uint32(r) << 16
	result |= uint32(a) << 24
	return float64(result), nil
}

// Interpolate maps value through the piecewise-linear function described by
// inputRange and outputRange.
func Interpolate(value float64, inputRange, outputRange []float64, left, right Extrapolate) (float64, error) {
	if err := checkRanges(inputRange, outputRange); err != nil {
		return 0, err
	}
	i := FindRangeIndex(value, inputRange)
	return InterpolateSegment(value, SegmentAt(i, inputRange, outputRange), left, right)
}

// InterpolateColor is Interpolate for packed color output ranges.
func InterpolateColor(value float64, inputRange, outputRange []float64, left, right Extrapolate) (float64, error) {
	if err := checkRanges(inputRange, outputRange); err != nil {
		return 0, err
	}
	i := FindRangeIndex(value, inputRange)
	return InterpolateColorSegment(value, SegmentAt(i, inputRange, outputRange), left, right)
}

func checkRanges(inputRange, outputRange []float64) error {
	if len(inputRange) < 2 || len(inputRange) != len(outputRange) {
		return ErrRangeLength
	}
	return nil
}
