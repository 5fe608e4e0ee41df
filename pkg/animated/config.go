package animated

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/go-drift/animated/pkg/animation"
	"github.com/go-drift/animated/pkg/graphics"
)

// InterpolationConfig configures an [InterpolationNode].
type InterpolationConfig struct {
	// InputRange holds at least two non-decreasing boundaries.
	InputRange []float64
	// OutputRange holds one entry per input boundary. For OutputColor each
	// entry is a packed 0xAARRGGBB color (see graphics.Color.Packed).
	OutputRange      []float64
	ExtrapolateLeft  animation.Extrapolate
	ExtrapolateRight animation.Extrapolate
	OutputType       animation.OutputType
}

// Validate checks the range invariants.
func (c InterpolationConfig) Validate() error {
	if len(c.InputRange) < 2 || len(c.InputRange) != len(c.OutputRange) {
		return fmt.Errorf("%w: %w (input %d, output %d)", ErrInvalidConfig,
			animation.ErrRangeLength, len(c.InputRange), len(c.OutputRange))
	}
	for i, v := range c.InputRange {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: inputRange[%d] is NaN", ErrInvalidConfig, i)
		}
		if i > 0 && v < c.InputRange[i-1] {
			return fmt.Errorf("%w: inputRange must be non-decreasing (%g after %g at index %d)",
				ErrInvalidConfig, v, c.InputRange[i-1], i)
		}
	}
	for i, v := range c.OutputRange {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: outputRange[%d] is NaN", ErrInvalidConfig, i)
		}
	}
	return nil
}

func (c InterpolationConfig) clone() InterpolationConfig {
	c.InputRange = append([]float64(nil), c.InputRange...)
	c.OutputRange = append([]float64(nil), c.OutputRange...)
	return c
}

// rawInterpolationConfig mirrors the serialized node description.
type rawInterpolationConfig struct {
	InputRange       []float64 `mapstructure:"inputRange"`
	OutputRange      []float64 `mapstructure:"outputRange"`
	ExtrapolateLeft  string    `mapstructure:"extrapolateLeft"`
	ExtrapolateRight string    `mapstructure:"extrapolateRight"`
	OutputType       string    `mapstructure:"outputType"`
}

// ParseInterpolationConfig builds a config from a loosely typed payload such
// as a decoded JSON object:
//
//	{
//	  "inputRange": [0, 1],
//	  "outputRange": ["#FF000000", "#FFFFFFFF"],
//	  "extrapolateLeft": "clamp",
//	  "extrapolateRight": "extend",
//	  "outputType": "color"
//	}
//
// Range entries may be numbers, numeric strings (including 0x-prefixed
// integers) or color strings understood by graphics.ParseColor. Unknown keys are ignored.
func ParseInterpolationConfig(payload map[string]any) (InterpolationConfig, error) {
	var raw rawInterpolationConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(rangeEntryHook),
		Result:     &raw,
	})
	if err != nil {
		return InterpolationConfig{}, err
	}
	if err := dec.Decode(payload); err != nil {
		return InterpolationConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	left, err := animation.ParseExtrapolate(raw.ExtrapolateLeft)
	if err != nil {
		return InterpolationConfig{}, fmt.Errorf("%w: extrapolateLeft: %w", ErrInvalidConfig, err)
	}
	right, err := animation.ParseExtrapolate(raw.ExtrapolateRight)
	if err != nil {
		return InterpolationConfig{}, fmt.Errorf("%w: extrapolateRight: %w", ErrInvalidConfig, err)
	}
	outputType, err := animation.ParseOutputType(raw.OutputType)
	if err != nil {
		return InterpolationConfig{}, fmt.Errorf("%w: outputType: %w", ErrInvalidConfig, err)
	}

	cfg := InterpolationConfig{
		InputRange:       raw.InputRange,
		OutputRange:      raw.OutputRange,
		ExtrapolateLeft:  left,
		ExtrapolateRight: right,
		OutputType:       outputType,
	}
	if err := cfg.Validate(); err != nil {
		return InterpolationConfig{}, err
	}
	return cfg, nil
}

// rangeEntryHook turns string range entries into numbers, falling back to
// packed colors.
func rangeEntryHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Float64 {
		return data, nil
	}
	s := strings.TrimSpace(reflect.ValueOf(data).String())
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if u, err := strconv.ParseUint(s, 0, 32); err == nil {
		return float64(u), nil
	}
	c, err := graphics.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return c.Packed(), nil
}
