package animation_test

import (
	"fmt"

	"github.com/go-drift/animated/pkg/animation"
	"github.com/go-drift/animated/pkg/graphics"
)

// This example maps a scroll offset onto an opacity with clamping on both ends.
func ExampleInterpolate() {
	inputRange := []float64{0, 100}
	outputRange := []float64{1, 0}

	for _, offset := range []float64{-20, 0, 50, 100, 180} {
		opacity, err := animation.Interpolate(offset, inputRange, outputRange,
			animation.ExtrapolateClamp, animation.ExtrapolateClamp)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("offset %4.0f -> opacity %.2f\n", offset, opacity)
	}

	// Output:
	// offset  -20 -> opacity 1.00
	// offset    0 -> opacity 1.00
	// offset   50 -> opacity 0.50
	// offset  100 -> opacity 0.00
	// offset  180 -> opacity 0.00
}

// This example fades between two packed colors.
func ExampleInterpolateColor() {
	outputRange := []float64{graphics.ColorBlack.Packed(), graphics.ColorWhite.Packed()}

	v, _ := animation.InterpolateColor(0.5, []float64{0, 1}, outputRange,
		animation.ExtrapolateClamp, animation.ExtrapolateClamp)
	fmt.Println(graphics.FromPacked(v))

	// Output:
	// #FF7F7F7F
}

// This example shows how the identity policy bypasses the output range.
func ExampleExtrapolate() {
	left, _ := animation.ParseExtrapolate("identity")
	right, _ := animation.ParseExtrapolate("extend")

	below, _ := animation.Interpolate(-5, []float64{0, 1}, []float64{0, 100}, left, right)
	above, _ := animation.Interpolate(2, []float64{0, 1}, []float64{0, 100}, left, right)
	fmt.Println(below, above)

	// Output:
	// -5 200
}
