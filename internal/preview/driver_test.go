package preview

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/go-drift/animated/pkg/animated"
	"github.com/go-drift/animated/pkg/animation"
	drifterrors "github.com/go-drift/animated/pkg/errors"
)

type quietHandler struct {
	errs []*drifterrors.NodeError
}

func (h *quietHandler) HandleError(err *drifterrors.NodeError)  { h.errs = append(h.errs, err) }
func (h *quietHandler) HandlePanic(err *drifterrors.PanicError) {}

func withQuietHandler(t *testing.T) *quietHandler {
	t.Helper()
	h := &quietHandler{}
	old := drifterrors.DefaultHandler
	drifterrors.SetHandler(h)
	t.Cleanup(func() { drifterrors.SetHandler(old) })
	return h
}

func newNode(t *testing.T, tag int, in, out []float64) *animated.InterpolationNode {
	t.Helper()
	node, err := animated.NewInterpolationNode(tag, animated.InterpolationConfig{
		InputRange:       in,
		OutputRange:      out,
		ExtrapolateLeft:  animation.ExtrapolateClamp,
		ExtrapolateRight: animation.ExtrapolateClamp,
	})
	require.NoError(t, err)
	return node
}

func TestDriver_TickEvaluatesInOrder(t *testing.T) {
	d, err := NewDriver(animated.NewValue(1, 0), Options{})
	require.NoError(t, err)

	first := newNode(t, 2, []float64{0, 1}, []float64{0, 100})
	second := newNode(t, 3, []float64{0, 100}, []float64{1, 0})
	require.NoError(t, d.Add("first", first, nil))
	require.NoError(t, d.Add("second", second, first))
	assert.Equal(t, []string{"first", "second"}, d.Names())

	frame := d.Tick(0.25)
	assert.Equal(t, 0, frame.Index)
	assert.Empty(t, frame.Errs)
	assert.Equal(t, []float64{25, 0.75}, frame.Outputs)

	frame = d.Tick(1)
	assert.Equal(t, 1, frame.Index)
	assert.Equal(t, []float64{100, 0}, frame.Outputs)
}

func TestDriver_Sweep(t *testing.T) {
	d, err := NewDriver(animated.NewValue(1, 0), Options{})
	require.NoError(t, err)
	require.NoError(t, d.Add("scale", newNode(t, 2, []float64{0, 10}, []float64{0, 100}), nil))

	frames := d.Sweep(0, 10, 5, ease.Linear)
	require.Len(t, frames, 5)

	want := []float64{0, 25, 50, 75, 100}
	for i, f := range frames {
		assert.Equal(t, i, f.Index)
		assert.InDelta(t, want[i], f.Outputs[0], 1e-4, "frame %d", i)
	}
	assert.Equal(t, 10.0, frames[4].Input)

	assert.Nil(t, d.Sweep(0, 1, 0, nil))
}

func TestDriver_SweepDefaultsToLinear(t *testing.T) {
	d, err := NewDriver(animated.NewValue(1, 0), Options{})
	require.NoError(t, err)
	require.NoError(t, d.Add("identity", newNode(t, 2, []float64{0, 1}, []float64{0, 1}), nil))

	frames := d.Sweep(0, 1, 3, nil)
	assert.InDelta(t, 0.5, frames[1].Outputs[0], 1e-6)
}

func TestDriver_Metrics(t *testing.T) {
	handler := withQuietHandler(t)
	reg := prometheus.NewRegistry()
	d, err := NewDriver(animated.NewValue(1, 0), Options{Registerer: reg})
	require.NoError(t, err)

	good := newNode(t, 2, []float64{0, 1}, []float64{0, 1})
	// Inputs at or below 1 fall into the zero-width first segment.
	bad := newNode(t, 3, []float64{1, 1, 2}, []float64{0, 1, 2})
	require.NoError(t, d.Add("good", good, nil))
	require.NoError(t, d.Add("bad", bad, nil))

	frame := d.Tick(0.5)
	require.Contains(t, frame.Errs, "bad")
	assert.ErrorIs(t, frame.Errs["bad"], animation.ErrDegenerateSegment)
	assert.Equal(t, 0.5, frame.Outputs[0])

	frame = d.Tick(1.5)
	assert.Empty(t, frame.Errs)
	assert.Equal(t, 1.5, frame.Outputs[1])

	assert.Equal(t, 2.0, testutil.ToFloat64(d.evaluations.WithLabelValues("good")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.evaluations.WithLabelValues("bad")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.failures.WithLabelValues("bad", "arithmetic")))
	require.Len(t, handler.errs, 1)
	assert.Equal(t, 3, handler.errs[0].Tag)

	_, err = NewDriver(animated.NewValue(9, 0), Options{Registerer: reg})
	assert.Error(t, err, "registering the same metrics twice fails")
}

func TestDriver_AddErrors(t *testing.T) {
	d, err := NewDriver(animated.NewValue(1, 0), Options{})
	require.NoError(t, err)

	node := newNode(t, 2, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, d.Add("a", node, nil))
	assert.Error(t, d.Add("a", newNode(t, 3, []float64{0, 1}, []float64{0, 1}), nil))
	assert.ErrorIs(t, d.Add("b", node, nil), animated.ErrInvalidState)
}

func TestDriver_Close(t *testing.T) {
	d, err := NewDriver(animated.NewValue(1, 0), Options{})
	require.NoError(t, err)

	first := newNode(t, 2, []float64{0, 1}, []float64{0, 1})
	second := newNode(t, 3, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, d.Add("first", first, nil))
	require.NoError(t, d.Add("second", second, first))

	require.NoError(t, d.Close())
	assert.False(t, first.IsAttached())
	assert.False(t, second.IsAttached())
	assert.Empty(t, d.Names())
}

func TestEasing(t *testing.T) {
	fn, err := Easing("out-cubic")
	require.NoError(t, err)
	assert.NotNil(t, fn)

	fn, err = Easing("")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), fn(0.5, 0, 1, 1))

	_, err = Easing("wobble")
	assert.Error(t, err)
	assert.Contains(t, EasingNames(), "linear")
}
