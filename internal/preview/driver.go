// Package preview runs interpolation nodes against a synthetic source value,
// one tick at a time, the way a frame loop drives the animation graph.
package preview

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-drift/animated/internal/logging"
	"github.com/go-drift/animated/pkg/animated"
	drifterrors "github.com/go-drift/animated/pkg/errors"
)

// Options configures a Driver.
type Options struct {
	// Logger receives tick diagnostics. Nil discards them.
	Logger *slog.Logger
	// Registerer receives the driver metrics. Nil skips registration.
	Registerer prometheus.Registerer
}

type entry struct {
	name   string
	node   *animated.InterpolationNode
	parent animated.ValueNode
}

// Frame is the result of one tick.
type Frame struct {
	Index int
	Input float64
	// Outputs holds one value per node, in the order the nodes were added.
	// A node that failed keeps its previous value.
	Outputs []float64
	// Errs holds the failures of this tick, keyed by node name.
	Errs map[string]error
}

// Driver owns a source value and an ordered list of interpolation nodes.
// Nodes are evaluated in insertion order, so a node must be added after its
// parent.
type Driver struct {
	source  *animated.Value
	entries []entry
	ticks   int
	logger  *slog.Logger

	evaluations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewDriver creates a driver around source.
func NewDriver(source *animated.Value, opts Options) (*Driver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Driver{
		source: source,
		logger: logger,
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "animated_node_evaluations_total",
			Help: "Successful node evaluations.",
		}, []string{"node"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "animated_node_evaluation_errors_total",
			Help: "Failed node evaluations by error kind.",
		}, []string{"node", "kind"}),
	}
	if opts.Registerer != nil {
		for _, c := range []prometheus.Collector{d.evaluations, d.failures} {
			if err := opts.Registerer.Register(c); err != nil {
				return nil, fmt.Errorf("preview: register metrics: %w", err)
			}
		}
	}
	return d, nil
}

// Source returns the driven source node.
func (d *Driver) Source() *animated.Value { return d.source }

// Add attaches node to parent and appends it to the evaluation order. A nil
// parent means the source.
func (d *Driver) Add(name string, node *animated.InterpolationNode, parent animated.ValueNode) error {
	if parent == nil {
		parent = d.source
	}
	for _, e := range d.entries {
		if e.name == name {
			return fmt.Errorf("preview: duplicate node name %q", name)
		}
	}
	if err := node.Attach(parent); err != nil {
		return err
	}
	d.entries = append(d.entries, entry{name: name, node: node, parent: parent})
	d.logger.Debug("node attached", "node", name, "tag", node.Tag(), "parent", parent.Tag())
	return nil
}

// Names returns the node names in evaluation order.
func (d *Driver) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.name
	}
	return names
}

// Tick sets the source to input and evaluates every node once. Failures are
// reported through the errors package, counted, and do not stop the tick.
func (d *Driver) Tick(input float64) Frame {
	d.source.SetValue(input)
	frame := Frame{
		Index:   d.ticks,
		Input:   input,
		Outputs: make([]float64, len(d.entries)),
	}
	d.ticks++

	for i, e := range d.entries {
		if err := d.evaluate(e); err != nil {
			if frame.Errs == nil {
				frame.Errs = make(map[string]error)
			}
			frame.Errs[e.name] = err
		}
		frame.Outputs[i] = e.node.Value()
	}
	return frame
}

func (d *Driver) evaluate(e entry) (err error) {
	op := "preview.Driver.Tick"
	defer drifterrors.RecoverWithCallback(op, func(r any) {
		err = &drifterrors.NodeError{Op: op, Kind: drifterrors.KindPanic, Tag: e.node.Tag(), Err: fmt.Errorf("%v", r)}
		d.failures.WithLabelValues(e.name, drifterrors.KindPanic.String()).Inc()
	})

	if err = e.node.Evaluate(); err != nil {
		kind := drifterrors.KindOf(err)
		d.failures.WithLabelValues(e.name, kind.String()).Inc()
		d.logger.Warn("node evaluation failed", "node", e.name, "tick", d.ticks-1, "error", err)
		if ne, ok := err.(*drifterrors.NodeError); ok {
			drifterrors.Report(ne)
		} else {
			drifterrors.Report(&drifterrors.NodeError{Op: op, Kind: kind, Tag: e.node.Tag(), Err: err})
		}
		return err
	}
	d.evaluations.WithLabelValues(e.name).Inc()
	return nil
}

// Sweep eases the source from one value to another over frames ticks and
// returns every frame. The first and last frames land exactly on from and to.
func (d *Driver) Sweep(from, to float64, frames int, easing ease.TweenFunc) []Frame {
	if frames < 1 {
		return nil
	}
	if easing == nil {
		easing = ease.Linear
	}
	tween := gween.New(float32(from), float32(to), 1, easing)
	out := make([]Frame, 0, frames)
	for i := 0; i < frames; i++ {
		var input float64
		switch {
		case i == 0:
			input = from
		case i == frames-1:
			input = to
		default:
			v, _ := tween.Set(float32(i) / float32(frames-1))
			input = float64(v)
		}
		out = append(out, d.Tick(input))
	}
	d.logger.Debug("sweep finished", "frames", frames, "from", from, "to", to)
	return out
}

// Close detaches every node from its parent, children first.
func (d *Driver) Close() error {
	var errs []error
	for i := len(d.entries) - 1; i >= 0; i-- {
		e := d.entries[i]
		if err := e.node.Detach(e.parent); err != nil {
			errs = append(errs, err)
		}
	}
	d.entries = nil
	if len(errs) > 0 {
		return fmt.Errorf("preview: close: %w", errs[0])
	}
	return nil
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// Easing looks up an easing function by name, ignoring case and dashes
// ("out-cubic", "OutCubic").
func Easing(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	if key == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("preview: unknown easing %q (known: %s)", name, strings.Join(EasingNames(), ", "))
	}
	return fn, nil
}

// EasingNames lists the supported easing names.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
