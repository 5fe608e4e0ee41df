package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-drift/animated/internal/preview"
	"github.com/go-drift/animated/pkg/animated"
)

type previewOptions struct {
	names   []string
	from    float64
	to      float64
	frames  int
	easing  string
	metrics bool
}

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	p := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Sweep a source value and print every interpolation per frame",
		Long: `preview drives a source value from --from to --to over --frames ticks
using the chosen easing, evaluating each selected interpolation once per tick.
All interpolations are attached directly to the source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), opts, p)
		},
	}
	cmd.Flags().StringSliceVarP(&p.names, "name", "n", nil, "Interpolations to include (default all)")
	cmd.Flags().Float64Var(&p.from, "from", 0, "Source start value")
	cmd.Flags().Float64Var(&p.to, "to", 1, "Source end value")
	cmd.Flags().IntVar(&p.frames, "frames", 11, "Number of ticks")
	cmd.Flags().StringVar(&p.easing, "ease", "linear", "Easing for the source sweep ("+strings.Join(preview.EasingNames(), ", ")+")")
	cmd.Flags().BoolVar(&p.metrics, "metrics", false, "Print evaluation counters after the sweep")
	return cmd
}

func runPreview(out io.Writer, opts *rootOptions, p *previewOptions) error {
	if p.frames < 1 {
		return fmt.Errorf("--frames must be at least 1")
	}
	easing, err := preview.Easing(p.easing)
	if err != nil {
		return err
	}
	doc, err := opts.load()
	if err != nil {
		return err
	}

	names := p.names
	if len(names) == 0 {
		for _, s := range doc.Interpolations {
			names = append(names, s.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("document has no interpolations")
	}

	reg := prometheus.NewRegistry()
	driver, err := preview.NewDriver(animated.NewValue(sourceTag, p.from), preview.Options{
		Logger:     opts.logger,
		Registerer: reg,
	})
	if err != nil {
		return err
	}
	defer driver.Close()

	nodes := make([]*animated.InterpolationNode, len(names))
	for i, name := range names {
		spec, ok := doc.Lookup(name)
		if !ok {
			return fmt.Errorf("no interpolation named %q", name)
		}
		node, err := spec.Build(sourceTag + 1 + i)
		if err != nil {
			return err
		}
		if err := driver.Add(name, node, nil); err != nil {
			return err
		}
		nodes[i] = node
	}

	header := color.New(color.Bold).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(out, "%s\t%s", header("frame"), header("input"))
	for _, name := range names {
		fmt.Fprintf(out, "\t%s", header(name))
	}
	fmt.Fprintln(out)

	for _, frame := range driver.Sweep(p.from, p.to, p.frames, easing) {
		fmt.Fprintf(out, "%d\t%.4g", frame.Index, frame.Input)
		for i, v := range frame.Outputs {
			cell := formatValue(nodes[i], v)
			if _, bad := frame.Errs[names[i]]; bad {
				cell = failed("error")
			}
			fmt.Fprintf(out, "\t%s", cell)
		}
		fmt.Fprintln(out)
	}

	if p.metrics {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
