package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/animated/pkg/animated"
	"github.com/go-drift/animated/pkg/animation"
	"github.com/go-drift/animated/pkg/config"
	"github.com/go-drift/animated/pkg/graphics"
)

const sourceTag = 1

func newEvalCommand(opts *rootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "eval --name NAME INPUT...",
		Short: "Evaluate one interpolation for the given input values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load()
			if err != nil {
				return err
			}
			node, err := buildNamed(doc, name)
			if err != nil {
				return err
			}
			source := animated.NewValue(sourceTag, 0)
			if err := node.Attach(source); err != nil {
				return err
			}
			defer node.Detach(source)

			out := cmd.OutOrStdout()
			for _, arg := range args {
				input, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid input %q: %w", arg, err)
				}
				source.SetValue(input)
				if err := node.Evaluate(); err != nil {
					return err
				}
				fmt.Fprintf(out, "%g\t%s\n", input, formatValue(node, node.Value()))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Interpolation name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func buildNamed(doc *config.Document, name string) (*animated.InterpolationNode, error) {
	spec, ok := doc.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no interpolation named %q", name)
	}
	return spec.Build(sourceTag + 1)
}

func formatValue(node *animated.InterpolationNode, v float64) string {
	if node.Config().OutputType == animation.OutputColor {
		return graphics.FromPacked(v).Hex()
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
